// Package kernel provides the value objects shared by every aggregate of the water
// delivery domain.
//
// The package includes:
//   - UUID: identifiers of orders, clients, couriers and ledger entries
//   - GeoPoint: a validated latitude/longitude pair
//   - Money: signed decimal amounts backed by shopspring/decimal
//   - Haversine, EtaSeconds and FormatEta: the pure geo estimator used by tracking views
//
// All types are immutable and safe for concurrent use.
package kernel
