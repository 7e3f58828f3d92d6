// Package services provides domain services that coordinate more than one aggregate.
//
// The package includes:
//   - OrderDispatcher: checks that a courier may claim a pending order and assigns it
//   - Ledger: posts balance changes to clients, including order settlements
//
// Domain services are stateless. They mutate the aggregates they are given and leave
// persistence to the application layer.
package services
