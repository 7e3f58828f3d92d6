// Package order provides the Order aggregate and its dispatch state machine.
//
// The package includes:
//   - Order: the aggregate root tracking claim, transit and settlement of a delivery
//   - Status: pending, assigned, delivering, done and canceled
//   - PaymentType: how a delivered order was paid (cash, debt or click)
//
// Key business rules:
//   - Orders flow Pending -> Assigned -> Delivering -> Done, or Pending -> Canceled
//   - Only the assigned courier may start transit or confirm delivery
//   - Claiming an order that already has a courier fails with errs.ErrAlreadyAssigned
//   - Confirming an order twice keeps the first settlement
//   - Debt settlements increase the client balance, cash and click settlements decrease it
package order
