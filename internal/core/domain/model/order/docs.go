// Package order provides the purchase order aggregate and its review lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning line items, totals, ownership and review state
//   - LineItem: a requested product with supplier, quantity and unit price
//   - Status: the Pending -> Approved | Rejected state machine
//   - Event: lifecycle changes recorded for the transactional outbox
//
// Key business rules:
//   - Orders are submitted in Pending with a justification and at least one item
//   - Totals are decimal sums of quantity * unit price rounded to two places
//   - Only reviewers approve or reject, and only pending orders; rejection needs a reason
//   - Only the owner edits or deletes, and never after approval
//   - Editing resubmits the order and clears reviewer notes
package order
