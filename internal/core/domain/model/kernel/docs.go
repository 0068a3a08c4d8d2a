// Package kernel provides the value objects shared by the purchasing domain model.
//
// The package includes:
//   - UUID: identifier of orders, actors and outbox messages
//   - Money: non-negative decimal amounts backed by shopspring/decimal, rounded to
//     two places for totals so no binary floating point ever touches a price
//
// Both are immutable and safe for concurrent use.
package kernel
