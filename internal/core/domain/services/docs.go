// Package services provides domain services that decide who may act on a purchase
// order. It complements the order aggregate, which enforces state and ownership,
// with role based rules that need the caller's identity.
//
// The package includes:
//   - OrderAccessPolicy: reviewer decisions, reviewer queue access and read access
package services
