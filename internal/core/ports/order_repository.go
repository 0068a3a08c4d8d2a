// Package ports defines the contracts between the purchasing core and its adapters.
// Use cases depend on these interfaces; postgres and kafka adapters implement them.
package ports

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Storage failures come back as errs.RepositoryError.
type OrderRepository interface {
	// Add persists a new order with its items and assigns its request number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order if the stored row still has aggregate.Version().
	// Items are rewritten only when aggregate.ItemsChanged() is true.
	//
	// Returns:
	//   - errs.ConflictError if another request changed or removed the order
	//     after it was loaded (compare-and-swap lost)
	//   - errs.ObjectNotFoundError if the order does not exist
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and its items under the same version guard as Update.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items in submitted order.
	// Returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
