package repositories

import (
	"context"

	"krishiseva/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are never deleted.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// ListByBuyer returns the buyer's orders, most recent first.
	ListByBuyer(ctx context.Context, buyerID string) ([]models.Order, error)
	// Update persists the mutable lifecycle fields: status, cancellation
	// reason, cancellation time and updatedAt.
	Update(ctx context.Context, order *models.Order) error
}
