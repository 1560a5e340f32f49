package repositories

import (
	"context"

	"krishiseva/internal/models"
)

// UserRepository defines the interface for user data access.
// Emails are expected to be normalized by the caller.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
