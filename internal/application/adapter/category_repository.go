// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/domain/entity"
)

// CategoryRepository is the persistence gateway for the "categories" collection.
// Every query is scoped by the owning user.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories of a user in stored order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// Update applies the non-nil patch fields and sets updated_at.
	Update(ctx context.Context, id, userID uuid.UUID, patch entity.CategoryPatch, updatedAt time.Time) error

	// Delete removes a category.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
