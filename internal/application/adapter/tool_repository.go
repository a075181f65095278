package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/domain/entity"
)

// ToolRepository is the persistence gateway for the "tools" collection.
type ToolRepository interface {
	// Create persists a new tool.
	Create(ctx context.Context, tool *entity.Tool) error

	// FindByID retrieves a tool owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Tool, error)

	// FindByUser retrieves all tools of a user in creation order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Tool, error)

	// Update applies the non-nil patch fields and sets updated_at. created_at is never written.
	Update(ctx context.Context, id, userID uuid.UUID, patch entity.ToolPatch, updatedAt time.Time) error

	// Delete removes a tool.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
