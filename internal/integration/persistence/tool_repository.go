package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/persistence/model"
)

// toolRepository implements the adapter.ToolRepository interface.
type toolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new tool repository instance.
func NewToolRepository(db *gorm.DB) adapter.ToolRepository {
	return &toolRepository{db: db}
}

// Create creates a new tool in the database.
func (r *toolRepository) Create(ctx context.Context, tool *entity.Tool) error {
	return r.db.WithContext(ctx).Create(model.ToolFromEntity(tool)).Error
}

// FindByID retrieves a tool owned by userID.
func (r *toolRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Tool, error) {
	var toolModel model.ToolModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&toolModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrToolNotFound
		}
		return nil, result.Error
	}
	return toolModel.ToEntity(), nil
}

// FindByUser retrieves all tools of a user in creation order.
func (r *toolRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Tool, error) {
	var toolModels []model.ToolModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&toolModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tools := make([]*entity.Tool, len(toolModels))
	for i := range toolModels {
		tools[i] = toolModels[i].ToEntity()
	}
	return tools, nil
}

// Update writes the patch fields and updated_at.
func (r *toolRepository) Update(ctx context.Context, id, userID uuid.UUID, patch entity.ToolPatch, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.ToolModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(model.ToolPatchColumns(patch, updatedAt))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrToolNotFound
	}
	return nil
}

// Delete removes a tool from the database.
func (r *toolRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ToolModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrToolNotFound
	}
	return nil
}
