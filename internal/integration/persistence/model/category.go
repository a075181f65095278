// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toolbox/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_categories_user_created,priority:1"`
	Name      string         `gorm:"type:varchar(50);not null"`
	Emoji     string         `gorm:"type:varchar(32)"`
	Color     string         `gorm:"type:varchar(7);not null;default:'#6366f1'"`
	CreatedAt time.Time      `gorm:"not null;index:idx_categories_user_created,priority:2"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Emoji:     m.Emoji,
		Color:     m.Color,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		Emoji:     category.Emoji,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// CategoryPatchColumns maps the non-nil patch fields to column updates.
func CategoryPatchColumns(patch entity.CategoryPatch, updatedAt time.Time) map[string]any {
	columns := map[string]any{"updated_at": updatedAt.UTC()}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Emoji != nil {
		columns["emoji"] = *patch.Emoji
	}
	if patch.Color != nil {
		columns["color"] = *patch.Color
	}
	return columns
}
