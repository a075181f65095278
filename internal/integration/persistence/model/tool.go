package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/domain/entity"
)

// ToolModel represents the tools table in the database.
type ToolModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_tools_user_created,priority:1"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	URL         string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Color       string    `gorm:"type:varchar(7);not null"`
	CreatedAt   time.Time `gorm:"not null;index:idx_tools_user_created,priority:2"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ToolModel.
func (ToolModel) TableName() string {
	return "tools"
}

// ToEntity converts a ToolModel to a domain Tool entity.
func (m *ToolModel) ToEntity() *entity.Tool {
	return &entity.Tool{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		URL:         m.URL,
		Description: m.Description,
		Color:       m.Color,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

// ToolFromEntity creates a ToolModel from a domain Tool entity.
func ToolFromEntity(tool *entity.Tool) *ToolModel {
	return &ToolModel{
		ID:          tool.ID,
		UserID:      tool.UserID,
		CategoryID:  tool.CategoryID,
		Name:        tool.Name,
		URL:         tool.URL,
		Description: tool.Description,
		Color:       tool.Color,
		CreatedAt:   tool.CreatedAt,
		UpdatedAt:   tool.UpdatedAt,
	}
}

// ToolPatchColumns maps the non-nil patch fields to column updates.
// created_at is never part of the result.
func ToolPatchColumns(patch entity.ToolPatch, updatedAt time.Time) map[string]any {
	columns := map[string]any{"updated_at": updatedAt.UTC()}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.URL != nil {
		columns["url"] = *patch.URL
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.CategoryID != nil {
		columns["category_id"] = *patch.CategoryID
	}
	if patch.Color != nil {
		columns["color"] = *patch.Color
	}
	return columns
}
