package dto

import (
	"time"

	"github.com/toolbox/backend/internal/application/usecase/category"
	"github.com/toolbox/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
// Name length is validated by the use case in runes, not bytes.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty" binding:"max=32"`
	Color string `json:"color,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
// Absent fields are left unchanged.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Emoji *string `json:"emoji,omitempty" binding:"omitempty,max=32"`
	Color *string `json:"color,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	ToolCount *int      `json:"tool_count,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the list of categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Emoji:     c.DisplayEmoji(),
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryListResponse converts list output, tool counts included.
func ToCategoryListResponse(categories []*category.CategoryOutput) CategoryListResponse {
	resp := CategoryListResponse{
		Categories: make([]CategoryResponse, len(categories)),
	}
	for i, c := range categories {
		count := c.ToolCount
		resp.Categories[i] = CategoryResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			Emoji:     c.Emoji,
			Color:     c.Color,
			ToolCount: &count,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	return resp
}
