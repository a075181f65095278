package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID        uuid.UUID
	Name      string
	Emoji     string
	Color     string
	ToolCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(workspaces store.WorkspaceProvider) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		workspaces: workspaces,
	}
}

// Execute lists the categories of the user in stored order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	categories := ws.Categories.List()
	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(categories)),
	}
	for i, cat := range categories {
		output.Categories[i] = &CategoryOutput{
			ID:        cat.ID,
			Name:      cat.Name,
			Emoji:     cat.DisplayEmoji(),
			Color:     cat.Color,
			ToolCount: ws.Tools.CountByCategory(cat.ID),
			CreatedAt: cat.CreatedAt,
			UpdatedAt: cat.UpdatedAt,
		}
	}

	return output, nil
}
