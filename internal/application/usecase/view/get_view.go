// Package view contains the read-only projection use cases.
package view

import (
	"context"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/projection"
	"github.com/toolbox/backend/internal/application/store"
	"github.com/toolbox/backend/internal/domain/entity"
)

// GetViewInput represents the input for the signed-in tool view.
type GetViewInput struct {
	UserID uuid.UUID
	Search string
	Mode   string // Optional, defaults to grid
}

// GetViewOutput carries the grouped projection of the user's tools.
type GetViewOutput struct {
	View projection.View[*entity.Tool]
}

// GetViewUseCase projects the user's tools grouped by category.
type GetViewUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewGetViewUseCase creates a new GetViewUseCase instance.
func NewGetViewUseCase(workspaces store.WorkspaceProvider) *GetViewUseCase {
	return &GetViewUseCase{
		workspaces: workspaces,
	}
}

// Execute builds the view. The mode is validated before the workspace is touched.
func (uc *GetViewUseCase) Execute(ctx context.Context, input GetViewInput) (*GetViewOutput, error) {
	mode, err := projection.ParseViewMode(input.Mode)
	if err != nil {
		return nil, err
	}

	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetViewOutput{
		View: projection.GroupByCategory(ws.Tools.List(), ws.Categories.List(), input.Search, mode),
	}, nil
}
