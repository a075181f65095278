package category

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion logic.
// A category still referenced by tools is never deleted.
type DeleteCategoryUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(workspaces store.WorkspaceProvider) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		workspaces: workspaces,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := ws.Categories.Remove(ctx, input.CategoryID); err != nil {
		var inUse *domainerror.CategoryInUseError
		switch {
		case errors.As(err, &inUse):
			slog.Debug("Category deletion blocked",
				"user_id", input.UserID,
				"category_id", input.CategoryID,
				"blocking_tools", inUse.Count,
			)
			return nil, err
		case errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, notFoundError()
		default:
			slog.Warn("Failed to delete category", "user_id", input.UserID, "category_id", input.CategoryID, "error", err)
			return nil, err
		}
	}

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
