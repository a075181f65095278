package tool

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// DeleteToolInput represents the input for tool deletion.
type DeleteToolInput struct {
	UserID uuid.UUID
	ToolID uuid.UUID
}

// DeleteToolOutput represents the output of tool deletion.
type DeleteToolOutput struct {
	Success bool
}

// DeleteToolUseCase handles tool deletion logic.
type DeleteToolUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewDeleteToolUseCase creates a new DeleteToolUseCase instance.
func NewDeleteToolUseCase(workspaces store.WorkspaceProvider) *DeleteToolUseCase {
	return &DeleteToolUseCase{
		workspaces: workspaces,
	}
}

// Execute performs the tool deletion.
func (uc *DeleteToolUseCase) Execute(ctx context.Context, input DeleteToolInput) (*DeleteToolOutput, error) {
	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := ws.Tools.Remove(ctx, input.ToolID); err != nil {
		if errors.Is(err, domainerror.ErrToolNotFound) {
			return nil, notFoundError()
		}
		slog.Warn("Failed to delete tool", "user_id", input.UserID, "tool_id", input.ToolID, "error", err)
		return nil, err
	}

	return &DeleteToolOutput{
		Success: true,
	}, nil
}
