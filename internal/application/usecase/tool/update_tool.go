package tool

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// UpdateToolInput represents the input for tool update.
// Nil fields are left untouched.
type UpdateToolInput struct {
	UserID      uuid.UUID
	ToolID      uuid.UUID
	Name        *string
	URL         *string
	Description *string
	CategoryID  *uuid.UUID
	Color       *string
}

// UpdateToolOutput represents the output of tool update.
type UpdateToolOutput struct {
	Tool *ToolOutput
}

// UpdateToolUseCase handles tool update logic.
type UpdateToolUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewUpdateToolUseCase creates a new UpdateToolUseCase instance.
func NewUpdateToolUseCase(workspaces store.WorkspaceProvider) *UpdateToolUseCase {
	return &UpdateToolUseCase{
		workspaces: workspaces,
	}
}

// Execute performs the tool update.
func (uc *UpdateToolUseCase) Execute(ctx context.Context, input UpdateToolInput) (*UpdateToolOutput, error) {
	patch := entity.ToolPatch{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := checkName(name); err != nil {
			return nil, err
		}
		patch.Name = &name
	}

	if input.URL != nil {
		rawURL := strings.TrimSpace(*input.URL)
		if rawURL == "" {
			return nil, urlRequiredError()
		}
		patch.URL = &rawURL
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		patch.Description = &description
	}

	if input.Color != nil {
		color := strings.TrimSpace(*input.Color)
		if !entity.IsValidHexColor(color) {
			return nil, invalidColorError()
		}
		patch.Color = &color
	}

	patch.CategoryID = input.CategoryID

	if patch.IsEmpty() {
		return nil, domainerror.NewToolError(
			domainerror.ErrCodeMissingToolPatch,
			"at least one field must be provided",
			nil,
		)
	}

	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// Moving a tool requires the target category to exist
	tool, err := ws.EditTool(ctx, input.ToolID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrToolNotFound) {
			return nil, notFoundError()
		}
		if errors.Is(err, domainerror.ErrToolCategoryRequired) {
			return nil, categoryRequiredError()
		}
		slog.Warn("Failed to update tool", "user_id", input.UserID, "tool_id", input.ToolID, "error", err)
		return nil, err
	}

	return &UpdateToolOutput{
		Tool: toToolOutput(tool),
	}, nil
}
