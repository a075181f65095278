package tool

import (
	"context"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store"
)

// ListToolsInput represents the input for listing tools.
type ListToolsInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID // Optional filter by category
}

// ListToolsOutput represents the output of listing tools.
type ListToolsOutput struct {
	Tools []*ToolOutput
}

// ListToolsUseCase handles listing tools logic.
type ListToolsUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewListToolsUseCase creates a new ListToolsUseCase instance.
func NewListToolsUseCase(workspaces store.WorkspaceProvider) *ListToolsUseCase {
	return &ListToolsUseCase{
		workspaces: workspaces,
	}
}

// Execute lists the tools of the user in stored order.
func (uc *ListToolsUseCase) Execute(ctx context.Context, input ListToolsInput) (*ListToolsOutput, error) {
	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	tools := ws.Tools.List()
	output := &ListToolsOutput{
		Tools: make([]*ToolOutput, 0, len(tools)),
	}
	for _, t := range tools {
		if input.CategoryID != nil && t.CategoryID != *input.CategoryID {
			continue
		}
		output.Tools = append(output.Tools, toToolOutput(t))
	}

	return output, nil
}
