// Package tool contains tool-related use cases.
package tool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// MaxToolNameLength is the maximum allowed length for tool names.
const MaxToolNameLength = 255

// CreateToolInput represents the input for tool creation.
type CreateToolInput struct {
	UserID      uuid.UUID
	Name        string
	URL         string
	Description string
	CategoryID  uuid.UUID
	Color       string // Optional, inherited from the category when empty
}

// ToolOutput represents a single tool in use case outputs.
type ToolOutput struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	URL         string
	Description string
	Color       string
	ValidURL    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateToolOutput represents the output of tool creation.
type CreateToolOutput struct {
	Tool *ToolOutput
}

// CreateToolUseCase handles tool creation logic.
type CreateToolUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewCreateToolUseCase creates a new CreateToolUseCase instance.
func NewCreateToolUseCase(workspaces store.WorkspaceProvider) *CreateToolUseCase {
	return &CreateToolUseCase{
		workspaces: workspaces,
	}
}

// Execute performs the tool creation.
func (uc *CreateToolUseCase) Execute(ctx context.Context, input CreateToolInput) (*CreateToolOutput, error) {
	draft, err := validateDraft(input.Name, input.URL, input.Description, input.Color)
	if err != nil {
		return nil, err
	}
	if input.CategoryID == uuid.Nil {
		return nil, categoryRequiredError()
	}

	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// The workspace snapshots the category color when none was picked
	draft.CategoryID = input.CategoryID
	tool, err := ws.AddTool(ctx, draft)
	if err != nil {
		if errors.Is(err, domainerror.ErrToolCategoryRequired) {
			return nil, categoryRequiredError()
		}
		slog.Warn("Failed to create tool", "user_id", input.UserID, "category_id", input.CategoryID, "error", err)
		return nil, err
	}

	slog.Debug("Tool created", "user_id", input.UserID, "tool_id", tool.ID, "category_id", tool.CategoryID)
	return &CreateToolOutput{
		Tool: toToolOutput(tool),
	}, nil
}

// validateDraft trims the user-supplied fields and checks the required ones.
// The URL is not required to parse; validity is reported, never enforced.
func validateDraft(name, rawURL, description, color string) (entity.ToolDraft, error) {
	draft := entity.ToolDraft{
		Name:        strings.TrimSpace(name),
		URL:         strings.TrimSpace(rawURL),
		Description: strings.TrimSpace(description),
		Color:       strings.TrimSpace(color),
	}
	if err := checkName(draft.Name); err != nil {
		return draft, err
	}
	if draft.URL == "" {
		return draft, urlRequiredError()
	}
	if draft.Color != "" && !entity.IsValidHexColor(draft.Color) {
		return draft, invalidColorError()
	}
	return draft, nil
}

func toToolOutput(t *entity.Tool) *ToolOutput {
	return &ToolOutput{
		ID:          t.ID,
		CategoryID:  t.CategoryID,
		Name:        t.Name,
		URL:         t.URL,
		Description: t.Description,
		Color:       t.Color,
		ValidURL:    t.HasValidURL(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// checkName enforces the required and length rules on a trimmed name.
func checkName(name string) error {
	if name == "" {
		return nameRequiredError()
	}
	if utf8.RuneCountInString(name) > MaxToolNameLength {
		return domainerror.NewToolError(
			domainerror.ErrCodeToolNameTooLong,
			fmt.Sprintf("tool name must not exceed %d characters", MaxToolNameLength),
			domainerror.ErrToolNameTooLong,
		)
	}
	return nil
}

func nameRequiredError() error {
	return domainerror.NewToolError(
		domainerror.ErrCodeToolNameRequired,
		"tool name is required",
		domainerror.ErrToolNameRequired,
	)
}

func urlRequiredError() error {
	return domainerror.NewToolError(
		domainerror.ErrCodeToolURLRequired,
		"tool url is required",
		domainerror.ErrToolURLRequired,
	)
}

func categoryRequiredError() error {
	return domainerror.NewToolError(
		domainerror.ErrCodeToolCategoryRequired,
		"tool must reference one of your categories",
		domainerror.ErrToolCategoryRequired,
	)
}

func invalidColorError() error {
	return domainerror.NewToolError(
		domainerror.ErrCodeInvalidToolColor,
		"color must be a valid hex format (#XXXXXX)",
		domainerror.ErrInvalidColorFormat,
	)
}

func notFoundError() error {
	return domainerror.NewToolError(
		domainerror.ErrCodeToolNotFound,
		"tool not found",
		domainerror.ErrToolNotFound,
	)
}
