package category

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

// UpdateCategoryInput represents the input for category update.
// Nil fields are left untouched.
type UpdateCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       *string
	Emoji      *string
	Color      *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
// Tools keep the color they were created with when a category is recolored.
type UpdateCategoryUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(workspaces store.WorkspaceProvider) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		workspaces: workspaces,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	patch := entity.CategoryPatch{}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}

	if input.Emoji != nil {
		emoji, err := validateEmoji(*input.Emoji)
		if err != nil {
			return nil, err
		}
		patch.Emoji = &emoji
	}

	if input.Color != nil {
		color := strings.TrimSpace(*input.Color)
		if !entity.IsValidHexColor(color) {
			return nil, invalidColorError()
		}
		patch.Color = &color
	}

	if patch.IsEmpty() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryPatch,
			"at least one of name, emoji or color must be provided",
			nil,
		)
	}

	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	category, err := ws.Categories.Edit(ctx, input.CategoryID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, notFoundError()
		}
		slog.Warn("Failed to update category", "user_id", input.UserID, "category_id", input.CategoryID, "error", err)
		return nil, err
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}

func notFoundError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}
