// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"

	"github.com/toolbox/backend/internal/application/store"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Emoji  string
	Color  string // Optional, defaults to DefaultCategoryColor
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(workspaces store.WorkspaceProvider) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		workspaces: workspaces,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	emoji, err := validateEmoji(input.Emoji)
	if err != nil {
		return nil, err
	}

	// Validate color format if provided
	color := strings.TrimSpace(input.Color)
	if color != "" && !entity.IsValidHexColor(color) {
		return nil, invalidColorError()
	}
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	category, err := ws.Categories.Add(ctx, entity.CategoryDraft{
		Name:  name,
		Emoji: emoji,
		Color: color,
	})
	if err != nil {
		slog.Warn("Failed to create category", "user_id", input.UserID, "error", err)
		return nil, err
	}

	slog.Debug("Category created", "user_id", input.UserID, "category_id", category.ID)
	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateName trims name and enforces the required and length rules.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

// validateEmoji trims emoji and allows at most one user-perceived character.
func validateEmoji(emoji string) (string, error) {
	emoji = strings.TrimSpace(emoji)
	if uniseg.GraphemeClusterCount(emoji) > 1 {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryEmoji,
			"emoji must be a single character",
			domainerror.ErrInvalidCategoryEmoji,
		)
	}
	return emoji, nil
}

func invalidColorError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeInvalidColorFormat,
		"color must be a valid hex format (#XXXXXX)",
		domainerror.ErrInvalidColorFormat,
	)
}
