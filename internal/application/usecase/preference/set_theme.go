package preference

import (
	"context"
	"log/slog"
	"strings"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// SetThemeInput represents the input for storing a theme.
type SetThemeInput struct {
	Owner string
	Theme string
}

// SetThemeUseCase stores an explicit theme.
type SetThemeUseCase struct {
	prefRepo adapter.PreferenceRepository
}

// NewSetThemeUseCase creates a new SetThemeUseCase instance.
func NewSetThemeUseCase(prefRepo adapter.PreferenceRepository) *SetThemeUseCase {
	return &SetThemeUseCase{
		prefRepo: prefRepo,
	}
}

// Execute validates and persists the theme.
func (uc *SetThemeUseCase) Execute(ctx context.Context, input SetThemeInput) (*ThemeOutput, error) {
	if err := requireOwner(input.Owner); err != nil {
		return nil, err
	}

	theme := entity.Theme(strings.ToLower(strings.TrimSpace(input.Theme)))
	if !theme.IsValid() {
		return nil, domainerror.NewPreferenceError(
			domainerror.ErrCodeInvalidTheme,
			"theme must be 'light' or 'dark'",
			domainerror.ErrInvalidTheme,
		)
	}

	if err := uc.prefRepo.SetTheme(ctx, input.Owner, theme); err != nil {
		slog.Error("Failed to store theme", "owner", input.Owner, "error", err)
		return nil, domainerror.NewStoreError("store theme", err)
	}

	return &ThemeOutput{Theme: theme}, nil
}
