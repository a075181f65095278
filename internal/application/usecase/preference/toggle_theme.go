package preference

import (
	"context"
	"log/slog"

	"github.com/toolbox/backend/internal/application/adapter"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// ToggleThemeInput represents the input for flipping the theme.
type ToggleThemeInput struct {
	Owner       string
	ColorScheme string
}

// ToggleThemeUseCase flips between light and dark.
type ToggleThemeUseCase struct {
	getTheme *GetThemeUseCase
	prefRepo adapter.PreferenceRepository
}

// NewToggleThemeUseCase creates a new ToggleThemeUseCase instance.
func NewToggleThemeUseCase(prefRepo adapter.PreferenceRepository) *ToggleThemeUseCase {
	return &ToggleThemeUseCase{
		getTheme: NewGetThemeUseCase(prefRepo),
		prefRepo: prefRepo,
	}
}

// Execute persists and returns the opposite of the current theme.
func (uc *ToggleThemeUseCase) Execute(ctx context.Context, input ToggleThemeInput) (*ThemeOutput, error) {
	current, err := uc.getTheme.Execute(ctx, GetThemeInput(input))
	if err != nil {
		return nil, err
	}

	next := current.Theme.Toggle()
	if err := uc.prefRepo.SetTheme(ctx, input.Owner, next); err != nil {
		slog.Error("Failed to store toggled theme", "owner", input.Owner, "error", err)
		return nil, domainerror.NewStoreError("store theme", err)
	}

	return &ThemeOutput{Theme: next}, nil
}
