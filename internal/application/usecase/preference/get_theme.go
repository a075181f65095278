package preference

import (
	"context"
	"log/slog"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// GetThemeInput represents the input for reading the theme.
type GetThemeInput struct {
	Owner string
	// ColorScheme is the platform hint used when no theme is stored yet.
	ColorScheme string
}

// ThemeOutput carries the effective theme.
type ThemeOutput struct {
	Theme  entity.Theme
	Seeded bool
}

// GetThemeUseCase reads the stored theme, seeding it from the platform hint on first read.
type GetThemeUseCase struct {
	prefRepo adapter.PreferenceRepository
}

// NewGetThemeUseCase creates a new GetThemeUseCase instance.
func NewGetThemeUseCase(prefRepo adapter.PreferenceRepository) *GetThemeUseCase {
	return &GetThemeUseCase{
		prefRepo: prefRepo,
	}
}

// Execute returns the theme.
func (uc *GetThemeUseCase) Execute(ctx context.Context, input GetThemeInput) (*ThemeOutput, error) {
	if err := requireOwner(input.Owner); err != nil {
		return nil, err
	}

	prefs, err := uc.prefRepo.Get(ctx, input.Owner)
	if err != nil {
		slog.Error("Failed to read preferences", "owner", input.Owner, "error", err)
		return nil, domainerror.NewStoreError("load preferences", err)
	}
	if prefs.Theme.IsValid() {
		return &ThemeOutput{Theme: prefs.Theme}, nil
	}

	// Nothing stored yet: adopt the platform preference and remember it
	theme := entity.ThemeFromColorScheme(input.ColorScheme)
	if err := uc.prefRepo.SetTheme(ctx, input.Owner, theme); err != nil {
		slog.Error("Failed to seed theme", "owner", input.Owner, "error", err)
		return nil, domainerror.NewStoreError("seed theme", err)
	}

	slog.Debug("Theme seeded from color scheme", "owner", input.Owner, "theme", theme)
	return &ThemeOutput{Theme: theme, Seeded: true}, nil
}
