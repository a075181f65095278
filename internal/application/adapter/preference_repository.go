package adapter

import (
	"context"
	"time"

	"github.com/toolbox/backend/internal/domain/entity"
)

// PreferenceRepository stores presentation preferences keyed by owner.
type PreferenceRepository interface {
	// Get returns the owner's preferences. Unset fields are zero values; a missing
	// owner is not an error.
	Get(ctx context.Context, owner string) (*entity.Preferences, error)

	// SetTheme persists the theme flag.
	SetTheme(ctx context.Context, owner string, theme entity.Theme) error

	// SetInstallPromptDismissedAt records when the install prompt was dismissed.
	SetInstallPromptDismissedAt(ctx context.Context, owner string, at time.Time) error
}
