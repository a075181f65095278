package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
)

const (
	prefFieldTheme            = "theme"
	prefFieldInstallDismissed = "install_prompt_dismissed_at"
)

// preferenceRepository keeps one redis hash per owner.
type preferenceRepository struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewPreferenceRepository creates a preference store on top of redis.
// Keys are "<keyPrefix>prefs:<owner>".
func NewPreferenceRepository(client redis.UniversalClient, keyPrefix string) adapter.PreferenceRepository {
	return &preferenceRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *preferenceRepository) key(owner string) string {
	return r.keyPrefix + "prefs:" + owner
}

// Get returns the stored preferences. A missing hash yields zero values.
func (r *preferenceRepository) Get(ctx context.Context, owner string) (*entity.Preferences, error) {
	fields, err := r.client.HGetAll(ctx, r.key(owner)).Result()
	if err != nil {
		return nil, err
	}

	prefs := &entity.Preferences{
		Owner: owner,
		Theme: entity.Theme(fields[prefFieldTheme]),
	}
	if raw, ok := fields[prefFieldInstallDismissed]; ok && raw != "" {
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			slog.Warn("Ignoring malformed install prompt timestamp", "owner", owner, "value", raw, "error", err)
		} else {
			at = at.UTC()
			prefs.InstallPromptDismissedAt = &at
		}
	}
	return prefs, nil
}

// SetTheme persists the theme flag.
func (r *preferenceRepository) SetTheme(ctx context.Context, owner string, theme entity.Theme) error {
	return r.client.HSet(ctx, r.key(owner), prefFieldTheme, string(theme)).Err()
}

// SetInstallPromptDismissedAt records when the install prompt was dismissed.
func (r *preferenceRepository) SetInstallPromptDismissedAt(ctx context.Context, owner string, at time.Time) error {
	return r.client.HSet(ctx, r.key(owner), prefFieldInstallDismissed, at.UTC().Format(time.RFC3339Nano)).Err()
}
