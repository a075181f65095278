package entity

import "time"

// Theme is the persisted light/dark flag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// InstallPromptCooldown suppresses the install prompt after a dismissal.
const InstallPromptCooldown = 7 * 24 * time.Hour

// IsValid reports whether the theme is one of the known values.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFromColorScheme maps a platform color-scheme hint to a theme.
// Anything other than "dark" yields light.
func ThemeFromColorScheme(hint string) Theme {
	if hint == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Preferences are the per-owner presentation settings.
// The owner is either a signed-in user or an anonymous device.
type Preferences struct {
	Owner                    string
	Theme                    Theme
	InstallPromptDismissedAt *time.Time
}

// InstallPromptStatus describes whether the install prompt may be shown.
type InstallPromptStatus struct {
	Show         bool
	DismissedAt  *time.Time
	NextPromptAt *time.Time
}

// InstallPrompt evaluates the cooldown at now.
func (p *Preferences) InstallPrompt(now time.Time) InstallPromptStatus {
	if p.InstallPromptDismissedAt == nil {
		return InstallPromptStatus{Show: true}
	}
	next := p.InstallPromptDismissedAt.Add(InstallPromptCooldown)
	return InstallPromptStatus{
		Show:         !now.Before(next),
		DismissedAt:  p.InstallPromptDismissedAt,
		NextPromptAt: &next,
	}
}
