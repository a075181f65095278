package dto

import (
	"time"

	"github.com/toolbox/backend/internal/domain/entity"
)

// SetThemeRequest represents the request body for setting the theme.
type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// ThemeResponse carries the current theme.
type ThemeResponse struct {
	Theme  string `json:"theme"`
	Seeded bool   `json:"seeded,omitempty"`
}

// InstallPromptResponse tells the client whether to offer installation.
type InstallPromptResponse struct {
	Show         bool       `json:"show"`
	DismissedAt  *time.Time `json:"dismissed_at,omitempty"`
	NextPromptAt *time.Time `json:"next_prompt_at,omitempty"`
}

// ToInstallPromptResponse converts the install prompt status.
func ToInstallPromptResponse(status *entity.InstallPromptStatus) InstallPromptResponse {
	return InstallPromptResponse{
		Show:         status.Show,
		DismissedAt:  status.DismissedAt,
		NextPromptAt: status.NextPromptAt,
	}
}
