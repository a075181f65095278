package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
	// UserID is the caller's id when the request also carried a valid access token.
	UserID uuid.UUID
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
	sessions     adapter.SessionNotifier
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService, sessions adapter.SessionNotifier) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
		sessions:     sessions,
	}
}

// Execute revokes the refresh token and ends the user's session.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if input.RefreshToken == "" && input.UserID == uuid.Nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingToken, nil)
	}

	userID := input.UserID
	if input.RefreshToken != "" {
		if claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken); err == nil && userID == uuid.Nil {
			userID = claims.UserID
		}
		// Revocation errors are ignored, the token might already be invalid
		if err := uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken); err != nil {
			slog.Debug("Refresh token revocation skipped", "error", err)
		}
	}

	if userID != uuid.Nil && uc.sessions != nil {
		uc.sessions.SignedOut(userID)
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
