package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/toolbox/backend/internal/application/adapter"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordOutput represents the output of password reset.
type ResetPasswordOutput struct {
	Message string
}

// ResetPasswordUseCase handles password reset logic.
type ResetPasswordUseCase struct {
	userRepo          adapter.UserRepository
	passwordService   adapter.PasswordService
	resetTokenService adapter.PasswordResetTokenService
	tokenService      adapter.TokenService
	sessions          adapter.SessionNotifier
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	resetTokenService adapter.PasswordResetTokenService,
	tokenService adapter.TokenService,
	sessions adapter.SessionNotifier,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:          userRepo,
		passwordService:   passwordService,
		resetTokenService: resetTokenService,
		tokenService:      tokenService,
		sessions:          sessions,
	}
}

// Execute sets the new password, revokes every refresh token of the user and
// ends the active session.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	if input.Token == "" || input.NewPassword == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingFields, nil)
	}

	resetToken, err := uc.resetTokenService.ValidateResetToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidResetToken, domainerror.ErrInvalidResetToken)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, domainerror.ErrWeakPassword)
	}

	user, err := uc.userRepo.FindByID(ctx, resetToken.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	// Password was already reset, the remaining steps only log on failure
	if err := uc.resetTokenService.ConsumeResetToken(ctx, input.Token); err != nil {
		slog.Error("Failed to consume reset token", "error", err, "user_id", user.ID)
	}
	if err := uc.tokenService.RevokeAllForUser(ctx, user.ID); err != nil {
		slog.Error("Failed to revoke refresh tokens", "error", err, "user_id", user.ID)
	}
	if uc.sessions != nil {
		uc.sessions.SignedOut(user.ID)
	}

	return &ResetPasswordOutput{
		Message: "Password has been successfully reset",
	}, nil
}
