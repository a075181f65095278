package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/toolbox/backend/internal/application/adapter"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

const forgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordInput represents the input for forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	emailService      adapter.EmailService
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailService adapter.EmailService,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailService:      emailService,
		appBaseURL:        appBaseURL,
	}
}

// Execute performs the forgot password request.
// Always returns success to prevent email enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	email := normalizeEmail(input.Email)
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, domainerror.ErrInvalidEmail)
	}

	output := &ForgotPasswordOutput{Message: forgotPasswordMessage}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		slog.Debug("Forgot password requested for unknown email")
		return output, nil
	}

	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to generate reset token", "error", err, "user_id", user.ID)
		return output, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	if uc.emailService == nil {
		// Development fallback when email is not configured
		slog.Info("Password reset token generated (email service not configured)",
			"user_id", user.ID,
			"reset_url", resetURL,
		)
		return output, nil
	}

	err = uc.emailService.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserEmail: user.Email,
		UserName:  user.DisplayLabel(),
		ResetURL:  resetURL,
		ExpiresIn: "1 hour",
	})
	if err != nil {
		slog.Error("Failed to queue password reset email", "error", err, "user_id", user.ID)
	} else {
		slog.Info("Password reset email queued", "user_id", user.ID)
	}

	return output, nil
}
