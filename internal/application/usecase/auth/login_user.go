package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	sessions        adapter.SessionNotifier
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	sessions adapter.SessionNotifier,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		sessions:        sessions,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingFields, nil)
	}

	// Find user by email
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Return generic error to prevent email enumeration
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, domainerror.ErrInvalidCredentials)
	}

	// Accounts created through a provider have no password
	if user.PasswordHash == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, domainerror.ErrInvalidCredentials)
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, domainerror.ErrInvalidCredentials)
	}

	tokenPair, err := uc.tokenService.IssueTokenPair(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if uc.sessions != nil {
		uc.sessions.SignedIn(user)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
		User:         user,
	}, nil
}
