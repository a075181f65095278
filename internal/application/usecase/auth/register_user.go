// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// emailRegex is compiled once at package level for performance.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
	sessions        adapter.SessionNotifier
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
// emailService and sessions may be nil.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
	sessions adapter.SessionNotifier,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailService:    emailService,
		sessions:        sessions,
	}
}

// Execute performs the user registration and signs the new user in.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingFields, nil)
	}

	// Validate email format
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, domainerror.ErrInvalidEmail)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, domainerror.ErrWeakPassword)
	}

	// Check if email already exists
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, domainerror.ErrEmailAlreadyExists)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, strings.TrimSpace(input.Name), passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := uc.tokenService.IssueTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	queueWelcome(ctx, uc.emailService, user)
	if uc.sessions != nil {
		uc.sessions.SignedIn(user)
	}

	slog.Info("User registered", "user_id", user.ID)
	return &RegisterUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
		User:         user,
	}, nil
}

// queueWelcome queues the welcome email. Failures never fail the sign-up.
func queueWelcome(ctx context.Context, emailService adapter.EmailService, user *entity.User) {
	if emailService == nil {
		return
	}
	err := emailService.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
		UserEmail: user.Email,
		UserName:  user.DisplayLabel(),
	})
	if err != nil {
		slog.Error("Failed to queue welcome email", "error", err, "user_id", user.ID)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
