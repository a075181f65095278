package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// LoginWithGoogleInput represents the input for provider sign-in.
type LoginWithGoogleInput struct {
	IDToken    string
	RememberMe bool
}

// LoginWithGoogleOutput represents the output of provider sign-in.
type LoginWithGoogleOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *entity.User
	Created      bool
}

// LoginWithGoogleUseCase signs a user in with a Google ID token. The first
// sign-in creates the account, or links it to an existing one with the same email.
type LoginWithGoogleUseCase struct {
	userRepo     adapter.UserRepository
	verifier     adapter.IdentityVerifier
	tokenService adapter.TokenService
	emailService adapter.EmailService
	sessions     adapter.SessionNotifier
}

// NewLoginWithGoogleUseCase creates a new LoginWithGoogleUseCase instance.
func NewLoginWithGoogleUseCase(
	userRepo adapter.UserRepository,
	verifier adapter.IdentityVerifier,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
	sessions adapter.SessionNotifier,
) *LoginWithGoogleUseCase {
	return &LoginWithGoogleUseCase{
		userRepo:     userRepo,
		verifier:     verifier,
		tokenService: tokenService,
		emailService: emailService,
		sessions:     sessions,
	}
}

// Execute performs the provider sign-in.
func (uc *LoginWithGoogleUseCase) Execute(ctx context.Context, input LoginWithGoogleInput) (*LoginWithGoogleOutput, error) {
	if uc.verifier == nil || !uc.verifier.IsAvailable() {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeProviderDisabled, domainerror.ErrProviderUnavailable)
	}
	if strings.TrimSpace(input.IDToken) == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingFields, nil)
	}

	identity, err := uc.verifier.Verify(ctx, input.IDToken)
	if err != nil {
		slog.Warn("Provider credential rejected", "error", err)
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, domainerror.ErrProviderTokenRejected)
	}
	if !identity.EmailVerified || identity.Email == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, domainerror.ErrProviderTokenRejected)
	}

	user, created, err := uc.resolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.tokenService.IssueTokenPair(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if created {
		queueWelcome(ctx, uc.emailService, user)
	}
	if uc.sessions != nil {
		uc.sessions.SignedIn(user)
	}

	return &LoginWithGoogleOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
		User:         user,
		Created:      created,
	}, nil
}

// resolveUser finds, links or creates the account asserted by identity.
func (uc *LoginWithGoogleUseCase) resolveUser(ctx context.Context, identity *adapter.FederatedIdentity) (*entity.User, bool, error) {
	email := normalizeEmail(identity.Email)

	user, err := uc.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if user.ProviderSubject == identity.Subject {
			return user, false, nil
		}
		if user.ProviderSubject != "" {
			// The email is bound to a different Google account
			return nil, false, domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, domainerror.ErrProviderTokenRejected)
		}
		user.ProviderSubject = identity.Subject
		if user.Name == "" {
			user.Name = identity.Name
		}
		user.UpdatedAt = time.Now().UTC()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, false, fmt.Errorf("failed to link provider account: %w", err)
		}
		slog.Info("Provider account linked", "user_id", user.ID)
		return user, false, nil

	case errors.Is(err, domainerror.ErrUserNotFound):
		user = entity.NewFederatedUser(email, identity.Name, entity.AuthProviderGoogle, identity.Subject)
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		slog.Info("User registered through provider", "user_id", user.ID)
		return user, true, nil

	default:
		return nil, false, fmt.Errorf("failed to find user: %w", err)
	}
}
