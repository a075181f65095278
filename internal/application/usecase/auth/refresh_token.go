package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/toolbox/backend/internal/application/adapter"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// RefreshTokenUseCase rotates a token pair. The presented refresh token is
// revoked before the new pair is issued.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the token refresh.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingToken, nil)
	}

	// Validate refresh token, including revocation
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, domainerror.ErrInvalidToken)
	}

	// The account may have been removed since the token was issued
	if _, err := uc.userRepo.FindByID(ctx, claims.UserID); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, domainerror.ErrUserNotFound)
	}

	// Invalidate old refresh token
	if err := uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate old token: %w", err)
	}

	tokenPair, err := uc.tokenService.IssueTokenPair(ctx, claims.UserID, claims.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
	}, nil
}
