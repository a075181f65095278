package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is the credential pair handed to a signed-in client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenClaims are the verified contents of an access or refresh token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	// IssueTokenPair creates an access/refresh pair and records the refresh token.
	IssueTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*TokenPair, error)

	// ValidateAccessToken verifies an access token.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken verifies a refresh token's signature and that it was not revoked.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// RevokeRefreshToken revokes a single refresh token.
	RevokeRefreshToken(ctx context.Context, token string) error

	// RevokeAllForUser revokes every refresh token of the user.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// PasswordResetToken is a single-use token emailed to a user.
type PasswordResetToken struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// PasswordResetTokenService manages password reset tokens.
type PasswordResetTokenService interface {
	// GenerateResetToken creates and stores a new reset token.
	GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*PasswordResetToken, error)

	// ValidateResetToken returns the token if it exists, is unused and has not expired.
	ValidateResetToken(ctx context.Context, token string) (*PasswordResetToken, error)

	// ConsumeResetToken marks the token as used.
	ConsumeResetToken(ctx context.Context, token string) error
}
