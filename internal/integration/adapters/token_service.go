// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/persistence"
)

const (
	tokenIssuer = "toolbox"

	// Durations used when the client asks to be remembered.
	rememberMeAccessTokenDuration  = 7 * 24 * time.Hour
	rememberMeRefreshTokenDuration = 30 * 24 * time.Hour

	resetTokenDuration = time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenServiceConfig holds signing and lifetime settings.
type TokenServiceConfig struct {
	Secret          string
	AccessDuration  time.Duration
	RefreshDuration time.Duration
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret          []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	tokenRepository persistence.TokenRepository
}

// NewTokenService creates a new token service instance.
func NewTokenService(config TokenServiceConfig, tokenRepository persistence.TokenRepository) adapter.TokenService {
	if config.AccessDuration <= 0 {
		config.AccessDuration = 15 * time.Minute
	}
	if config.RefreshDuration <= 0 {
		config.RefreshDuration = 7 * 24 * time.Hour
	}
	return &tokenService{
		secret:          []byte(config.Secret),
		accessDuration:  config.AccessDuration,
		refreshDuration: config.RefreshDuration,
		tokenRepository: tokenRepository,
	}
}

// IssueTokenPair generates a new access and refresh token pair and records the refresh token.
func (s *tokenService) IssueTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	accessDuration := s.accessDuration
	refreshDuration := s.refreshDuration
	if rememberMe {
		accessDuration = rememberMeAccessTokenDuration
		refreshDuration = rememberMeRefreshTokenDuration
	}

	now := time.Now().UTC()

	accessToken, err := s.generateJWT(userID, email, tokenTypeAccess, now, accessDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateJWT(userID, email, tokenTypeRefresh, now, refreshDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepository.SaveRefreshToken(ctx, refreshToken, userID, now.Add(refreshDuration)); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(accessDuration),
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeAccess)
}

// ValidateRefreshToken validates a refresh token, rejecting revoked ones.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.validate(token, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	valid, err := s.tokenRepository.IsRefreshTokenValid(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, domainerror.ErrInvalidToken
	}
	return claims, nil
}

// RevokeRefreshToken revokes a single refresh token.
func (s *tokenService) RevokeRefreshToken(ctx context.Context, token string) error {
	return s.tokenRepository.RevokeRefreshToken(ctx, token)
}

// RevokeAllForUser revokes every refresh token of the user.
func (s *tokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.tokenRepository.RevokeAllUserRefreshTokens(ctx, userID)
}

func (s *tokenService) validate(token, tokenType string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: expected %s token", domainerror.ErrInvalidToken, tokenType)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *tokenService) generateJWT(userID uuid.UUID, email, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := CustomClaims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}
	return claims, nil
}

// passwordResetTokenService implements the adapter.PasswordResetTokenService interface.
type passwordResetTokenService struct {
	tokenRepository persistence.TokenRepository
}

// NewPasswordResetTokenService creates a new password reset token service instance.
func NewPasswordResetTokenService(tokenRepository persistence.TokenRepository) adapter.PasswordResetTokenService {
	return &passwordResetTokenService{
		tokenRepository: tokenRepository,
	}
}

// GenerateResetToken creates a random single-use token valid for one hour.
func (s *passwordResetTokenService) GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)
	expiresAt := time.Now().UTC().Add(resetTokenDuration)

	if err := s.tokenRepository.SavePasswordResetToken(ctx, token, userID, email, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save reset token: %w", err)
	}

	return &adapter.PasswordResetToken{
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateResetToken returns the token when it is unused and not expired.
func (s *passwordResetTokenService) ValidateResetToken(ctx context.Context, token string) (*adapter.PasswordResetToken, error) {
	resetToken, err := s.tokenRepository.GetPasswordResetToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}
	if resetToken == nil || time.Now().UTC().After(resetToken.ExpiresAt) {
		return nil, domainerror.ErrInvalidResetToken
	}

	return &adapter.PasswordResetToken{
		Token:     resetToken.Token,
		UserID:    resetToken.UserID,
		Email:     resetToken.Email,
		ExpiresAt: resetToken.ExpiresAt,
	}, nil
}

// ConsumeResetToken marks the token as used.
func (s *passwordResetTokenService) ConsumeResetToken(ctx context.Context, token string) error {
	return s.tokenRepository.MarkPasswordResetTokenUsed(ctx, token)
}
