package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toolbox/backend/internal/integration/persistence/model"
)

// TokenRepository defines the interface for token persistence operations.
type TokenRepository interface {
	// SaveRefreshToken records an issued refresh token.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid reports whether the token exists, is not revoked and has not expired.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// RevokeRefreshToken marks a refresh token as revoked.
	RevokeRefreshToken(ctx context.Context, token string) error

	// RevokeAllUserRefreshTokens revokes every refresh token of a user.
	RevokeAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// SavePasswordResetToken stores a password reset token.
	SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error

	// GetPasswordResetToken returns an unused reset token, or nil when none matches.
	GetPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error)

	// MarkPasswordResetTokenUsed marks a password reset token as used.
	MarkPasswordResetTokenUsed(ctx context.Context, token string) error

	// PurgeExpired deletes refresh and reset tokens that expired before now.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// tokenRepository implements the TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}).Error
}

func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ? AND revoked = ? AND expires_at > ?", token, false, time.Now().UTC()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *tokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}

func (r *tokenRepository) RevokeAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}

func (r *tokenRepository) SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}).Error
}

func (r *tokenRepository) GetPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error) {
	var resetToken model.PasswordResetTokenModel
	result := r.db.WithContext(ctx).
		Where("token = ? AND used = ?", token, false).
		First(&resetToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &resetToken, nil
}

func (r *tokenRepository) MarkPasswordResetTokenUsed(ctx context.Context, token string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("token = ?", token).
		Updates(map[string]any{
			"used":    true,
			"used_at": &now,
		}).Error
}

func (r *tokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	var purged int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refresh := tx.Where("expires_at < ?", now.UTC()).Delete(&model.RefreshTokenModel{})
		if refresh.Error != nil {
			return refresh.Error
		}
		reset := tx.Where("expires_at < ?", now.UTC()).Delete(&model.PasswordResetTokenModel{})
		if reset.Error != nil {
			return reset.Error
		}
		purged = refresh.RowsAffected + reset.RowsAffected
		return nil
	})
	return purged, err
}
