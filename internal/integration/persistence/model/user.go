package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name            string    `gorm:"type:varchar(100)"`
	PasswordHash    string    `gorm:"type:varchar(255)"`
	Provider        string    `gorm:"type:varchar(20);not null;default:'password'"`
	ProviderSubject string    `gorm:"type:varchar(255);index"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		PasswordHash:    m.PasswordHash,
		Provider:        entity.AuthProvider(m.Provider),
		ProviderSubject: m.ProviderSubject,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	provider := string(user.Provider)
	if provider == "" {
		provider = string(entity.AuthProviderPassword)
	}
	return &UserModel{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PasswordHash:    user.PasswordHash,
		Provider:        provider,
		ProviderSubject: user.ProviderSubject,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// RefreshTokenModel tracks issued refresh tokens so they can be revoked.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token     string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Revoked   bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PasswordResetTokenModel represents the password_reset_tokens table.
type PasswordResetTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Token     string     `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Used      bool       `gorm:"not null;default:false"`
	UsedAt    *time.Time `gorm:"type:timestamptz"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PasswordResetTokenModel.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
