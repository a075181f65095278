// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/toolbox/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
// Email format and password strength are checked by the use case so that
// each failure keeps its own error code.
type RegisterRequest struct {
	Email    string `json:"email" binding:"max=255"`
	Name     string `json:"name" binding:"max=100"`
	Password string `json:"password" binding:"max=72"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// GoogleLoginRequest carries a Google ID token obtained by the client.
type GoogleLoginRequest struct {
	IDToken    string `json:"id_token" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ForgotPasswordRequest represents the request body for forgot password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest represents the request body for password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// AuthResponse represents the response for sign-in endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
	Created      bool         `json:"created,omitempty"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// SessionResponse describes the signed-in user.
type SessionResponse struct {
	User UserResponse `json:"user"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.DisplayLabel(),
		Provider:  string(user.Provider),
		CreatedAt: user.CreatedAt,
	}
}
