// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthProvider identifies how a user proves their identity.
type AuthProvider string

const (
	AuthProviderPassword AuthProvider = "password"
	AuthProviderGoogle   AuthProvider = "google"
)

// User represents a person signed in to the toolbox.
// The bookmarking core only reads ID and Name.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	Provider        AuthProvider
	ProviderSubject string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new password-based User.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Provider:     AuthProviderPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewFederatedUser creates a User whose identity is asserted by an external provider.
func NewFederatedUser(email, name string, provider AuthProvider, subject string) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		Provider:        provider,
		ProviderSubject: subject,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// DisplayLabel returns the name shown for the user, falling back to the email.
func (u *User) DisplayLabel() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
