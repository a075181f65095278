package adapters

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/toolbox/backend/internal/application/adapter"
)

// googleIssuers are the accepted "iss" values of Google ID tokens.
var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleIdentityVerifier validates Google ID tokens issued for the configured client.
type GoogleIdentityVerifier struct {
	clientID string
	validate tokenValidator
}

// NewGoogleIdentityVerifier creates a verifier. An empty clientID disables it.
func NewGoogleIdentityVerifier(clientID string) *GoogleIdentityVerifier {
	return &GoogleIdentityVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

// IsAvailable reports whether a client id is configured.
func (v *GoogleIdentityVerifier) IsAvailable() bool {
	return v.clientID != ""
}

// Verify checks signature, audience and issuer, then extracts the identity claims.
func (v *GoogleIdentityVerifier) Verify(ctx context.Context, credential string) (*adapter.FederatedIdentity, error) {
	if !v.IsAvailable() {
		return nil, errors.New("google sign-in is not configured")
	}

	payload, err := v.validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate google id token: %w", err)
	}
	if !googleIssuers[payload.Issuer] {
		return nil, fmt.Errorf("unexpected issuer %q", payload.Issuer)
	}

	identity := &adapter.FederatedIdentity{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
		Name:          claimString(payload.Claims, "name"),
	}
	if identity.Subject == "" || identity.Email == "" {
		return nil, errors.New("google id token lacks subject or email")
	}
	return identity, nil
}

func claimString(claims map[string]any, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}
	return ""
}

// claimBool accepts both JSON booleans and the "true" string some tokens carry.
func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

var _ adapter.IdentityVerifier = (*GoogleIdentityVerifier)(nil)
