package adapter

import "context"

// FederatedIdentity is the identity asserted by an external provider.
type FederatedIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

// IdentityVerifier validates credentials issued by a federated identity provider.
type IdentityVerifier interface {
	// Verify checks the credential and returns the identity it asserts.
	Verify(ctx context.Context, credential string) (*FederatedIdentity, error)

	// IsAvailable reports whether the provider is configured.
	IsAvailable() bool
}
