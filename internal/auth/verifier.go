package auth

import "context"

// CredentialVerifier is the seam where a real identity provider plugs in.
// Login consults it before creating a session; a verifying implementation
// can be swapped in without changing the service's public contract.
type CredentialVerifier interface {
	Verify(ctx context.Context, email string) error
}

// AllowAllVerifier accepts every email with no credential check. It is the
// storefront's current stand-in for a real auth exchange.
type AllowAllVerifier struct{}

func (AllowAllVerifier) Verify(context.Context, string) error {
	return nil
}
