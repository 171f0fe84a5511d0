// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/ledger-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type CredentialVerifierInterface interface {
	// VerifyCredential verifies an opaque bearer credential against the
	// backing identity provider.
	// Returns the verified external identity if the credential is valid, otherwise an error.
	VerifyCredential(ctx context.Context, rawToken string) (*types.VerifiedIdentity, error)
}

type RegistryInterface interface {
	// VerifierFor returns the verifier registered for the credential type.
	VerifierFor(credentialType string) (CredentialVerifierInterface, error)
}
