// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/types"
)

// Registry maps credential types onto the verifier that can check them.
// Unknown credential types are rejected before any provider round trip.
type Registry struct {
	verifiers map[string]CredentialVerifierInterface

	logger logging.LoggerInterface
}

var _ RegistryInterface = (*Registry)(nil)

func (r *Registry) Register(credentialType string, verifier CredentialVerifierInterface) {
	r.verifiers[credentialType] = verifier
}

func (r *Registry) VerifierFor(credentialType string) (CredentialVerifierInterface, error) {
	verifier, ok := r.verifiers[credentialType]
	if !ok {
		return nil, types.ErrInvalidAuthType
	}
	return verifier, nil
}

func NewRegistry(logger logging.LoggerInterface) *Registry {
	return &Registry{
		verifiers: make(map[string]CredentialVerifierInterface),
		logger:    logger,
	}
}
