// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring"
	"github.com/canonical/ledger-service/internal/tracing"
	"github.com/canonical/ledger-service/internal/types"
)

// JWTVerifier verifies OIDC issued JWTs and maps their claims onto a
// provider-qualified external identity.
type JWTVerifier struct {
	verifier       *oidc.IDTokenVerifier
	credentialType string
	providerName   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ CredentialVerifierInterface = (*JWTVerifier)(nil)

func (v *JWTVerifier) VerifyCredential(ctx context.Context, rawToken string) (*types.VerifiedIdentity, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyCredential")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims struct {
		Subject  string `json:"sub"`
		Email    string `json:"email"`
		Nickname string `json:"nickname"`
		Username string `json:"preferred_username"`
	}

	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token carries no subject")
	}

	nick := claims.Nickname
	if nick == "" {
		nick = claims.Username
	}

	return &types.VerifiedIdentity{
		Type:       v.credentialType,
		ExternalID: claims.Subject,
		Provider:   v.providerName,
		Email:      claims.Email,
		Nick:       nick,
	}, nil
}

func NewJWTVerifier(
	provider ProviderInterface,
	credentialType string,
	providerName string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := &JWTVerifier{
		credentialType: credentialType,
		providerName:   providerName,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}

	config := &oidc.Config{
		SkipClientIDCheck: true,
		SkipIssuerCheck:   false,
	}

	v.verifier = provider.Verifier(config)

	return v
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	credentialType string,
	providerName string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:       verifier,
		credentialType: credentialType,
		providerName:   providerName,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}
