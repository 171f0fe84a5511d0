// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring"
	"github.com/canonical/ledger-service/internal/tracing"
)

// CredentialTypeHeader selects which registered verifier checks the bearer
// token. Absent the header, the default OIDC verifier is used.
const (
	CredentialTypeHeader  = "X-Auth-Type"
	DefaultCredentialType = "oidc"
)

type Middleware struct {
	registry RegistryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorizedResponse(w, "missing authorization header")
				return
			}

			credentialType := r.Header.Get(CredentialTypeHeader)
			if credentialType == "" {
				credentialType = DefaultCredentialType
			}

			verifier, err := m.registry.VerifierFor(credentialType)
			if err != nil {
				m.logger.Debugf("unknown credential type %q: %v", credentialType, err)
				m.unauthorizedResponse(w, "unsupported credential type")
				return
			}

			identity, err := verifier.VerifyCredential(ctx, token)
			if err != nil {
				m.logger.Debugf("credential verification failed: %v", err)
				m.logger.Security().AuthFailure("unknown", credentialType)
				m.unauthorizedResponse(w, "invalid token")
				return
			}

			m.logger.Security().AuthSuccess(identity.ExternalID, credentialType)

			// Credential is valid, inject the verified identity into context
			ctx = WithIdentity(ctx, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func NewMiddleware(registry RegistryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		registry: registry,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
