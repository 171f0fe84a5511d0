// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package user exposes the user-facing identity operations: first-login
// provisioning, user lookup and session token issuance.
package user

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/ledger-service/internal/http/types"
	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/types"
	"github.com/canonical/ledger-service/pkg/authentication"
	"github.com/canonical/ledger-service/pkg/identity"
)

type API struct {
	identity identity.ServiceInterface
	tenants  TenantsInterface
	tokens   TokensInterface

	logger logging.LoggerInterface
}

func NewAPI(identitySvc identity.ServiceInterface, tenants TenantsInterface, tokens TokensInterface, logger logging.LoggerInterface) *API {
	return &API{
		identity: identitySvc,
		tenants:  tenants,
		tokens:   tokens,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/users/ensure", a.ensureUser)
	mux.Post("/api/v0/users/find", a.findUser)
	mux.Post("/api/v0/users/token", a.sessionToken)
}

// ensureUser provisions the caller on first login and returns the user with
// its tenants.
func (a *API) ensureUser(w http.ResponseWriter, r *http.Request) {
	verified, ok := authentication.GetIdentity(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrVerificationFailed)
		return
	}

	user, err := a.identity.EnsureUser(r.Context(), verified)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	tenants, err := a.tenants.ListTenantsByUser(r.Context(), user.ID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"tenants": tenants,
	})
}

type findUserRequest struct {
	Query types.UserQuery `json:"query"`
}

func (a *API) findUser(w http.ResponseWriter, r *http.Request) {
	verified, ok := authentication.GetIdentity(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrVerificationFailed)
		return
	}
	if _, err := a.identity.UserForIdentity(r.Context(), verified); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := findUserRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}

	results, err := a.identity.FindUser(r.Context(), req.Query)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{
		"query":   req.Query,
		"results": results,
	})
}

func (a *API) sessionToken(w http.ResponseWriter, r *http.Request) {
	verified, ok := authentication.GetIdentity(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrVerificationFailed)
		return
	}
	user, err := a.identity.UserForIdentity(r.Context(), verified)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	signed, err := a.tokens.IssueSessionToken(r.Context(), user.ID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"token": signed})
}
