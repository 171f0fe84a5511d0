// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/ledger-service/internal/http/types"
	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/types"
	"github.com/canonical/ledger-service/pkg/authentication"
	"github.com/canonical/ledger-service/pkg/identity"
)

type API struct {
	service  ServiceInterface
	identity identity.ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, identitySvc identity.ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		identity: identitySvc,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants/create", a.createTenant)
	mux.Post("/api/v0/tenants/update", a.updateTenant)
	mux.Post("/api/v0/tenants/delete", a.deleteTenant)
	mux.Post("/api/v0/tenants/list", a.listTenants)
	mux.Post("/api/v0/tenants/user/update", a.updateUserTenant)
}

// caller resolves the authenticated request to an active user.
func (a *API) caller(r *http.Request) (*types.User, *types.VerifiedIdentity, error) {
	verified, ok := authentication.GetIdentity(r.Context())
	if !ok {
		return nil, nil, types.ErrVerificationFailed
	}
	user, err := a.identity.UserForIdentity(r.Context(), verified)
	if err != nil {
		return nil, nil, err
	}
	return user, verified, nil
}

type createTenantRequest struct {
	Tenant CreateTenantParams `json:"tenant"`
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	user, verified, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := createTenantRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}

	tenant, err := a.service.CreateTenant(r.Context(), user, verified.DisplayName(), req.Tenant)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"tenant": tenant})
}

type updateTenantRequest struct {
	Tenant UpdateTenantParams `json:"tenant"`
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	user, _, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := updateTenantRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}
	if err := a.validate.Struct(req.Tenant); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	tenant, err := a.service.UpdateTenant(r.Context(), user.ID, req.Tenant)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"tenant": tenant})
}

type deleteTenantRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	user, _, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := deleteTenantRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	if err := a.service.DeleteTenant(r.Context(), user.ID, req.TenantID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"tenant_id": req.TenantID})
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	user, verified, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	tenants, err := a.service.ListTenantsByUser(r.Context(), user.ID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{
		"user_id":      user.ID,
		"auth_user_id": verified.ExternalID,
		"tenants":      tenants,
	})
}

func (a *API) updateUserTenant(w http.ResponseWriter, r *http.Request) {
	user, _, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := MembershipUpdate{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	member, err := a.service.UpdateUserTenant(r.Context(), user.ID, req)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"membership": member})
}
