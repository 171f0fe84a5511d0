// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ledger

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
	mux.Post("/api/v0/ledgers/create", a.createLedger)
	mux.Post("/api/v0/ledgers/update", a.updateLedger)
	mux.Post("/api/v0/ledgers/delete", a.deleteLedger)
	mux.Post("/api/v0/ledgers/list", a.listLedgers)
}

func (a *API) caller(r *http.Request) (*types.User, error) {
	verified, ok := authentication.GetIdentity(r.Context())
	if !ok {
		return nil, types.ErrVerificationFailed
	}
	return a.identity.UserForIdentity(r.Context(), verified)
}

type createLedgerRequest struct {
	Ledger CreateLedgerParams `json:"ledger"`
}

func (a *API) createLedger(w http.ResponseWriter, r *http.Request) {
	user, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := createLedgerRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}
	if err := a.validate.Struct(req.Ledger); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	ledger, err := a.service.CreateLedger(r.Context(), user.ID, req.Ledger)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"ledger": ledger})
}

type updateLedgerRequest struct {
	Ledger UpdateLedgerParams `json:"ledger"`
}

func (a *API) updateLedger(w http.ResponseWriter, r *http.Request) {
	user, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := updateLedgerRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}
	if err := a.validate.Struct(req.Ledger); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	ledger, err := a.service.UpdateLedger(r.Context(), user.ID, req.Ledger)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"ledger": ledger})
}

type deleteLedgerRequest struct {
	LedgerID string `json:"ledger_id" validate:"required"`
}

func (a *API) deleteLedger(w http.ResponseWriter, r *http.Request) {
	user, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := deleteLedgerRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	if err := a.service.DeleteLedger(r.Context(), user.ID, req.LedgerID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"ledger_id": req.LedgerID})
}

type listLedgersRequest struct {
	TenantIDs []string `json:"tenant_ids,omitempty"`
}

func (a *API) listLedgers(w http.ResponseWriter, r *http.Request) {
	user, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := listLedgersRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}

	ledgers, err := a.service.ListLedgersByUser(r.Context(), user.ID, req.TenantIDs)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{
		"user_id": user.ID,
		"ledgers": ledgers,
	})
}
