// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invite

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
	mux.Post("/api/v0/invites/invite", a.inviteUser)
	mux.Post("/api/v0/invites/list", a.listInvites)
	mux.Post("/api/v0/invites/delete", a.deleteInvite)
	mux.Post("/api/v0/invites/redeem", a.redeemInvite)
}

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

type inviteUserRequest struct {
	Ticket TicketParams `json:"ticket"`
}

func (a *API) inviteUser(w http.ResponseWriter, r *http.Request) {
	user, _, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := inviteUserRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}
	if err := a.validate.Struct(req.Ticket); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	ticket, err := a.service.InviteUser(r.Context(), user, req.Ticket)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"invite": ticket})
}

type listInvitesRequest struct {
	TenantIDs []string `json:"tenant_ids,omitempty"`
	LedgerIDs []string `json:"ledger_ids,omitempty"`
}

func (a *API) listInvites(w http.ResponseWriter, r *http.Request) {
	user, _, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := listInvitesRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}

	tickets, err := a.service.ListInvites(r.Context(), user.ID, req.TenantIDs, req.LedgerIDs)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"tickets": tickets})
}

type deleteInviteRequest struct {
	InviteID string `json:"invite_id" validate:"required"`
}

func (a *API) deleteInvite(w http.ResponseWriter, r *http.Request) {
	_, _, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	req := deleteInviteRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	if err := a.service.DeleteInvite(r.Context(), req.InviteID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{"invite_id": req.InviteID})
}

func (a *API) redeemInvite(w http.ResponseWriter, r *http.Request) {
	user, verified, err := a.caller(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	tickets, err := a.service.RedeemInvite(r.Context(), user, verified)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]any{
		"user_id": user.ID,
		"invites": tickets,
	})
}
