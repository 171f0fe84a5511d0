// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types maps domain errors onto the standard json response envelope
// used by every HTTP endpoint.
package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/ledger-service/internal/types"
)

// ErrorResponse is the standard json error body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorStatus maps a domain error kind onto its HTTP status code.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidAuthType),
		errors.Is(err, types.ErrVerificationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, types.ErrUserNotFound),
		errors.Is(err, types.ErrTenantNotFound),
		errors.Is(err, types.ErrLedgerNotFound),
		errors.Is(err, types.ErrInviteNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInvalidQuery),
		errors.Is(err, types.ErrInvalidTarget):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrMaxAdminsReached),
		errors.Is(err, types.ErrMaxMembersReached),
		errors.Is(err, types.ErrMaxInvitesReached),
		errors.Is(err, types.ErrMaxLedgersReached),
		errors.Is(err, types.ErrMaxTenantsReached):
		return http.StatusForbidden
	case errors.Is(err, types.ErrInviteAlreadyExists),
		errors.Is(err, types.ErrInviteNotPending):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes v as a json response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the standard json error body for a domain error.
func WriteError(w http.ResponseWriter, err error) {
	status := ErrorStatus(err)
	WriteJSON(w, status, ErrorResponse{Status: status, Message: err.Error()})
}
