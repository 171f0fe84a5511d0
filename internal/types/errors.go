// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
)

// Domain error kinds. Services return these (possibly wrapped) so that
// handlers can map them to response codes without string matching.
var (
	ErrInvalidAuthType    = errors.New("invalid auth type")
	ErrVerificationFailed = errors.New("credential verification failed")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserCreationRace   = errors.New("user creation race detected")

	ErrTenantNotFound = errors.New("tenant not found")
	ErrLedgerNotFound = errors.New("ledger not found")

	ErrInvalidQuery = errors.New("invalid query")

	ErrMaxAdminsReached  = errors.New("max admins reached")
	ErrMaxMembersReached = errors.New("max members reached")
	ErrMaxInvitesReached = errors.New("max invites reached")
	ErrMaxLedgersReached = errors.New("max ledgers per tenant reached")
	ErrMaxTenantsReached = errors.New("max tenants reached")

	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteAlreadyExists = errors.New("invite already exists")
	ErrInviteNotPending    = errors.New("invite not pending")
	ErrInvalidTarget       = errors.New("either ledger or tenant must be set")

	ErrNotAuthorized = errors.New("not authorized")

	// Data integrity faults. These indicate corrupted state rather than a
	// normal rejection and are never resolved silently.
	ErrMultipleRolesFound = errors.New("multiple roles found")
	ErrRefNotFound        = errors.New("membership ref not found")
)
