// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ledger

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
)

// CreateLedgerParams are the caller supplied ledger fields.
type CreateLedgerParams struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// UpdateLedgerParams mutates a ledger and the caller's membership in it.
// Non-admins may only change the display name of their own membership.
type UpdateLedgerParams struct {
	LedgerID string       `json:"ledger_id" validate:"required"`
	Name     *string      `json:"name,omitempty"`
	Role     *types.Role  `json:"role,omitempty"`
	Right    *types.Right `json:"right,omitempty"`
	Default  *bool        `json:"default,omitempty"`
}

// AddUserParams attaches a user to a ledger with a role and an access right.
type AddUserParams struct {
	LedgerID string
	UserID   string
	Name     string
	Role     types.Role
	Right    types.Right
	Default  bool
}

type ServiceInterface interface {
	CreateLedger(ctx context.Context, userID string, params CreateLedgerParams) (*types.UserLedger, error)
	UpdateLedger(ctx context.Context, userID string, params UpdateLedgerParams) (*types.UserLedger, error)
	DeleteLedger(ctx context.Context, userID, ledgerID string) error
	AddUserToLedger(ctx context.Context, params AddUserParams) (*types.LedgerMember, error)
	ListLedgersByUser(ctx context.Context, userID string, tenantIDs []string) ([]*types.UserLedger, error)
}

type RolesInterface interface {
	GetRoles(ctx context.Context, userID string, tenantIDs, ledgerIDs []string) ([]*types.RoleRecord, error)
	CheckMaxRoles(ctx context.Context, tenant *types.Tenant, role types.Role) error
	CheckMaxLedgers(ctx context.Context, tenant *types.Tenant) error
	IsAdminOfTenant(ctx context.Context, userID, tenantID string) (bool, error)
	IsAdminOfLedger(ctx context.Context, userID, ledgerID string) (bool, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)

	CreateLedger(ctx context.Context, l *types.Ledger) (*types.Ledger, error)
	GetLedgerByID(ctx context.Context, id string) (*types.Ledger, error)
	GetLedgersByIDs(ctx context.Context, ids []string) ([]*types.Ledger, error)
	UpdateLedger(ctx context.Context, l *types.Ledger, paths []string) error
	DeleteLedger(ctx context.Context, id string) error
	AddLedgerMember(ctx context.Context, m *types.LedgerMember) (*types.LedgerMember, error)
	UpdateLedgerMember(ctx context.Context, m *types.LedgerMember, paths []string) error
	ListLedgerMembers(ctx context.Context, ledgerIDs []string) ([]*types.LedgerMember, error)
	ListLedgerMembershipsByUser(ctx context.Context, userID string) ([]*types.LedgerMember, error)
	ClearDefaultLedger(ctx context.Context, userID string) error
	DeleteLedgerMembers(ctx context.Context, ledgerID string) error
}
