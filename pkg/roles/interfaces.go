// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
)

type EngineInterface interface {
	// GetRoles resolves the user's roles in the given tenants and ledgers,
	// applying peer visibility rules. At least one scope must be given.
	GetRoles(ctx context.Context, userID string, tenantIDs, ledgerIDs []string) ([]*types.RoleRecord, error)
	CheckMaxRoles(ctx context.Context, tenant *types.Tenant, role types.Role) error
	CheckMaxInvites(ctx context.Context, tenant *types.Tenant) error
	CheckMaxLedgers(ctx context.Context, tenant *types.Tenant) error
	IsAdminOfTenant(ctx context.Context, userID, tenantID string) (bool, error)
	IsAdminOfLedger(ctx context.Context, userID, ledgerID string) (bool, error)
}

type StorageInterface interface {
	GetLedgerByID(ctx context.Context, id string) (*types.Ledger, error)
	GetLedgersByIDs(ctx context.Context, ids []string) ([]*types.Ledger, error)
	ListTenantMembers(ctx context.Context, tenantIDs []string) ([]*types.TenantMember, error)
	ListLedgerMembers(ctx context.Context, ledgerIDs []string) ([]*types.LedgerMember, error)
	ListLedgersByTenant(ctx context.Context, tenantID string) ([]*types.Ledger, error)
	CountPendingInvitesByTenant(ctx context.Context, tenantID string) (int, error)
	CountLedgersByTenant(ctx context.Context, tenantID string) (int, error)
}
