// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"fmt"

	"github.com/canonical/ledger-service/internal/types"
)

// CheckMaxRoles rejects adding a user with the given role to the tenant when
// the tenant's role quota is exhausted. Users are counted once across tenant
// and ledger memberships, and an admin anywhere in the tenant never counts as
// a member. The quota trips when count+1 reaches the maximum, keeping one
// slot in reserve.
func (e *Engine) CheckMaxRoles(ctx context.Context, tenant *types.Tenant, role types.Role) error {
	ctx, span := e.tracer.Start(ctx, "roles.Engine.CheckMaxRoles")
	defer span.End()

	tenantMembers, err := e.storage.ListTenantMembers(ctx, []string{tenant.ID})
	if err != nil {
		return fmt.Errorf("failed to list tenant members: %w", err)
	}

	ledgers, err := e.storage.ListLedgersByTenant(ctx, tenant.ID)
	if err != nil {
		return fmt.Errorf("failed to list tenant ledgers: %w", err)
	}
	ledgerIDs := make([]string, 0, len(ledgers))
	for _, l := range ledgers {
		ledgerIDs = append(ledgerIDs, l.ID)
	}

	ledgerMembers, err := e.storage.ListLedgerMembers(ctx, ledgerIDs)
	if err != nil {
		return fmt.Errorf("failed to list ledger members: %w", err)
	}

	admins := make(map[string]struct{})
	members := make(map[string]struct{})

	for _, m := range tenantMembers {
		if m.Status != types.StatusActive {
			continue
		}
		if m.Role == types.RoleAdmin {
			admins[m.UserID] = struct{}{}
		} else {
			members[m.UserID] = struct{}{}
		}
	}
	for _, m := range ledgerMembers {
		if m.Status != types.StatusActive {
			continue
		}
		if m.Role == types.RoleAdmin {
			admins[m.UserID] = struct{}{}
		} else {
			members[m.UserID] = struct{}{}
		}
	}
	for userID := range admins {
		delete(members, userID)
	}

	if role == types.RoleAdmin {
		if len(admins)+1 >= tenant.MaxAdminUsers {
			return types.ErrMaxAdminsReached
		}
		return nil
	}

	if len(members)+1 >= tenant.MaxMemberUsers {
		return types.ErrMaxMembersReached
	}
	return nil
}

// CheckMaxInvites rejects creating another invite when the tenant already has
// its maximum of pending invites.
func (e *Engine) CheckMaxInvites(ctx context.Context, tenant *types.Tenant) error {
	ctx, span := e.tracer.Start(ctx, "roles.Engine.CheckMaxInvites")
	defer span.End()

	count, err := e.storage.CountPendingInvitesByTenant(ctx, tenant.ID)
	if err != nil {
		return fmt.Errorf("failed to count pending invites: %w", err)
	}

	if count >= tenant.MaxInvites {
		return types.ErrMaxInvitesReached
	}
	return nil
}

// CheckMaxLedgers rejects creating another ledger when the tenant is at its
// ledger quota.
func (e *Engine) CheckMaxLedgers(ctx context.Context, tenant *types.Tenant) error {
	ctx, span := e.tracer.Start(ctx, "roles.Engine.CheckMaxLedgers")
	defer span.End()

	count, err := e.storage.CountLedgersByTenant(ctx, tenant.ID)
	if err != nil {
		return fmt.Errorf("failed to count ledgers: %w", err)
	}

	if count >= tenant.MaxLedgers {
		return types.ErrMaxLedgersReached
	}
	return nil
}
