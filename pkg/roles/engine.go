// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"fmt"

	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring"
	"github.com/canonical/ledger-service/internal/tracing"
	"github.com/canonical/ledger-service/internal/types"
)

// Engine resolves effective roles and enforces per-tenant quotas. It is the
// single place where peer visibility is decided: admins of a scope see every
// member of that scope, everyone else only sees themselves.
type Engine struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ EngineInterface = (*Engine)(nil)

func NewEngine(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Engine {
	return &Engine{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// scopedMember is one membership row reduced to the fields the visibility
// filter cares about. Tenant and ledger rows share this shape.
type scopedMember struct {
	scopeID  string
	tenantID string
	userID   string
	role     types.Role
	right    types.Right
}

// visibleScope is one scope the caller belongs to, with the peer rows the
// caller is allowed to see.
type visibleScope struct {
	scopeID       string
	tenantID      string
	my            scopedMember
	adminUserIDs  []string
	memberUserIDs []string
}

// groupVisible groups rows by scope, drops scopes the caller has no
// membership in, and removes peer rows the caller may not see.
func groupVisible(rows []scopedMember, userID string) []*visibleScope {
	var order []string
	type group struct {
		scope *visibleScope
		rows  []scopedMember
		mine  bool
	}
	groups := make(map[string]*group)

	for _, r := range rows {
		g, ok := groups[r.scopeID]
		if !ok {
			g = &group{scope: &visibleScope{scopeID: r.scopeID, tenantID: r.tenantID}}
			groups[r.scopeID] = g
			order = append(order, r.scopeID)
		}
		if r.userID == userID {
			g.scope.my = r
			g.mine = true
		}
		g.rows = append(g.rows, r)
	}

	var out []*visibleScope
	for _, id := range order {
		g := groups[id]
		if !g.mine {
			continue
		}
		for _, r := range g.rows {
			if g.scope.my.role != types.RoleAdmin && r.userID != userID {
				continue
			}
			if r.role == types.RoleAdmin {
				g.scope.adminUserIDs = append(g.scope.adminUserIDs, r.userID)
			} else {
				g.scope.memberUserIDs = append(g.scope.memberUserIDs, r.userID)
			}
		}
		out = append(out, g.scope)
	}
	return out
}

// GetRoles resolves the user's roles across the given scopes.
// When ledgers are queried and the user belongs to none of them the result is
// empty, even if tenants were also given.
// When only ledgers are queried the owning tenants are derived from the
// matched ledgers and their tenant roles are included as well.
func (e *Engine) GetRoles(ctx context.Context, userID string, tenantIDs, ledgerIDs []string) ([]*types.RoleRecord, error) {
	ctx, span := e.tracer.Start(ctx, "roles.Engine.GetRoles")
	defer span.End()

	if len(tenantIDs) == 0 && len(ledgerIDs) == 0 {
		return nil, types.ErrInvalidQuery
	}

	var ledgerScopes []*visibleScope
	if len(ledgerIDs) > 0 {
		members, err := e.storage.ListLedgerMembers(ctx, ledgerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ledger roles: %w", err)
		}

		var rows []scopedMember
		for _, m := range members {
			if m.Status != types.StatusActive {
				continue
			}
			rows = append(rows, scopedMember{
				scopeID: m.LedgerID,
				userID:  m.UserID,
				role:    m.Role,
				right:   m.Right,
			})
		}

		ledgerScopes = groupVisible(rows, userID)
		if len(ledgerScopes) == 0 {
			return nil, nil
		}

		// attach the owning tenant to every matched ledger scope
		matched := make([]string, 0, len(ledgerScopes))
		for _, s := range ledgerScopes {
			matched = append(matched, s.scopeID)
		}
		ledgers, err := e.storage.GetLedgersByIDs(ctx, matched)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ledger tenants: %w", err)
		}
		tenantByLedger := make(map[string]string, len(ledgers))
		for _, l := range ledgers {
			tenantByLedger[l.ID] = l.TenantID
		}
		for _, s := range ledgerScopes {
			s.tenantID = tenantByLedger[s.scopeID]
		}

		tenantIDs = make([]string, 0, len(ledgerScopes))
		for _, s := range ledgerScopes {
			tenantIDs = append(tenantIDs, s.tenantID)
		}
	}

	var tenantScopes []*visibleScope
	if len(tenantIDs) > 0 {
		members, err := e.storage.ListTenantMembers(ctx, tenantIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tenant roles: %w", err)
		}

		var rows []scopedMember
		for _, m := range members {
			if m.Status != types.StatusActive {
				continue
			}
			rows = append(rows, scopedMember{
				scopeID:  m.TenantID,
				tenantID: m.TenantID,
				userID:   m.UserID,
				role:     m.Role,
			})
		}

		tenantScopes = groupVisible(rows, userID)
	}

	records := make([]*types.RoleRecord, 0, len(tenantScopes)+len(ledgerScopes))
	for _, s := range tenantScopes {
		records = append(records, &types.RoleRecord{
			Scope:         types.RoleScopeTenant,
			UserID:        userID,
			TenantID:      s.scopeID,
			Role:          s.my.role,
			AdminUserIDs:  s.adminUserIDs,
			MemberUserIDs: s.memberUserIDs,
		})
	}
	for _, s := range ledgerScopes {
		records = append(records, &types.RoleRecord{
			Scope:         types.RoleScopeLedger,
			UserID:        userID,
			TenantID:      s.tenantID,
			LedgerID:      s.scopeID,
			Role:          s.my.role,
			Right:         s.my.right,
			AdminUserIDs:  s.adminUserIDs,
			MemberUserIDs: s.memberUserIDs,
		})
	}

	return records, nil
}

// IsAdminOfTenant reports whether the user holds an active admin membership
// in the tenant.
func (e *Engine) IsAdminOfTenant(ctx context.Context, userID, tenantID string) (bool, error) {
	ctx, span := e.tracer.Start(ctx, "roles.Engine.IsAdminOfTenant")
	defer span.End()

	members, err := e.storage.ListTenantMembers(ctx, []string{tenantID})
	if err != nil {
		return false, fmt.Errorf("failed to check tenant admin: %w", err)
	}

	for _, m := range members {
		if m.UserID == userID && m.Role == types.RoleAdmin && m.Status == types.StatusActive {
			return true, nil
		}
	}
	return false, nil
}

// IsAdminOfLedger reports whether the user administers the ledger, either
// through an admin membership on the ledger itself or as an admin of the
// owning tenant.
func (e *Engine) IsAdminOfLedger(ctx context.Context, userID, ledgerID string) (bool, error) {
	ctx, span := e.tracer.Start(ctx, "roles.Engine.IsAdminOfLedger")
	defer span.End()

	members, err := e.storage.ListLedgerMembers(ctx, []string{ledgerID})
	if err != nil {
		return false, fmt.Errorf("failed to check ledger admin: %w", err)
	}

	var mine *types.LedgerMember
	for _, m := range members {
		if m.UserID == userID {
			mine = m
			break
		}
	}
	if mine == nil {
		return false, nil
	}

	if mine.Role == types.RoleMember {
		ledger, err := e.storage.GetLedgerByID(ctx, ledgerID)
		if err != nil {
			return false, fmt.Errorf("failed to resolve ledger tenant: %w", err)
		}
		return e.IsAdminOfTenant(ctx, userID, ledger.TenantID)
	}

	return mine.Role == types.RoleAdmin, nil
}
