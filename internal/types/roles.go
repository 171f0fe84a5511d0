// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// RoleScope discriminates whether a RoleRecord describes a tenant or a
// ledger membership.
type RoleScope string

const (
	RoleScopeTenant RoleScope = "tenant"
	RoleScopeLedger RoleScope = "ledger"
)

// RoleRecord is the resolved role of a user in one tenant or ledger, together
// with the peer set visible to that user. Non-admins only ever see themselves
// in the peer lists.
type RoleRecord struct {
	Scope    RoleScope `json:"scope"`
	UserID   string    `json:"user_id"`
	TenantID string    `json:"tenant_id,omitempty"`
	LedgerID string    `json:"ledger_id,omitempty"`
	Role     Role      `json:"role"`
	// Right is only set for ledger scoped records.
	Right         Right    `json:"right,omitempty"`
	AdminUserIDs  []string `json:"admin_user_ids"`
	MemberUserIDs []string `json:"member_user_ids"`
}

// IsAdmin reports whether the record grants admin on its scope.
func (r *RoleRecord) IsAdmin() bool { return r.Role == RoleAdmin }

// ScopeID returns the tenant or ledger id the record is scoped to.
func (r *RoleRecord) ScopeID() string {
	if r.Scope == RoleScopeLedger {
		return r.LedgerID
	}
	return r.TenantID
}
