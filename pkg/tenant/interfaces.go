// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
)

// CreateTenantParams are the caller supplied tenant fields. Zero values fall
// back to the defaults.
type CreateTenantParams struct {
	Name           string `json:"name,omitempty"`
	MaxAdminUsers  int    `json:"max_admin_users,omitempty"`
	MaxMemberUsers int    `json:"max_member_users,omitempty"`
	MaxInvites     int    `json:"max_invites,omitempty"`
	MaxLedgers     int    `json:"max_ledgers,omitempty"`
}

// UpdateTenantParams carries the updatable tenant fields. Nil pointers leave
// the column untouched.
type UpdateTenantParams struct {
	TenantID       string  `json:"tenant_id" validate:"required"`
	Name           *string `json:"name,omitempty"`
	MaxAdminUsers  *int    `json:"max_admin_users,omitempty"`
	MaxMemberUsers *int    `json:"max_member_users,omitempty"`
	MaxInvites     *int    `json:"max_invites,omitempty"`
}

// AddUserParams attaches a user to a tenant with a role.
type AddUserParams struct {
	TenantID string
	UserID   string
	Name     string
	Role     types.Role
	Default  bool
}

// MembershipUpdate mutates a tenant membership. UserID defaults to the
// caller; changing Role requires the caller to be a tenant admin.
type MembershipUpdate struct {
	TenantID string      `json:"tenant_id" validate:"required"`
	UserID   string      `json:"user_id,omitempty"`
	Role     *types.Role `json:"role,omitempty"`
	Name     *string     `json:"name,omitempty"`
	Default  *bool       `json:"default,omitempty"`
}

type ServiceInterface interface {
	CreateTenant(ctx context.Context, user *types.User, displayName string, params CreateTenantParams) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, userID string, params UpdateTenantParams) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, userID, tenantID string) error
	AddUserToTenant(ctx context.Context, params AddUserParams) (*types.TenantMember, error)
	UpdateUserTenant(ctx context.Context, callerID string, update MembershipUpdate) (*types.TenantMember, error)
	ListTenantsByUser(ctx context.Context, userID string) ([]*types.UserTenant, error)
}

type RolesInterface interface {
	GetRoles(ctx context.Context, userID string, tenantIDs, ledgerIDs []string) ([]*types.RoleRecord, error)
	CheckMaxRoles(ctx context.Context, tenant *types.Tenant, role types.Role) error
	IsAdminOfTenant(ctx context.Context, userID, tenantID string) (bool, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantsByIDs(ctx context.Context, ids []string) ([]*types.Tenant, error)
	CountTenantsByOwner(ctx context.Context, userID string) (int, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
	AddTenantMember(ctx context.Context, m *types.TenantMember) (*types.TenantMember, error)
	UpdateTenantMember(ctx context.Context, m *types.TenantMember, paths []string) error
	ListTenantMembers(ctx context.Context, tenantIDs []string) ([]*types.TenantMember, error)
	ListTenantMembershipsByUser(ctx context.Context, userID string) ([]*types.TenantMember, error)
	ClearDefaultTenant(ctx context.Context, userID string) error
	DeleteTenantMembers(ctx context.Context, tenantID string) error
	DeleteInvitesByTenant(ctx context.Context, tenantID string) error
}
