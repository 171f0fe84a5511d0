// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invite

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
	"github.com/canonical/ledger-service/pkg/ledger"
	"github.com/canonical/ledger-service/pkg/tenant"
)

// TenantTarget invites into a tenant. Role defaults to member.
type TenantTarget struct {
	ID   string     `json:"id" validate:"required"`
	Role types.Role `json:"role,omitempty"`
}

// LedgerTarget invites into a ledger. Role defaults to member and Right
// defaults to read.
type LedgerTarget struct {
	ID    string      `json:"id" validate:"required"`
	Role  types.Role  `json:"role,omitempty"`
	Right types.Right `json:"right,omitempty"`
}

// TicketParams describes an invite to create, or to update when InviteID is
// set. Exactly one of Tenant and Ledger must be present.
type TicketParams struct {
	InviteID string          `json:"invite_id,omitempty"`
	Query    types.UserQuery `json:"query"`
	Tenant   *TenantTarget   `json:"tenant,omitempty"`
	Ledger   *LedgerTarget   `json:"ledger,omitempty"`

	IncSendEmailCount bool `json:"inc_send_email_count,omitempty"`
}

type ServiceInterface interface {
	InviteUser(ctx context.Context, user *types.User, params TicketParams) (*types.InviteTicket, error)
	ListInvites(ctx context.Context, userID string, tenantIDs, ledgerIDs []string) ([]*types.InviteTicket, error)
	DeleteInvite(ctx context.Context, inviteID string) error
	RedeemInvite(ctx context.Context, user *types.User, identity *types.VerifiedIdentity) ([]*types.InviteTicket, error)
}

type RolesInterface interface {
	GetRoles(ctx context.Context, userID string, tenantIDs, ledgerIDs []string) ([]*types.RoleRecord, error)
	CheckMaxInvites(ctx context.Context, tenant *types.Tenant) error
	IsAdminOfTenant(ctx context.Context, userID, tenantID string) (bool, error)
	IsAdminOfLedger(ctx context.Context, userID, ledgerID string) (bool, error)
}

// IdentityInterface resolves invite match queries to user ids.
type IdentityInterface interface {
	FindUser(ctx context.Context, q types.UserQuery) ([]string, error)
}

// TenantsInterface is the slice of the tenant service used on redemption.
type TenantsInterface interface {
	AddUserToTenant(ctx context.Context, params tenant.AddUserParams) (*types.TenantMember, error)
}

// LedgersInterface is the slice of the ledger service used on redemption.
type LedgersInterface interface {
	AddUserToLedger(ctx context.Context, params ledger.AddUserParams) (*types.LedgerMember, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetLedgerByID(ctx context.Context, id string) (*types.Ledger, error)

	CreateInvite(ctx context.Context, i *types.InviteTicket) (*types.InviteTicket, error)
	GetInviteByID(ctx context.Context, id string) (*types.InviteTicket, error)
	UpdateInvite(ctx context.Context, i *types.InviteTicket, paths []string) error
	DeleteInvite(ctx context.Context, id string) error
	ListInvites(ctx context.Context, tenantIDs, ledgerIDs []string) ([]*types.InviteTicket, error)
	ListPendingInvitesByTarget(ctx context.Context, tenantID, ledgerID string) ([]*types.InviteTicket, error)
	ListInvitesForUser(ctx context.Context, userID, cleanEmail, cleanNick string) ([]*types.InviteTicket, error)
	ExpireInvites(ctx context.Context) (int64, error)

	ListTenantMembershipsByUser(ctx context.Context, userID string) ([]*types.TenantMember, error)
	ListLedgerMembershipsByUser(ctx context.Context, userID string) ([]*types.LedgerMember, error)
}
