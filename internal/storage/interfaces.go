// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
)

type StorageInterface interface {
	// Users and their provider links.
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	CreateUserProvider(ctx context.Context, p *types.UserProvider) (*types.UserProvider, error)
	GetUserProvider(ctx context.Context, provider, providerUserID string) (*types.UserProvider, error)
	TouchUserProvider(ctx context.Context, id string) error
	FindUserIDs(ctx context.Context, q types.UserQuery) ([]string, error)

	// Tenants and tenant memberships.
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

	// Ledgers and ledger memberships.
	CreateLedger(ctx context.Context, l *types.Ledger) (*types.Ledger, error)
	GetLedgerByID(ctx context.Context, id string) (*types.Ledger, error)
	GetLedgersByIDs(ctx context.Context, ids []string) ([]*types.Ledger, error)
	ListLedgersByTenant(ctx context.Context, tenantID string) ([]*types.Ledger, error)
	CountLedgersByTenant(ctx context.Context, tenantID string) (int, error)
	UpdateLedger(ctx context.Context, l *types.Ledger, paths []string) error
	DeleteLedger(ctx context.Context, id string) error
	AddLedgerMember(ctx context.Context, m *types.LedgerMember) (*types.LedgerMember, error)
	UpdateLedgerMember(ctx context.Context, m *types.LedgerMember, paths []string) error
	ListLedgerMembers(ctx context.Context, ledgerIDs []string) ([]*types.LedgerMember, error)
	ListLedgerMembershipsByUser(ctx context.Context, userID string) ([]*types.LedgerMember, error)
	ClearDefaultLedger(ctx context.Context, userID string) error
	DeleteLedgerMembers(ctx context.Context, ledgerID string) error

	// Invites.
	CreateInvite(ctx context.Context, i *types.InviteTicket) (*types.InviteTicket, error)
	GetInviteByID(ctx context.Context, id string) (*types.InviteTicket, error)
	UpdateInvite(ctx context.Context, i *types.InviteTicket, paths []string) error
	DeleteInvite(ctx context.Context, id string) error
	DeleteInvitesByTenant(ctx context.Context, tenantID string) error
	ListInvites(ctx context.Context, tenantIDs, ledgerIDs []string) ([]*types.InviteTicket, error)
	ListPendingInvitesByTarget(ctx context.Context, tenantID, ledgerID string) ([]*types.InviteTicket, error)
	ListInvitesForUser(ctx context.Context, userID, cleanEmail, cleanNick string) ([]*types.InviteTicket, error)
	CountPendingInvitesByTenant(ctx context.Context, tenantID string) (int, error)
	ExpireInvites(ctx context.Context) (int64, error)
}
