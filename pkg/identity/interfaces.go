// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
)

type ServiceInterface interface {
	// ResolveActiveUser verifies the credential and returns the active user
	// linked to the verified external identity.
	ResolveActiveUser(ctx context.Context, credential types.Credential) (*types.User, *types.VerifiedIdentity, error)
	// UserForIdentity returns the active user linked to an already verified
	// external identity.
	UserForIdentity(ctx context.Context, identity *types.VerifiedIdentity) (*types.User, error)
	// EnsureUser returns the user linked to the verified identity, creating
	// the user, its provider link and a default tenant on first login.
	EnsureUser(ctx context.Context, identity *types.VerifiedIdentity) (*types.User, error)
	// FindUser matches users by email, nick or id. The query is
	// canonicalized before it hits storage.
	FindUser(ctx context.Context, q types.UserQuery) ([]string, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	CreateUserProvider(ctx context.Context, p *types.UserProvider) (*types.UserProvider, error)
	GetUserProvider(ctx context.Context, provider, providerUserID string) (*types.UserProvider, error)
	TouchUserProvider(ctx context.Context, id string) error
	FindUserIDs(ctx context.Context, q types.UserQuery) ([]string, error)

	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	AddTenantMember(ctx context.Context, m *types.TenantMember) (*types.TenantMember, error)
}
