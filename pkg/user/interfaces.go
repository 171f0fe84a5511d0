// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
)

// TenantsInterface is the slice of the tenant service used to enrich the
// ensure response with the user's tenants.
type TenantsInterface interface {
	ListTenantsByUser(ctx context.Context, userID string) ([]*types.UserTenant, error)
}

// TokensInterface mints cloud session tokens.
type TokensInterface interface {
	IssueSessionToken(ctx context.Context, userID string) (string, error)
}
