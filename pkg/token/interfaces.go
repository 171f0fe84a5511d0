// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package token

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
)

type ServiceInterface interface {
	// IssueSessionToken mints a signed session token carrying the user's
	// tenant and ledger roles.
	IssueSessionToken(ctx context.Context, userID string) (string, error)
}

// TenantsInterface is the slice of the tenant service the issuer reads
// tenant roles from.
type TenantsInterface interface {
	ListTenantsByUser(ctx context.Context, userID string) ([]*types.UserTenant, error)
}

// LedgersInterface is the slice of the ledger service the issuer reads
// ledger roles from.
type LedgersInterface interface {
	ListLedgersByUser(ctx context.Context, userID string, tenantIDs []string) ([]*types.UserLedger, error)
}
