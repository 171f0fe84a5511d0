// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/ledger-service/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var identityContextKey = contextKey{}

// WithIdentity returns a new context with the given verified identity derived from the parent context.
func WithIdentity(ctx context.Context, identity *types.VerifiedIdentity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// GetIdentity retrieves the verified identity from the context.
// Returns nil and false if no identity is present.
func GetIdentity(ctx context.Context) (*types.VerifiedIdentity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*types.VerifiedIdentity)
	return identity, ok
}
