// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/canonical/ledger-service/internal/types"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "verification failure",
			err:      types.ErrVerificationFailed,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "wrapped not authorized",
			err:      fmt.Errorf("updateTenant: %w", types.ErrNotAuthorized),
			expected: http.StatusForbidden,
		},
		{
			name:     "missing tenant",
			err:      types.ErrTenantNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "quota exhausted",
			err:      types.ErrMaxAdminsReached,
			expected: http.StatusForbidden,
		},
		{
			name:     "duplicate invite",
			err:      types.ErrInviteAlreadyExists,
			expected: http.StatusConflict,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorStatus(tt.err); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
