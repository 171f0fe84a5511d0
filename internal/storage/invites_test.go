// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"strings"
	"testing"
)

func TestListInvitesFilter(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if f := listInvitesFilter(nil, nil); f != nil {
			t.Errorf("expected nil filter, got %v", f)
		}
	})

	t.Run("tenant branch matches the invited tenant", func(t *testing.T) {
		sql, args, err := listInvitesFilter([]string{"tenant-1"}, nil).ToSql()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// inviter_tenant_id would also match ledger-targeted tickets into
		// the tenant's ledgers, leaking them to non-ledger-admins
		if !strings.Contains(sql, "invited_tenant_id") {
			t.Errorf("expected an invited_tenant_id predicate, got %q", sql)
		}
		if strings.Contains(sql, "inviter_tenant_id") {
			t.Errorf("filter must not match on inviter_tenant_id, got %q", sql)
		}
		if len(args) != 1 || args[0] != "tenant-1" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("both branches", func(t *testing.T) {
		sql, args, err := listInvitesFilter([]string{"tenant-1"}, []string{"ledger-1", "ledger-2"}).ToSql()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(sql, "invited_tenant_id") || !strings.Contains(sql, "invited_ledger_id") {
			t.Errorf("expected predicates on both target columns, got %q", sql)
		}
		if !strings.Contains(sql, " OR ") {
			t.Errorf("expected the branches to be OR-ed, got %q", sql)
		}
		if len(args) != 3 {
			t.Errorf("unexpected args: %v", args)
		}
	})
}
