// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"regexp"
	"testing"

	"github.com/google/uuid"

	"github.com/canonical/ledger-service/internal/id"
)

// Entity ids are base62 strings from the id generator, not UUIDs, so the
// schema must not declare them as UUID columns or every insert fails with
// a 22P02 on the id literal.
func TestEntityIDColumnsAreText(t *testing.T) {
	generated := id.NewGenerator().NewID()
	if _, err := uuid.Parse(generated); err == nil {
		t.Fatalf("entity id %q parses as a UUID, the schema assertions below are stale", generated)
	}

	schema, err := EmbedMigrations.ReadFile("00001_initial_schema.sql")
	if err != nil {
		t.Fatalf("failed to read embedded schema: %v", err)
	}

	columns := parseColumnTypes(string(schema))

	entity := []string{
		"users.id",
		"tenants.id",
		"tenants.owner_user_id",
		"ledgers.id",
		"ledgers.tenant_id",
		"ledgers.owner_user_id",
		"user_providers.user_id",
		"tenant_members.tenant_id",
		"tenant_members.user_id",
		"ledger_members.ledger_id",
		"ledger_members.user_id",
		"invites.inviter_user_id",
		"invites.inviter_tenant_id",
	}
	for _, c := range entity {
		if typ := columns[c]; typ != "TEXT" {
			t.Errorf("%s: expected TEXT, got %q", c, typ)
		}
	}

	// row ids come from uuid.NewV7 and stay UUID
	rowIDs := []string{"user_providers.id", "tenant_members.id", "ledger_members.id", "invites.id"}
	for _, c := range rowIDs {
		if typ := columns[c]; typ != "UUID" {
			t.Errorf("%s: expected UUID, got %q", c, typ)
		}
	}
}

var (
	createRe = regexp.MustCompile(`(?s)CREATE TABLE (\w+) \((.*?)\n\);`)
	columnRe = regexp.MustCompile(`(?m)^\s*(\w+)\s+(\w+)`)
)

// parseColumnTypes maps "table.column" to the declared column type.
func parseColumnTypes(schema string) map[string]string {
	out := make(map[string]string)
	for _, table := range createRe.FindAllStringSubmatch(schema, -1) {
		name, body := table[1], table[2]
		for _, col := range columnRe.FindAllStringSubmatch(body, -1) {
			out[name+"."+col[1]] = col[2]
		}
	}
	return out
}
