// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "testing"

func TestCanonicalEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "Empty", email: "", want: ""},
		{name: "WhitespaceOnly", email: "   ", want: ""},
		{name: "Lowercased", email: "User@Example.COM", want: "user@example.com"},
		{name: "Trimmed", email: "  user@example.com \n", want: "user@example.com"},
		{name: "PlusSuffixStripped", email: "user+spam@example.com", want: "user@example.com"},
		{name: "DotsStrippedFromLocalPart", email: "u.s.e.r@example.com", want: "user@example.com"},
		{name: "DomainDotsKept", email: "user@mail.example.com", want: "user@mail.example.com"},
		{name: "AliasesCollapse", email: "U.ser+newsletters@Example.com", want: "user@example.com"},
		{name: "NoAtSign", email: "Not-An-Email", want: "not-an-email"},
		{name: "LastAtSignSplits", email: `"odd@local"@example.com`, want: `"odd@local"@example.com`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalEmail(tt.email); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCanonicalNick(t *testing.T) {
	tests := []struct {
		name string
		nick string
		want string
	}{
		{name: "Empty", nick: "", want: ""},
		{name: "Lowercased", nick: "SoMeBody", want: "somebody"},
		{name: "Trimmed", nick: " somebody ", want: "somebody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalNick(tt.nick); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUserQuery_Canonical(t *testing.T) {
	q := UserQuery{
		ByEmail:        "U.ser+x@Example.com",
		ByNick:         " SoMeBody ",
		ExistingUserID: "user-1",
		AndProvider:    "github",
	}

	got := q.Canonical()

	if got.ByEmail != "user@example.com" {
		t.Fatalf("unexpected email key: %q", got.ByEmail)
	}
	if got.ByNick != "somebody" {
		t.Fatalf("unexpected nick key: %q", got.ByNick)
	}
	if got.ExistingUserID != "user-1" || got.AndProvider != "github" {
		t.Fatal("expected non-normalized fields to pass through untouched")
	}
	if q.ByEmail != "U.ser+x@Example.com" {
		t.Fatal("expected the receiver to be left unmodified")
	}
}

func TestUserQuery_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		query UserQuery
		want  bool
	}{
		{name: "Empty", query: UserQuery{}, want: true},
		{name: "ProviderAloneIsEmpty", query: UserQuery{AndProvider: "github"}, want: true},
		{name: "Email", query: UserQuery{ByEmail: "user@example.com"}, want: false},
		{name: "Nick", query: UserQuery{ByNick: "somebody"}, want: false},
		{name: "ExistingUserID", query: UserQuery{ExistingUserID: "user-1"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.IsEmpty(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
