// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
)

// UserQuery is a user matching predicate used by findUser and invites.
// ByEmail and ByNick are canonicalized before they hit storage.
type UserQuery struct {
	ByEmail        string `json:"by_email,omitempty"`
	ByNick         string `json:"by_nick,omitempty"`
	ExistingUserID string `json:"existing_user_id,omitempty"`
	AndProvider    string `json:"and_provider,omitempty"`
}

// IsEmpty reports whether no predicate field is set.
func (q UserQuery) IsEmpty() bool {
	return q.ByEmail == "" && q.ByNick == "" && q.ExistingUserID == ""
}

// Canonical returns a copy of the query with email and nick normalized to
// their lookup keys.
func (q UserQuery) Canonical() UserQuery {
	q.ByEmail = CanonicalEmail(q.ByEmail)
	q.ByNick = CanonicalNick(q.ByNick)
	return q
}

// CanonicalEmail lowercases the address and strips "+suffix" and dots from
// the local part so that gmail-style aliases collapse to one lookup key.
func CanonicalEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ""
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	local, domain := email[:at], email[at+1:]
	if plus := strings.Index(local, "+"); plus >= 0 {
		local = local[:plus]
	}
	local = strings.ReplaceAll(local, ".", "")
	return local + "@" + domain
}

// CanonicalNick lowercases and trims the nickname.
func CanonicalNick(nick string) string {
	return strings.ToLower(strings.TrimSpace(nick))
}
