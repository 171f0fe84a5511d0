// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	StatusActive = "active"

	DefaultMaxTenants     = 10
	DefaultMaxAdminUsers  = 5
	DefaultMaxMemberUsers = 5
	DefaultMaxInvites     = 10
	DefaultMaxLedgers     = 5
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Right string

const (
	RightRead  Right = "read"
	RightWrite Right = "write"
)

// Credential is an opaque bearer credential plus the verifier type it is
// meant for.
type Credential struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// VerifiedIdentity is the outcome of verifying a Credential against an
// external identity provider.
type VerifiedIdentity struct {
	Type       string            `json:"type"`
	ExternalID string            `json:"external_id"`
	Provider   string            `json:"provider"`
	Email      string            `json:"email,omitempty"`
	Nick       string            `json:"nick,omitempty"`
	Params     map[string]string `json:"params,omitempty"`
}

// DisplayName picks the best human readable name the provider gave us.
func (v *VerifiedIdentity) DisplayName() string {
	if v.Email != "" {
		return v.Email
	}
	if v.Nick != "" {
		return v.Nick
	}
	return v.ExternalID
}

type User struct {
	ID           string    `db:"id" json:"id"`
	MaxTenants   int       `db:"max_tenants" json:"max_tenants"`
	Status       string    `db:"status" json:"status"`
	StatusReason string    `db:"status_reason" json:"status_reason"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UserProvider links a User to one external identity provider account.
type UserProvider struct {
	ID             string            `db:"id" json:"id"`
	UserID         string            `db:"user_id" json:"user_id"`
	ProviderUserID string            `db:"provider_user_id" json:"provider_user_id"`
	Provider       string            `db:"provider" json:"provider"`
	QueryEmail     string            `db:"query_email" json:"query_email,omitempty"`
	CleanEmail     string            `db:"clean_email" json:"clean_email,omitempty"`
	QueryNick      string            `db:"query_nick" json:"query_nick,omitempty"`
	CleanNick      string            `db:"clean_nick" json:"clean_nick,omitempty"`
	Params         map[string]string `db:"params" json:"params,omitempty"`
	LastUsedAt     time.Time         `db:"last_used_at" json:"last_used_at"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
}

type Tenant struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	OwnerUserID    string    `db:"owner_user_id" json:"owner_user_id"`
	MaxAdminUsers  int       `db:"max_admin_users" json:"max_admin_users"`
	MaxMemberUsers int       `db:"max_member_users" json:"max_member_users"`
	MaxInvites     int       `db:"max_invites" json:"max_invites"`
	MaxLedgers     int       `db:"max_ledgers" json:"max_ledgers"`
	Status         string    `db:"status" json:"status"`
	StatusReason   string    `db:"status_reason" json:"status_reason"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// TenantMember is one user's membership row in a tenant.
type TenantMember struct {
	ID           string    `db:"id" json:"id"`
	TenantID     string    `db:"tenant_id" json:"tenant_id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Name         string    `db:"name" json:"name,omitempty"`
	Role         Role      `db:"role" json:"role"`
	Default      bool      `db:"is_default" json:"default"`
	Status       string    `db:"status" json:"status"`
	StatusReason string    `db:"status_reason" json:"status_reason"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Ledger struct {
	ID           string    `db:"id" json:"id"`
	TenantID     string    `db:"tenant_id" json:"tenant_id"`
	OwnerUserID  string    `db:"owner_user_id" json:"owner_user_id"`
	Name         string    `db:"name" json:"name"`
	Status       string    `db:"status" json:"status"`
	StatusReason string    `db:"status_reason" json:"status_reason"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// LedgerMember is one user's membership row in a ledger. Unlike a tenant
// membership it also carries an access right.
type LedgerMember struct {
	ID           string    `db:"id" json:"id"`
	LedgerID     string    `db:"ledger_id" json:"ledger_id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Name         string    `db:"name" json:"name,omitempty"`
	Role         Role      `db:"role" json:"role"`
	Right        Right     `db:"access_right" json:"right"`
	Default      bool      `db:"is_default" json:"default"`
	Status       string    `db:"status" json:"status"`
	StatusReason string    `db:"status_reason" json:"status_reason"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
)

// InviteTicket targets exactly one of a tenant or a ledger. The invited user
// is matched either directly (InvitedUserID) or lazily on login via the
// canonicalized query fields.
type InviteTicket struct {
	ID              string       `db:"id" json:"id"`
	InviterUserID   string       `db:"inviter_user_id" json:"inviter_user_id"`
	InviterTenantID string       `db:"inviter_tenant_id" json:"inviter_tenant_id"`
	InvitedUserID   string       `db:"invited_user_id" json:"invited_user_id,omitempty"`
	QueryProvider   string       `db:"query_provider" json:"query_provider,omitempty"`
	QueryEmail      string       `db:"query_email" json:"query_email,omitempty"`
	QueryNick       string       `db:"query_nick" json:"query_nick,omitempty"`
	SendEmailCount  int          `db:"send_email_count" json:"send_email_count"`
	InvitedTenantID string       `db:"invited_tenant_id" json:"invited_tenant_id,omitempty"`
	InvitedLedgerID string       `db:"invited_ledger_id" json:"invited_ledger_id,omitempty"`
	TargetRole      Role         `db:"target_role" json:"target_role"`
	TargetRight     Right        `db:"target_right" json:"target_right,omitempty"`
	Status          InviteStatus `db:"status" json:"status"`
	StatusReason    string       `db:"status_reason" json:"status_reason"`
	ExpiresAfter    time.Time    `db:"expires_after" json:"expires_after"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updated_at"`
}

// TargetsTenant reports whether the ticket invites into a tenant.
func (t *InviteTicket) TargetsTenant() bool { return t.InvitedTenantID != "" }

// TargetsLedger reports whether the ticket invites into a ledger.
func (t *InviteTicket) TargetsLedger() bool { return t.InvitedLedgerID != "" }

// MembershipMeta is the display slice of a membership or its parent entity
// as returned by the list operations.
type MembershipMeta struct {
	Name         string    `json:"name,omitempty"`
	Status       string    `json:"status"`
	StatusReason string    `json:"status_reason"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserTenant is one tenant as seen by a specific user. The peer id lists and
// quota fields are only populated when the user is an admin of the tenant.
type UserTenant struct {
	TenantID string         `json:"tenant_id"`
	Role     Role           `json:"role"`
	Default  bool           `json:"default"`
	User     MembershipMeta `json:"user"`
	Tenant   MembershipMeta `json:"tenant"`

	AdminUserIDs   []string `json:"admin_user_ids,omitempty"`
	MemberUserIDs  []string `json:"member_user_ids,omitempty"`
	MaxAdminUsers  int      `json:"max_admin_users,omitempty"`
	MaxMemberUsers int      `json:"max_member_users,omitempty"`
}

// UserLedger is one ledger as seen by a specific user.
type UserLedger struct {
	LedgerID  string    `json:"ledger_id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name,omitempty"`
	Role      Role      `json:"role"`
	Right     Right     `json:"right"`
	Default   bool      `json:"default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
