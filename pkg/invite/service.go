// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invite implements the invite ticket lifecycle: creation, re-invite,
// listing, deletion and redemption on login.
package invite

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring"
	"github.com/canonical/ledger-service/internal/storage"
	"github.com/canonical/ledger-service/internal/tracing"
	"github.com/canonical/ledger-service/internal/types"
	"github.com/canonical/ledger-service/pkg/ledger"
	"github.com/canonical/ledger-service/pkg/tenant"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	roles    RolesInterface
	identity IdentityInterface
	tenants  TenantsInterface
	ledgers  LedgersInterface
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	roles RolesInterface,
	identity IdentityInterface,
	tenants TenantsInterface,
	ledgers LedgersInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		roles:    roles,
		identity: identity,
		tenants:  tenants,
		ledgers:  ledgers,
		lifetime: lifetime,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// InviteUser creates a ticket, or re-issues an existing one when
// params.InviteID is set. The caller must be an admin of the target.
func (s *Service) InviteUser(ctx context.Context, user *types.User, params TicketParams) (*types.InviteTicket, error) {
	ctx, span := s.tracer.Start(ctx, "invite.Service.InviteUser")
	defer span.End()

	q := params.Query.Canonical()
	if q.ExistingUserID != "" {
		if q.ExistingUserID == user.ID {
			return nil, types.ErrInvalidTarget
		}
		ids, err := s.identity.FindUser(ctx, q)
		if err != nil {
			return nil, err
		}
		if len(ids) != 1 {
			return nil, types.ErrUserNotFound
		}
	}

	if (params.Tenant == nil) == (params.Ledger == nil) {
		return nil, types.ErrInvalidTarget
	}

	var tenantID, ledgerID string
	if params.Ledger != nil {
		l, err := s.storage.GetLedgerByID(ctx, params.Ledger.ID)
		if err != nil {
			if storage.IsNotFound(err) {
				return nil, types.ErrLedgerNotFound
			}
			return nil, err
		}
		ledgerID = l.ID
		tenantID = l.TenantID

		admin, err := s.roles.IsAdminOfLedger(ctx, user.ID, ledgerID)
		if err != nil {
			return nil, err
		}
		if !admin {
			s.logger.Security().AuthzFailure(user.ID, "inviteUser")
			return nil, types.ErrNotAuthorized
		}
	} else {
		tenantID = params.Tenant.ID

		admin, err := s.roles.IsAdminOfTenant(ctx, user.ID, tenantID)
		if err != nil {
			return nil, err
		}
		if !admin {
			s.logger.Security().AuthzFailure(user.ID, "inviteUser")
			return nil, types.ErrNotAuthorized
		}
	}

	if params.InviteID != "" {
		return s.reissue(ctx, user.ID, tenantID, params)
	}
	return s.create(ctx, user.ID, tenantID, ledgerID, q, params)
}

func (s *Service) create(ctx context.Context, userID, tenantID, ledgerID string, q types.UserQuery, params TicketParams) (*types.InviteTicket, error) {
	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrTenantNotFound
		}
		return nil, err
	}
	if err := s.roles.CheckMaxInvites(ctx, t); err != nil {
		return nil, err
	}

	// sweep first so a stale pending ticket cannot block a re-invite
	if _, err := s.storage.ExpireInvites(ctx); err != nil {
		return nil, err
	}

	invitedTenantID := ""
	if params.Tenant != nil {
		invitedTenantID = tenantID
	}
	existing, err := s.storage.ListPendingInvitesByTarget(ctx, invitedTenantID, ledgerID)
	if err != nil {
		return nil, err
	}
	for _, i := range existing {
		if i.QueryEmail == q.ByEmail && i.QueryNick == q.ByNick && i.InvitedUserID == q.ExistingUserID {
			return nil, types.ErrInviteAlreadyExists
		}
	}

	ticket := &types.InviteTicket{
		InviterUserID:   userID,
		InviterTenantID: tenantID,
		InvitedUserID:   q.ExistingUserID,
		QueryProvider:   q.AndProvider,
		QueryEmail:      q.ByEmail,
		QueryNick:       q.ByNick,
		InvitedTenantID: invitedTenantID,
		InvitedLedgerID: ledgerID,
		Status:          types.InviteStatusPending,
		StatusReason:    "invite created",
		ExpiresAfter:    time.Now().UTC().Add(s.lifetime),
	}
	if params.Tenant != nil {
		ticket.TargetRole = orRole(params.Tenant.Role)
	} else {
		ticket.TargetRole = orRole(params.Ledger.Role)
		ticket.TargetRight = orRight(params.Ledger.Right)
	}

	created, err := s.storage.CreateInvite(ctx, ticket)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	return created, nil
}

// reissue merges target params into an existing pending ticket and optionally
// bumps the send counter. The ticket must belong to the tenant the caller was
// just authorized against.
func (s *Service) reissue(ctx context.Context, userID, tenantID string, params TicketParams) (*types.InviteTicket, error) {
	invite, err := s.storage.GetInviteByID(ctx, params.InviteID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrInviteNotFound
		}
		return nil, err
	}
	if invite.InviterTenantID != tenantID {
		s.logger.Security().AuthzFailure(userID, "inviteUser")
		return nil, types.ErrNotAuthorized
	}
	if invite.Status != types.InviteStatusPending {
		return nil, types.ErrInviteNotPending
	}

	paths := []string{}
	if params.Tenant != nil && params.Tenant.Role != "" {
		invite.TargetRole = params.Tenant.Role
		paths = append(paths, "target_role")
	}
	if params.Ledger != nil {
		if params.Ledger.Role != "" {
			invite.TargetRole = params.Ledger.Role
			paths = append(paths, "target_role")
		}
		if params.Ledger.Right != "" {
			invite.TargetRight = params.Ledger.Right
			paths = append(paths, "target_right")
		}
	}
	if params.IncSendEmailCount {
		invite.SendEmailCount++
		paths = append(paths, "send_email_count")
	}

	if len(paths) > 0 {
		if err := s.storage.UpdateInvite(ctx, invite, paths); err != nil {
			return nil, fmt.Errorf("failed to update invite: %w", err)
		}
	}
	return invite, nil
}

// ListInvites returns the tickets targeting the tenants and ledgers where the
// caller is an admin, optionally narrowed to the given id sets.
func (s *Service) ListInvites(ctx context.Context, userID string, tenantIDs, ledgerIDs []string) ([]*types.InviteTicket, error) {
	ctx, span := s.tracer.Start(ctx, "invite.Service.ListInvites")
	defer span.End()

	if _, err := s.storage.ExpireInvites(ctx); err != nil {
		return nil, err
	}

	tenantMemberships, err := s.storage.ListTenantMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ledgerMemberships, err := s.storage.ListLedgerMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	wantTenant := asSet(tenantIDs)
	wantLedger := asSet(ledgerIDs)

	memberTenantIDs := make([]string, 0, len(tenantMemberships))
	for _, m := range tenantMemberships {
		if m.Status != types.StatusActive {
			continue
		}
		if len(wantTenant) > 0 {
			if _, ok := wantTenant[m.TenantID]; !ok {
				continue
			}
		}
		memberTenantIDs = append(memberTenantIDs, m.TenantID)
	}
	memberLedgerIDs := make([]string, 0, len(ledgerMemberships))
	for _, m := range ledgerMemberships {
		if m.Status != types.StatusActive {
			continue
		}
		if len(wantLedger) > 0 {
			if _, ok := wantLedger[m.LedgerID]; !ok {
				continue
			}
		}
		memberLedgerIDs = append(memberLedgerIDs, m.LedgerID)
	}
	if len(memberTenantIDs) == 0 && len(memberLedgerIDs) == 0 {
		return []*types.InviteTicket{}, nil
	}

	records, err := s.roles.GetRoles(ctx, userID, memberTenantIDs, memberLedgerIDs)
	if err != nil {
		return nil, err
	}
	adminTenantIDs := []string{}
	adminLedgerIDs := []string{}
	for _, r := range records {
		if !r.IsAdmin() {
			continue
		}
		switch r.Scope {
		case types.RoleScopeTenant:
			adminTenantIDs = append(adminTenantIDs, r.TenantID)
		case types.RoleScopeLedger:
			adminLedgerIDs = append(adminLedgerIDs, r.LedgerID)
		}
	}
	if len(adminTenantIDs) == 0 && len(adminLedgerIDs) == 0 {
		return []*types.InviteTicket{}, nil
	}

	invites, err := s.storage.ListInvites(ctx, adminTenantIDs, adminLedgerIDs)
	if err != nil {
		return nil, err
	}
	if invites == nil {
		invites = []*types.InviteTicket{}
	}
	return invites, nil
}

// DeleteInvite deletes a ticket by id. Any active user may delete any ticket.
func (s *Service) DeleteInvite(ctx context.Context, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "invite.Service.DeleteInvite")
	defer span.End()

	if err := s.storage.DeleteInvite(ctx, inviteID); err != nil {
		if storage.IsNotFound(err) {
			return types.ErrInviteNotFound
		}
		return err
	}
	return nil
}

// RedeemInvite accepts every pending ticket addressed to the caller, either
// directly by id or through the canonical email or nick the inviter queried
// by, attaching the matching tenant or ledger membership.
func (s *Service) RedeemInvite(ctx context.Context, user *types.User, identity *types.VerifiedIdentity) ([]*types.InviteTicket, error) {
	ctx, span := s.tracer.Start(ctx, "invite.Service.RedeemInvite")
	defer span.End()

	if _, err := s.storage.ExpireInvites(ctx); err != nil {
		return nil, err
	}

	invites, err := s.storage.ListInvitesForUser(ctx, user.ID, types.CanonicalEmail(identity.Email), types.CanonicalNick(identity.Nick))
	if err != nil {
		return nil, err
	}

	redeemed := make([]*types.InviteTicket, 0, len(invites))
	for _, invite := range invites {
		switch {
		case invite.TargetsTenant():
			t, err := s.storage.GetTenantByID(ctx, invite.InvitedTenantID)
			if err != nil {
				if storage.IsNotFound(err) {
					return nil, types.ErrTenantNotFound
				}
				return nil, err
			}
			_, err = s.tenants.AddUserToTenant(ctx, tenant.AddUserParams{
				TenantID: t.ID,
				UserID:   user.ID,
				Name:     fmt.Sprintf("invited from [%s]", t.Name),
				Role:     invite.TargetRole,
			})
			if err != nil {
				return nil, err
			}
		case invite.TargetsLedger():
			l, err := s.storage.GetLedgerByID(ctx, invite.InvitedLedgerID)
			if err != nil {
				if storage.IsNotFound(err) {
					return nil, types.ErrLedgerNotFound
				}
				return nil, err
			}
			_, err = s.ledgers.AddUserToLedger(ctx, ledger.AddUserParams{
				LedgerID: l.ID,
				UserID:   user.ID,
				Name:     fmt.Sprintf("invited from [%s]", l.Name),
				Role:     invite.TargetRole,
				Right:    orRight(invite.TargetRight),
			})
			if err != nil {
				return nil, err
			}
		default:
			continue
		}

		invite.Status = types.InviteStatusAccepted
		invite.StatusReason = fmt.Sprintf("accepted: %s", user.ID)
		invite.InvitedUserID = user.ID
		if err := s.storage.UpdateInvite(ctx, invite, []string{"status", "status_reason", "invited_user_id"}); err != nil {
			return nil, fmt.Errorf("failed to accept invite: %w", err)
		}
		redeemed = append(redeemed, invite)
	}

	return redeemed, nil
}

func orRole(r types.Role) types.Role {
	if r == "" {
		return types.RoleMember
	}
	return r
}

func orRight(r types.Right) types.Right {
	if r == "" {
		return types.RightRead
	}
	return r
}

func asSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
