// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invite

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ledger-service/internal/storage"
	"github.com/canonical/ledger-service/internal/types"
	"github.com/canonical/ledger-service/pkg/ledger"
	"github.com/canonical/ledger-service/pkg/tenant"
)

//go:generate mockgen -build_flags=--mod=mod -package invite -destination ./mock_invite.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invite -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invite -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invite -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	roles    *MockRolesInterface
	identity *MockIdentityInterface
	tenants  *MockTenantsInterface
	ledgers  *MockLedgersInterface
}

func newTestService(t *testing.T) (*Service, *serviceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		roles:    NewMockRolesInterface(ctrl),
		identity: NewMockIdentityInterface(ctrl),
		tenants:  NewMockTenantsInterface(ctrl),
		ledgers:  NewMockLedgersInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
	mockSecurity.EXPECT().AuthzFailure(gomock.Any(), gomock.Any()).AnyTimes()

	svc := NewService(m.storage, m.roles, m.identity, m.tenants, m.ledgers, 168*time.Hour, mockTracer, mockMonitor, mockLogger)
	return svc, m, ctrl
}

func TestService_InviteUser(t *testing.T) {
	user := &types.User{ID: "user-1", Status: types.StatusActive}

	t.Run("both targets set", func(t *testing.T) {
		s, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			Query:  types.UserQuery{ByEmail: "a@b.com"},
			Tenant: &TenantTarget{ID: "tenant-1"},
			Ledger: &LedgerTarget{ID: "ledger-1"},
		})
		if !errors.Is(err, types.ErrInvalidTarget) {
			t.Errorf("expected ErrInvalidTarget, got %v", err)
		}
	})

	t.Run("no target set", func(t *testing.T) {
		s, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		_, err := s.InviteUser(context.Background(), user, TicketParams{Query: types.UserQuery{ByEmail: "a@b.com"}})
		if !errors.Is(err, types.ErrInvalidTarget) {
			t.Errorf("expected ErrInvalidTarget, got %v", err)
		}
	})

	t.Run("self invite rejected", func(t *testing.T) {
		s, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			Query:  types.UserQuery{ExistingUserID: "user-1"},
			Tenant: &TenantTarget{ID: "tenant-1"},
		})
		if !errors.Is(err, types.ErrInvalidTarget) {
			t.Errorf("expected ErrInvalidTarget, got %v", err)
		}
	})

	t.Run("existing user id must resolve", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.identity.EXPECT().FindUser(gomock.Any(), types.UserQuery{ExistingUserID: "user-2"}).Return(nil, nil)

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			Query:  types.UserQuery{ExistingUserID: "user-2"},
			Tenant: &TenantTarget{ID: "tenant-1"},
		})
		if !errors.Is(err, types.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("not an admin of the target tenant", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(false, nil)

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			Query:  types.UserQuery{ByEmail: "a@b.com"},
			Tenant: &TenantTarget{ID: "tenant-1"},
		})
		if !errors.Is(err, types.ErrNotAuthorized) {
			t.Errorf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("invite quota enforced", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		tnt := &types.Tenant{ID: "tenant-1", MaxInvites: 1}
		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tnt, nil)
		m.roles.EXPECT().CheckMaxInvites(gomock.Any(), tnt).Return(types.ErrMaxInvitesReached)

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			Query:  types.UserQuery{ByEmail: "a@b.com"},
			Tenant: &TenantTarget{ID: "tenant-1"},
		})
		if !errors.Is(err, types.ErrMaxInvitesReached) {
			t.Errorf("expected ErrMaxInvitesReached, got %v", err)
		}
	})

	t.Run("duplicate pending invite", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		tnt := &types.Tenant{ID: "tenant-1", MaxInvites: 10}
		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tnt, nil)
		m.roles.EXPECT().CheckMaxInvites(gomock.Any(), tnt).Return(nil)
		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListPendingInvitesByTarget(gomock.Any(), "tenant-1", "").Return([]*types.InviteTicket{
			{ID: "invite-1", QueryEmail: "a@b.com", Status: types.InviteStatusPending},
		}, nil)

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			// canonicalizes to the same lookup key as the existing ticket
			Query:  types.UserQuery{ByEmail: "A+spam@b.com"},
			Tenant: &TenantTarget{ID: "tenant-1"},
		})
		if !errors.Is(err, types.ErrInviteAlreadyExists) {
			t.Errorf("expected ErrInviteAlreadyExists, got %v", err)
		}
	})

	t.Run("tenant invite created with defaults", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		tnt := &types.Tenant{ID: "tenant-1", MaxInvites: 10}
		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tnt, nil)
		m.roles.EXPECT().CheckMaxInvites(gomock.Any(), tnt).Return(nil)
		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListPendingInvitesByTarget(gomock.Any(), "tenant-1", "").Return(nil, nil)
		m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i *types.InviteTicket) (*types.InviteTicket, error) {
				if i.QueryEmail != "a@b.com" {
					t.Errorf("expected canonical email, got %s", i.QueryEmail)
				}
				if i.InvitedTenantID != "tenant-1" || i.InvitedLedgerID != "" {
					t.Errorf("unexpected target: %+v", i)
				}
				if i.TargetRole != types.RoleMember || i.SendEmailCount != 0 || i.Status != types.InviteStatusPending {
					t.Errorf("unexpected defaults: %+v", i)
				}
				if i.ExpiresAfter.Before(time.Now().Add(167 * time.Hour)) {
					t.Errorf("expected ~7 day expiry, got %v", i.ExpiresAfter)
				}
				return i, nil
			})

		ticket, err := s.InviteUser(context.Background(), user, TicketParams{
			Query:  types.UserQuery{ByEmail: "A+x@B.com"},
			Tenant: &TenantTarget{ID: "tenant-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.InviterUserID != "user-1" || ticket.InviterTenantID != "tenant-1" {
			t.Errorf("unexpected ticket: %+v", ticket)
		}
	})

	t.Run("ledger invite resolves the owning tenant", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		tnt := &types.Tenant{ID: "tenant-1", MaxInvites: 10}
		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(&types.Ledger{ID: "ledger-1", TenantID: "tenant-1"}, nil)
		m.roles.EXPECT().IsAdminOfLedger(gomock.Any(), "user-1", "ledger-1").Return(true, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tnt, nil)
		m.roles.EXPECT().CheckMaxInvites(gomock.Any(), tnt).Return(nil)
		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListPendingInvitesByTarget(gomock.Any(), "", "ledger-1").Return(nil, nil)
		m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i *types.InviteTicket) (*types.InviteTicket, error) {
				if i.InvitedLedgerID != "ledger-1" || i.InvitedTenantID != "" {
					t.Errorf("unexpected target: %+v", i)
				}
				if i.InviterTenantID != "tenant-1" {
					t.Errorf("expected the owning tenant, got %s", i.InviterTenantID)
				}
				if i.TargetRole != types.RoleMember || i.TargetRight != types.RightRead {
					t.Errorf("unexpected ledger defaults: %+v", i)
				}
				return i, nil
			})

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			Query:  types.UserQuery{ByNick: "Jane"},
			Ledger: &LedgerTarget{ID: "ledger-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reissue rejects a ticket of another tenant", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
		// the caller is admin of tenant-1 but names a ticket held by tenant-2
		m.storage.EXPECT().GetInviteByID(gomock.Any(), "invite-1").Return(&types.InviteTicket{
			ID: "invite-1", InviterTenantID: "tenant-2", Status: types.InviteStatusPending,
		}, nil)

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			InviteID: "invite-1",
			Query:    types.UserQuery{ByEmail: "a@b.com"},
			Tenant:   &TenantTarget{ID: "tenant-1"},
		})
		if !errors.Is(err, types.ErrNotAuthorized) {
			t.Errorf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("reissue requires pending", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
		m.storage.EXPECT().GetInviteByID(gomock.Any(), "invite-1").Return(&types.InviteTicket{ID: "invite-1", InviterTenantID: "tenant-1", Status: types.InviteStatusAccepted}, nil)

		_, err := s.InviteUser(context.Background(), user, TicketParams{
			InviteID: "invite-1",
			Query:    types.UserQuery{ByEmail: "a@b.com"},
			Tenant:   &TenantTarget{ID: "tenant-1"},
		})
		if !errors.Is(err, types.ErrInviteNotPending) {
			t.Errorf("expected ErrInviteNotPending, got %v", err)
		}
	})

	t.Run("reissue bumps send counter", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		adminRole := types.RoleAdmin
		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
		m.storage.EXPECT().GetInviteByID(gomock.Any(), "invite-1").Return(&types.InviteTicket{
			ID: "invite-1", InviterTenantID: "tenant-1", Status: types.InviteStatusPending, SendEmailCount: 2, TargetRole: types.RoleMember,
		}, nil)
		m.storage.EXPECT().UpdateInvite(gomock.Any(), gomock.Any(), []string{"target_role", "send_email_count"}).Return(nil)

		ticket, err := s.InviteUser(context.Background(), user, TicketParams{
			InviteID:          "invite-1",
			Query:             types.UserQuery{ByEmail: "a@b.com"},
			Tenant:            &TenantTarget{ID: "tenant-1", Role: adminRole},
			IncSendEmailCount: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.SendEmailCount != 3 || ticket.TargetRole != types.RoleAdmin {
			t.Errorf("unexpected ticket: %+v", ticket)
		}
	})
}

func TestService_ListInvites(t *testing.T) {
	t.Run("no memberships", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListTenantMembershipsByUser(gomock.Any(), "user-1").Return(nil, nil)
		m.storage.EXPECT().ListLedgerMembershipsByUser(gomock.Any(), "user-1").Return(nil, nil)

		tickets, err := s.ListInvites(context.Background(), "user-1", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tickets) != 0 {
			t.Errorf("expected no tickets, got %+v", tickets)
		}
	})

	t.Run("member only sees nothing", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListTenantMembershipsByUser(gomock.Any(), "user-1").Return([]*types.TenantMember{
			{TenantID: "tenant-1", UserID: "user-1", Role: types.RoleMember, Status: types.StatusActive},
		}, nil)
		m.storage.EXPECT().ListLedgerMembershipsByUser(gomock.Any(), "user-1").Return(nil, nil)
		m.roles.EXPECT().GetRoles(gomock.Any(), "user-1", []string{"tenant-1"}, []string{}).Return([]*types.RoleRecord{
			{Scope: types.RoleScopeTenant, TenantID: "tenant-1", UserID: "user-1", Role: types.RoleMember},
		}, nil)

		tickets, err := s.ListInvites(context.Background(), "user-1", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tickets) != 0 {
			t.Errorf("expected no tickets for a plain member, got %+v", tickets)
		}
	})

	t.Run("tenant admin does not pull ledger tickets", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListTenantMembershipsByUser(gomock.Any(), "user-1").Return([]*types.TenantMember{
			{TenantID: "tenant-1", UserID: "user-1", Role: types.RoleAdmin, Status: types.StatusActive},
		}, nil)
		m.storage.EXPECT().ListLedgerMembershipsByUser(gomock.Any(), "user-1").Return([]*types.LedgerMember{
			{LedgerID: "ledger-1", UserID: "user-1", Role: types.RoleMember, Status: types.StatusActive},
		}, nil)
		m.roles.EXPECT().GetRoles(gomock.Any(), "user-1", []string{"tenant-1"}, []string{"ledger-1"}).Return([]*types.RoleRecord{
			{Scope: types.RoleScopeTenant, TenantID: "tenant-1", UserID: "user-1", Role: types.RoleAdmin},
			{Scope: types.RoleScopeLedger, LedgerID: "ledger-1", TenantID: "tenant-1", UserID: "user-1", Role: types.RoleMember},
		}, nil)
		// only the tenant scope is admin, so no ledger ids reach storage
		m.storage.EXPECT().ListInvites(gomock.Any(), []string{"tenant-1"}, []string{}).Return(nil, nil)

		tickets, err := s.ListInvites(context.Background(), "user-1", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tickets) != 0 {
			t.Errorf("expected no tickets, got %+v", tickets)
		}
	})

	t.Run("admin scopes filtered by requested ids", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListTenantMembershipsByUser(gomock.Any(), "user-1").Return([]*types.TenantMember{
			{TenantID: "tenant-1", UserID: "user-1", Role: types.RoleAdmin, Status: types.StatusActive},
			{TenantID: "tenant-2", UserID: "user-1", Role: types.RoleAdmin, Status: types.StatusActive},
		}, nil)
		m.storage.EXPECT().ListLedgerMembershipsByUser(gomock.Any(), "user-1").Return([]*types.LedgerMember{
			{LedgerID: "ledger-1", UserID: "user-1", Role: types.RoleAdmin, Status: types.StatusActive},
		}, nil)
		m.roles.EXPECT().GetRoles(gomock.Any(), "user-1", []string{"tenant-1"}, []string{"ledger-1"}).Return([]*types.RoleRecord{
			{Scope: types.RoleScopeTenant, TenantID: "tenant-1", UserID: "user-1", Role: types.RoleAdmin},
			{Scope: types.RoleScopeLedger, LedgerID: "ledger-1", TenantID: "tenant-1", UserID: "user-1", Role: types.RoleAdmin},
		}, nil)
		want := []*types.InviteTicket{{ID: "invite-1", InviterTenantID: "tenant-1", Status: types.InviteStatusPending}}
		m.storage.EXPECT().ListInvites(gomock.Any(), []string{"tenant-1"}, []string{"ledger-1"}).Return(want, nil)

		tickets, err := s.ListInvites(context.Background(), "user-1", []string{"tenant-1"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tickets) != 1 || tickets[0].ID != "invite-1" {
			t.Errorf("unexpected tickets: %+v", tickets)
		}
	})
}

func TestService_DeleteInvite(t *testing.T) {
	t.Run("missing invite", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().DeleteInvite(gomock.Any(), "invite-1").Return(storage.ErrNotFound)

		err := s.DeleteInvite(context.Background(), "invite-1")
		if !errors.Is(err, types.ErrInviteNotFound) {
			t.Errorf("expected ErrInviteNotFound, got %v", err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().DeleteInvite(gomock.Any(), "invite-1").Return(nil)

		if err := s.DeleteInvite(context.Background(), "invite-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_RedeemInvite(t *testing.T) {
	user := &types.User{ID: "user-9", Status: types.StatusActive}
	verified := &types.VerifiedIdentity{Type: "oidc", Email: "John.Doe+work@Example.com", Nick: "JDoe"}

	t.Run("no pending invites", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListInvitesForUser(gomock.Any(), "user-9", "johndoe@example.com", "jdoe").Return(nil, nil)

		tickets, err := s.RedeemInvite(context.Background(), user, verified)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tickets) != 0 {
			t.Errorf("expected no tickets, got %+v", tickets)
		}
	})

	t.Run("tenant and ledger tickets accepted", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		invites := []*types.InviteTicket{
			{ID: "invite-1", InvitedTenantID: "tenant-1", TargetRole: types.RoleMember, Status: types.InviteStatusPending},
			{ID: "invite-2", InvitedLedgerID: "ledger-1", TargetRole: types.RoleAdmin, TargetRight: types.RightWrite, Status: types.InviteStatusPending},
		}
		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListInvitesForUser(gomock.Any(), "user-9", "johndoe@example.com", "jdoe").Return(invites, nil)

		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Name: "acme", Status: types.StatusActive}, nil)
		m.tenants.EXPECT().AddUserToTenant(gomock.Any(), tenant.AddUserParams{
			TenantID: "tenant-1",
			UserID:   "user-9",
			Name:     "invited from [acme]",
			Role:     types.RoleMember,
		}).Return(&types.TenantMember{TenantID: "tenant-1", UserID: "user-9"}, nil)

		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(&types.Ledger{ID: "ledger-1", TenantID: "tenant-1", Name: "books", Status: types.StatusActive}, nil)
		m.ledgers.EXPECT().AddUserToLedger(gomock.Any(), ledger.AddUserParams{
			LedgerID: "ledger-1",
			UserID:   "user-9",
			Name:     "invited from [books]",
			Role:     types.RoleAdmin,
			Right:    types.RightWrite,
		}).Return(&types.LedgerMember{LedgerID: "ledger-1", UserID: "user-9"}, nil)

		m.storage.EXPECT().UpdateInvite(gomock.Any(), gomock.Any(), []string{"status", "status_reason", "invited_user_id"}).DoAndReturn(
			func(_ context.Context, i *types.InviteTicket, _ []string) error {
				if i.Status != types.InviteStatusAccepted || i.InvitedUserID != "user-9" {
					t.Errorf("unexpected accepted ticket: %+v", i)
				}
				return nil
			}).Times(2)

		tickets, err := s.RedeemInvite(context.Background(), user, verified)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tickets) != 2 {
			t.Fatalf("expected 2 redeemed tickets, got %d", len(tickets))
		}
		if tickets[0].Status != types.InviteStatusAccepted || tickets[1].Status != types.InviteStatusAccepted {
			t.Errorf("expected accepted tickets, got %+v", tickets)
		}
	})

	t.Run("attach failure aborts", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ExpireInvites(gomock.Any()).Return(int64(0), nil)
		m.storage.EXPECT().ListInvitesForUser(gomock.Any(), "user-9", "johndoe@example.com", "jdoe").Return([]*types.InviteTicket{
			{ID: "invite-1", InvitedTenantID: "tenant-1", TargetRole: types.RoleMember, Status: types.InviteStatusPending},
		}, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Name: "acme", Status: types.StatusActive}, nil)
		m.tenants.EXPECT().AddUserToTenant(gomock.Any(), gomock.Any()).Return(nil, types.ErrMaxMembersReached)

		_, err := s.RedeemInvite(context.Background(), user, verified)
		if !errors.Is(err, types.ErrMaxMembersReached) {
			t.Errorf("expected ErrMaxMembersReached, got %v", err)
		}
	})
}
