// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ledger

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ledger-service/internal/storage"
	"github.com/canonical/ledger-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package ledger -destination ./mock_ledger.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package ledger -destination ./mock_id.go -source=../../internal/id/id.go
//go:generate mockgen -build_flags=--mod=mod -package ledger -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package ledger -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package ledger -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	roles   *MockRolesInterface
	idgen   *MockGeneratorInterface
}

func newTestService(t *testing.T) (*Service, *serviceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		roles:   NewMockRolesInterface(ctrl),
		idgen:   NewMockGeneratorInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
	mockSecurity.EXPECT().AuthzFailure(gomock.Any(), gomock.Any()).AnyTimes()

	return NewService(m.storage, m.roles, m.idgen, mockTracer, mockMonitor, mockLogger), m, ctrl
}

func TestService_CreateLedger(t *testing.T) {
	params := CreateLedgerParams{TenantID: "tenant-1", Name: "accounting"}

	t.Run("not a tenant admin", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(false, nil)

		_, err := s.CreateLedger(context.Background(), "user-1", params)
		if !errors.Is(err, types.ErrNotAuthorized) {
			t.Errorf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("quota reached", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		tenant := &types.Tenant{ID: "tenant-1", MaxLedgers: 10}
		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
		m.roles.EXPECT().CheckMaxLedgers(gomock.Any(), tenant).Return(types.ErrMaxLedgersReached)

		_, err := s.CreateLedger(context.Background(), "user-1", params)
		if !errors.Is(err, types.ErrMaxLedgersReached) {
			t.Errorf("expected ErrMaxLedgersReached, got %v", err)
		}
	})

	t.Run("creator becomes writing admin", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		tenant := &types.Tenant{ID: "tenant-1", MaxLedgers: 10}
		m.roles.EXPECT().IsAdminOfTenant(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
		m.roles.EXPECT().CheckMaxLedgers(gomock.Any(), tenant).Return(nil)
		m.idgen.EXPECT().NewID().Return("ledger-1")
		m.storage.EXPECT().CreateLedger(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l *types.Ledger) (*types.Ledger, error) {
				if l.ID != "ledger-1" || l.OwnerUserID != "user-1" || l.Status != types.StatusActive {
					t.Errorf("unexpected ledger: %+v", l)
				}
				return l, nil
			})
		m.storage.EXPECT().AddLedgerMember(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, member *types.LedgerMember) (*types.LedgerMember, error) {
				if member.Role != types.RoleAdmin || member.Right != types.RightWrite || member.Default {
					t.Errorf("unexpected creator membership: %+v", member)
				}
				if member.Name != "accounting" {
					t.Errorf("expected membership named after the ledger, got %s", member.Name)
				}
				return member, nil
			})

		view, err := s.CreateLedger(context.Background(), "user-1", params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.LedgerID != "ledger-1" || view.Role != types.RoleAdmin || view.Right != types.RightWrite {
			t.Errorf("unexpected view: %+v", view)
		}
	})
}

func TestService_UpdateLedger(t *testing.T) {
	name := "renamed"
	adminRole := types.RoleAdmin

	t.Run("no membership", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ListLedgerMembers(gomock.Any(), []string{"ledger-1"}).Return(nil, nil)

		_, err := s.UpdateLedger(context.Background(), "user-1", UpdateLedgerParams{LedgerID: "ledger-1", Name: &name})
		if !errors.Is(err, types.ErrRefNotFound) {
			t.Errorf("expected ErrRefNotFound, got %v", err)
		}
	})

	t.Run("non-admin renames own membership only", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ListLedgerMembers(gomock.Any(), []string{"ledger-1"}).Return([]*types.LedgerMember{
			{LedgerID: "ledger-1", UserID: "user-1", Role: types.RoleMember, Status: types.StatusActive},
		}, nil)
		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(&types.Ledger{ID: "ledger-1", TenantID: "tenant-1", Name: "accounting"}, nil)
		m.roles.EXPECT().IsAdminOfLedger(gomock.Any(), "user-1", "ledger-1").Return(false, nil)
		m.storage.EXPECT().UpdateLedgerMember(gomock.Any(), gomock.Any(), []string{"name"}).DoAndReturn(
			func(_ context.Context, member *types.LedgerMember, _ []string) error {
				if member.Name != "renamed" {
					t.Errorf("expected renamed membership, got %s", member.Name)
				}
				return nil
			})

		view, err := s.UpdateLedger(context.Background(), "user-1", UpdateLedgerParams{LedgerID: "ledger-1", Name: &name, Role: &adminRole})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Name != "renamed" || view.Role != types.RoleMember {
			t.Errorf("role escalation must be ignored for non-admins: %+v", view)
		}
	})

	t.Run("admin rename touches ledger and membership", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ListLedgerMembers(gomock.Any(), []string{"ledger-1"}).Return([]*types.LedgerMember{
			{LedgerID: "ledger-1", UserID: "user-1", Role: types.RoleAdmin, Status: types.StatusActive},
		}, nil)
		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(&types.Ledger{ID: "ledger-1", TenantID: "tenant-1", Name: "accounting"}, nil)
		m.roles.EXPECT().IsAdminOfLedger(gomock.Any(), "user-1", "ledger-1").Return(true, nil)
		m.storage.EXPECT().UpdateLedger(gomock.Any(), gomock.Any(), []string{"name"}).DoAndReturn(
			func(_ context.Context, l *types.Ledger, _ []string) error {
				if l.Name != "renamed" {
					t.Errorf("expected renamed ledger, got %s", l.Name)
				}
				return nil
			})
		m.storage.EXPECT().UpdateLedgerMember(gomock.Any(), gomock.Any(), []string{"name"}).Return(nil)

		view, err := s.UpdateLedger(context.Background(), "user-1", UpdateLedgerParams{LedgerID: "ledger-1", Name: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Name != "renamed" {
			t.Errorf("unexpected view: %+v", view)
		}
	})

	t.Run("default switch clears other defaults first", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		isDefault := true
		m.storage.EXPECT().ListLedgerMembers(gomock.Any(), []string{"ledger-1"}).Return([]*types.LedgerMember{
			{LedgerID: "ledger-1", UserID: "user-1", Role: types.RoleAdmin, Status: types.StatusActive},
		}, nil)
		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(&types.Ledger{ID: "ledger-1", TenantID: "tenant-1", Name: "accounting"}, nil)
		m.roles.EXPECT().IsAdminOfLedger(gomock.Any(), "user-1", "ledger-1").Return(true, nil)
		cleared := m.storage.EXPECT().ClearDefaultLedger(gomock.Any(), "user-1").Return(nil)
		m.storage.EXPECT().UpdateLedgerMember(gomock.Any(), gomock.Any(), []string{"is_default"}).After(cleared).Return(nil)

		view, err := s.UpdateLedger(context.Background(), "user-1", UpdateLedgerParams{LedgerID: "ledger-1", Default: &isDefault})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.Default {
			t.Errorf("expected default membership, got %+v", view)
		}
	})
}

func TestService_DeleteLedger(t *testing.T) {
	t.Run("not an admin", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.roles.EXPECT().IsAdminOfLedger(gomock.Any(), "user-1", "ledger-1").Return(false, nil)

		err := s.DeleteLedger(context.Background(), "user-1", "ledger-1")
		if !errors.Is(err, types.ErrNotAuthorized) {
			t.Errorf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("members deleted before the ledger", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.roles.EXPECT().IsAdminOfLedger(gomock.Any(), "user-1", "ledger-1").Return(true, nil)
		members := m.storage.EXPECT().DeleteLedgerMembers(gomock.Any(), "ledger-1").Return(nil)
		m.storage.EXPECT().DeleteLedger(gomock.Any(), "ledger-1").After(members).Return(nil)

		if err := s.DeleteLedger(context.Background(), "user-1", "ledger-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing ledger", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.roles.EXPECT().IsAdminOfLedger(gomock.Any(), "user-1", "ledger-1").Return(true, nil)
		m.storage.EXPECT().DeleteLedgerMembers(gomock.Any(), "ledger-1").Return(nil)
		m.storage.EXPECT().DeleteLedger(gomock.Any(), "ledger-1").Return(storage.ErrNotFound)

		err := s.DeleteLedger(context.Background(), "user-1", "ledger-1")
		if !errors.Is(err, types.ErrLedgerNotFound) {
			t.Errorf("expected ErrLedgerNotFound, got %v", err)
		}
	})
}

func TestService_AddUserToLedger(t *testing.T) {
	ledger := &types.Ledger{ID: "ledger-1", TenantID: "tenant-1", Name: "accounting", Status: types.StatusActive}
	tenant := &types.Tenant{ID: "tenant-1", Status: types.StatusActive, MaxMemberUsers: 5}
	params := AddUserParams{LedgerID: "ledger-1", UserID: "user-2", Name: "jane", Role: types.RoleMember, Right: types.RightRead, Default: true}

	t.Run("missing ledger", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(nil, storage.ErrNotFound)

		_, err := s.AddUserToLedger(context.Background(), params)
		if !errors.Is(err, types.ErrLedgerNotFound) {
			t.Errorf("expected ErrLedgerNotFound, got %v", err)
		}
	})

	t.Run("inactive ledger", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(
			&types.Ledger{ID: "ledger-1", TenantID: "tenant-1", Name: "accounting", Status: "suspended"}, nil)

		_, err := s.AddUserToLedger(context.Background(), params)
		if !errors.Is(err, types.ErrLedgerNotFound) {
			t.Errorf("expected ErrLedgerNotFound, got %v", err)
		}
	})

	t.Run("existing membership returned unchanged", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		existing := &types.LedgerMember{LedgerID: "ledger-1", UserID: "user-2", Role: types.RoleMember, Right: types.RightWrite, Status: types.StatusActive}
		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(ledger, nil)
		m.roles.EXPECT().GetRoles(gomock.Any(), "user-2", nil, []string{"ledger-1"}).Return([]*types.RoleRecord{
			{Scope: types.RoleScopeLedger, LedgerID: "ledger-1", TenantID: "tenant-1", UserID: "user-2", Role: types.RoleMember},
			// derived tenant record must not count as a ledger role
			{Scope: types.RoleScopeTenant, TenantID: "tenant-1", UserID: "user-2", Role: types.RoleMember},
		}, nil)
		m.storage.EXPECT().ListLedgerMembers(gomock.Any(), []string{"ledger-1"}).Return([]*types.LedgerMember{existing}, nil)

		member, err := s.AddUserToLedger(context.Background(), params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if member != existing {
			t.Errorf("expected the existing row, got %+v", member)
		}
	})

	t.Run("role without backing row", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(ledger, nil)
		m.roles.EXPECT().GetRoles(gomock.Any(), "user-2", nil, []string{"ledger-1"}).Return([]*types.RoleRecord{
			{Scope: types.RoleScopeLedger, LedgerID: "ledger-1", TenantID: "tenant-1", UserID: "user-2", Role: types.RoleMember},
		}, nil)
		m.storage.EXPECT().ListLedgerMembers(gomock.Any(), []string{"ledger-1"}).Return(nil, nil)

		_, err := s.AddUserToLedger(context.Background(), params)
		if !errors.Is(err, types.ErrRefNotFound) {
			t.Errorf("expected ErrRefNotFound, got %v", err)
		}
	})

	t.Run("quota counts against the owning tenant", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(ledger, nil)
		m.roles.EXPECT().GetRoles(gomock.Any(), "user-2", nil, []string{"ledger-1"}).Return(nil, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
		m.roles.EXPECT().CheckMaxRoles(gomock.Any(), tenant, types.RoleMember).Return(types.ErrMaxMembersReached)

		_, err := s.AddUserToLedger(context.Background(), params)
		if !errors.Is(err, types.ErrMaxMembersReached) {
			t.Errorf("expected ErrMaxMembersReached, got %v", err)
		}
	})

	t.Run("default flag clears other defaults first", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetLedgerByID(gomock.Any(), "ledger-1").Return(ledger, nil)
		m.roles.EXPECT().GetRoles(gomock.Any(), "user-2", nil, []string{"ledger-1"}).Return(nil, nil)
		m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
		m.roles.EXPECT().CheckMaxRoles(gomock.Any(), tenant, types.RoleMember).Return(nil)

		cleared := m.storage.EXPECT().ClearDefaultLedger(gomock.Any(), "user-2").Return(nil)
		m.storage.EXPECT().AddLedgerMember(gomock.Any(), gomock.Any()).After(cleared).DoAndReturn(
			func(_ context.Context, member *types.LedgerMember) (*types.LedgerMember, error) {
				if !member.Default || member.Right != types.RightRead || member.Status != types.StatusActive {
					t.Errorf("unexpected membership: %+v", member)
				}
				return member, nil
			})

		member, err := s.AddUserToLedger(context.Background(), params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if member.UserID != "user-2" {
			t.Errorf("expected user-2, got %s", member.UserID)
		}
	})
}

func TestService_ListLedgersByUser(t *testing.T) {
	memberships := []*types.LedgerMember{
		{LedgerID: "ledger-1", UserID: "user-1", Name: "mine", Role: types.RoleAdmin, Right: types.RightWrite, Default: true, Status: types.StatusActive},
		{LedgerID: "ledger-2", UserID: "user-1", Role: types.RoleMember, Right: types.RightRead, Status: types.StatusActive},
	}
	ledgers := []*types.Ledger{
		{ID: "ledger-1", TenantID: "tenant-1", Name: "accounting", Status: types.StatusActive},
		{ID: "ledger-2", TenantID: "tenant-2", Name: "payroll", Status: types.StatusActive},
	}

	t.Run("all tenants", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ListLedgerMembershipsByUser(gomock.Any(), "user-1").Return(memberships, nil)
		m.storage.EXPECT().GetLedgersByIDs(gomock.Any(), []string{"ledger-1", "ledger-2"}).Return(ledgers, nil)

		views, err := s.ListLedgersByUser(context.Background(), "user-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("expected 2 views, got %d", len(views))
		}
		if views[0].Name != "mine" {
			t.Errorf("expected membership name to win, got %s", views[0].Name)
		}
		if views[1].Name != "payroll" {
			t.Errorf("expected ledger name fallback, got %s", views[1].Name)
		}
	})

	t.Run("tenant filter", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ListLedgerMembershipsByUser(gomock.Any(), "user-1").Return(memberships, nil)
		m.storage.EXPECT().GetLedgersByIDs(gomock.Any(), []string{"ledger-1", "ledger-2"}).Return(ledgers, nil)

		views, err := s.ListLedgersByUser(context.Background(), "user-1", []string{"tenant-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 || views[0].LedgerID != "ledger-2" {
			t.Errorf("expected only the tenant-2 ledger, got %+v", views)
		}
	})

	t.Run("no memberships", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().ListLedgerMembershipsByUser(gomock.Any(), "user-1").Return(nil, nil)

		views, err := s.ListLedgersByUser(context.Background(), "user-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 0 {
			t.Errorf("expected no views, got %+v", views)
		}
	})
}
