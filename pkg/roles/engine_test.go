// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ledger-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_roles.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestEngine(t *testing.T) (*Engine, *MockStorageInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()

	return NewEngine(mockStorage, mockTracer, mockMonitor, mockLogger), mockStorage, ctrl
}

func TestEngine_GetRoles_RequiresScope(t *testing.T) {
	e, _, ctrl := newTestEngine(t)
	defer ctrl.Finish()

	_, err := e.GetRoles(context.Background(), "user-1", nil, nil)
	if !errors.Is(err, types.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestEngine_GetRoles_TenantScope(t *testing.T) {
	tenantID := "tenant-1"
	members := []*types.TenantMember{
		{TenantID: tenantID, UserID: "admin-1", Role: types.RoleAdmin, Status: types.StatusActive},
		{TenantID: tenantID, UserID: "member-1", Role: types.RoleMember, Status: types.StatusActive},
		{TenantID: tenantID, UserID: "member-2", Role: types.RoleMember, Status: types.StatusActive},
		{TenantID: tenantID, UserID: "member-3", Role: types.RoleMember, Status: "disabled"},
	}

	testCases := []struct {
		name            string
		userID          string
		expectedRecords int
		expectedRole    types.Role
		expectedAdmins  []string
		expectedMembers []string
	}{
		{
			name:            "admin sees every peer",
			userID:          "admin-1",
			expectedRecords: 1,
			expectedRole:    types.RoleAdmin,
			expectedAdmins:  []string{"admin-1"},
			expectedMembers: []string{"member-1", "member-2"},
		},
		{
			name:            "member only sees themselves",
			userID:          "member-1",
			expectedRecords: 1,
			expectedRole:    types.RoleMember,
			expectedAdmins:  nil,
			expectedMembers: []string{"member-1"},
		},
		{
			name:            "non member gets no records",
			userID:          "stranger",
			expectedRecords: 0,
		},
		{
			name:            "disabled membership gets no records",
			userID:          "member-3",
			expectedRecords: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockStorage, ctrl := newTestEngine(t)
			defer ctrl.Finish()

			mockStorage.EXPECT().ListTenantMembers(gomock.Any(), []string{tenantID}).Return(members, nil)

			records, err := e.GetRoles(context.Background(), tc.userID, []string{tenantID}, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(records) != tc.expectedRecords {
				t.Fatalf("expected %d records, got %d", tc.expectedRecords, len(records))
			}
			if tc.expectedRecords == 0 {
				return
			}

			r := records[0]
			if r.Scope != types.RoleScopeTenant {
				t.Errorf("expected tenant scope, got %s", r.Scope)
			}
			if r.TenantID != tenantID {
				t.Errorf("expected tenant id %s, got %s", tenantID, r.TenantID)
			}
			if r.Role != tc.expectedRole {
				t.Errorf("expected role %s, got %s", tc.expectedRole, r.Role)
			}
			assertIDs(t, "admins", r.AdminUserIDs, tc.expectedAdmins)
			assertIDs(t, "members", r.MemberUserIDs, tc.expectedMembers)
		})
	}
}

func TestEngine_GetRoles_LedgerScope(t *testing.T) {
	ledgerID := "ledger-1"
	tenantID := "tenant-1"

	ledgerMembers := []*types.LedgerMember{
		{LedgerID: ledgerID, UserID: "admin-1", Role: types.RoleAdmin, Right: types.RightWrite, Status: types.StatusActive},
		{LedgerID: ledgerID, UserID: "member-1", Role: types.RoleMember, Right: types.RightRead, Status: types.StatusActive},
	}
	ledgers := []*types.Ledger{
		{ID: ledgerID, TenantID: tenantID},
	}
	tenantMembers := []*types.TenantMember{
		{TenantID: tenantID, UserID: "admin-1", Role: types.RoleAdmin, Status: types.StatusActive},
		{TenantID: tenantID, UserID: "member-1", Role: types.RoleMember, Status: types.StatusActive},
	}

	t.Run("ledger roles include the owning tenant roles", func(t *testing.T) {
		e, mockStorage, ctrl := newTestEngine(t)
		defer ctrl.Finish()

		mockStorage.EXPECT().ListLedgerMembers(gomock.Any(), []string{ledgerID}).Return(ledgerMembers, nil)
		mockStorage.EXPECT().GetLedgersByIDs(gomock.Any(), []string{ledgerID}).Return(ledgers, nil)
		mockStorage.EXPECT().ListTenantMembers(gomock.Any(), []string{tenantID}).Return(tenantMembers, nil)

		records, err := e.GetRoles(context.Background(), "member-1", nil, []string{ledgerID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}

		tenantRec, ledgerRec := records[0], records[1]
		if tenantRec.Scope != types.RoleScopeTenant || tenantRec.TenantID != tenantID {
			t.Errorf("unexpected tenant record: %+v", tenantRec)
		}
		if ledgerRec.Scope != types.RoleScopeLedger || ledgerRec.LedgerID != ledgerID {
			t.Errorf("unexpected ledger record: %+v", ledgerRec)
		}
		if ledgerRec.Right != types.RightRead {
			t.Errorf("expected right read, got %s", ledgerRec.Right)
		}
		if ledgerRec.TenantID != tenantID {
			t.Errorf("expected ledger record to carry tenant id %s, got %s", tenantID, ledgerRec.TenantID)
		}
		assertIDs(t, "ledger members", ledgerRec.MemberUserIDs, []string{"member-1"})
	})

	t.Run("no ledger membership means empty result", func(t *testing.T) {
		e, mockStorage, ctrl := newTestEngine(t)
		defer ctrl.Finish()

		mockStorage.EXPECT().ListLedgerMembers(gomock.Any(), []string{ledgerID}).Return(ledgerMembers, nil)

		records, err := e.GetRoles(context.Background(), "stranger", []string{tenantID}, []string{ledgerID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})

	t.Run("storage error is propagated", func(t *testing.T) {
		e, mockStorage, ctrl := newTestEngine(t)
		defer ctrl.Finish()

		dbErr := errors.New("db error")
		mockStorage.EXPECT().ListLedgerMembers(gomock.Any(), []string{ledgerID}).Return(nil, dbErr)

		_, err := e.GetRoles(context.Background(), "member-1", nil, []string{ledgerID})
		if !errors.Is(err, dbErr) {
			t.Errorf("expected db error, got %v", err)
		}
	})
}

func TestEngine_IsAdminOfTenant(t *testing.T) {
	tenantID := "tenant-1"
	members := []*types.TenantMember{
		{TenantID: tenantID, UserID: "admin-1", Role: types.RoleAdmin, Status: types.StatusActive},
		{TenantID: tenantID, UserID: "member-1", Role: types.RoleMember, Status: types.StatusActive},
		{TenantID: tenantID, UserID: "admin-2", Role: types.RoleAdmin, Status: "disabled"},
	}

	testCases := []struct {
		name     string
		userID   string
		expected bool
	}{
		{name: "active admin", userID: "admin-1", expected: true},
		{name: "member is not admin", userID: "member-1", expected: false},
		{name: "disabled admin is not admin", userID: "admin-2", expected: false},
		{name: "non member is not admin", userID: "stranger", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockStorage, ctrl := newTestEngine(t)
			defer ctrl.Finish()

			mockStorage.EXPECT().ListTenantMembers(gomock.Any(), []string{tenantID}).Return(members, nil)

			got, err := e.IsAdminOfTenant(context.Background(), tc.userID, tenantID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestEngine_IsAdminOfLedger(t *testing.T) {
	ledgerID := "ledger-1"
	tenantID := "tenant-1"

	testCases := []struct {
		name       string
		userID     string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:   "ledger admin",
			userID: "admin-1",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListLedgerMembers(gomock.Any(), []string{ledgerID}).Return([]*types.LedgerMember{
					{LedgerID: ledgerID, UserID: "admin-1", Role: types.RoleAdmin, Status: types.StatusActive},
				}, nil)
			},
			expected: true,
		},
		{
			name:   "ledger member who administers the tenant",
			userID: "member-1",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListLedgerMembers(gomock.Any(), []string{ledgerID}).Return([]*types.LedgerMember{
					{LedgerID: ledgerID, UserID: "member-1", Role: types.RoleMember, Status: types.StatusActive},
				}, nil)
				mockStorage.EXPECT().GetLedgerByID(gomock.Any(), ledgerID).Return(&types.Ledger{ID: ledgerID, TenantID: tenantID}, nil)
				mockStorage.EXPECT().ListTenantMembers(gomock.Any(), []string{tenantID}).Return([]*types.TenantMember{
					{TenantID: tenantID, UserID: "member-1", Role: types.RoleAdmin, Status: types.StatusActive},
				}, nil)
			},
			expected: true,
		},
		{
			name:   "plain ledger member",
			userID: "member-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListLedgerMembers(gomock.Any(), []string{ledgerID}).Return([]*types.LedgerMember{
					{LedgerID: ledgerID, UserID: "member-2", Role: types.RoleMember, Status: types.StatusActive},
				}, nil)
				mockStorage.EXPECT().GetLedgerByID(gomock.Any(), ledgerID).Return(&types.Ledger{ID: ledgerID, TenantID: tenantID}, nil)
				mockStorage.EXPECT().ListTenantMembers(gomock.Any(), []string{tenantID}).Return([]*types.TenantMember{
					{TenantID: tenantID, UserID: "member-2", Role: types.RoleMember, Status: types.StatusActive},
				}, nil)
			},
			expected: false,
		},
		{
			name:   "not a ledger member",
			userID: "stranger",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListLedgerMembers(gomock.Any(), []string{ledgerID}).Return(nil, nil)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockStorage, ctrl := newTestEngine(t)
			defer ctrl.Finish()

			tc.setupMocks(mockStorage)

			got, err := e.IsAdminOfLedger(context.Background(), tc.userID, ledgerID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func assertIDs(t *testing.T, what string, got, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Errorf("expected %d %s, got %d (%v)", len(expected), what, len(got), got)
		return
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("expected %s %v, got %v", what, expected, got)
			return
		}
	}
}
