// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/ledger-service/internal/types"
)

func TestEngine_CheckMaxRoles(t *testing.T) {
	tenant := &types.Tenant{
		ID:             "tenant-1",
		MaxAdminUsers:  3,
		MaxMemberUsers: 3,
	}

	testCases := []struct {
		name          string
		role          types.Role
		tenantMembers []*types.TenantMember
		ledgers       []*types.Ledger
		ledgerMembers []*types.LedgerMember
		expectedError error
	}{
		{
			name: "admin quota not reached",
			role: types.RoleAdmin,
			tenantMembers: []*types.TenantMember{
				{TenantID: tenant.ID, UserID: "admin-1", Role: types.RoleAdmin, Status: types.StatusActive},
			},
		},
		{
			name: "admin quota keeps one slot in reserve",
			role: types.RoleAdmin,
			tenantMembers: []*types.TenantMember{
				{TenantID: tenant.ID, UserID: "admin-1", Role: types.RoleAdmin, Status: types.StatusActive},
				{TenantID: tenant.ID, UserID: "admin-2", Role: types.RoleAdmin, Status: types.StatusActive},
			},
			expectedError: types.ErrMaxAdminsReached,
		},
		{
			name: "member quota reached",
			role: types.RoleMember,
			tenantMembers: []*types.TenantMember{
				{TenantID: tenant.ID, UserID: "member-1", Role: types.RoleMember, Status: types.StatusActive},
			},
			ledgers: []*types.Ledger{{ID: "ledger-1", TenantID: tenant.ID}},
			ledgerMembers: []*types.LedgerMember{
				{LedgerID: "ledger-1", UserID: "member-2", Role: types.RoleMember, Status: types.StatusActive},
			},
			expectedError: types.ErrMaxMembersReached,
		},
		{
			name: "same user across scopes counts once",
			role: types.RoleMember,
			tenantMembers: []*types.TenantMember{
				{TenantID: tenant.ID, UserID: "member-1", Role: types.RoleMember, Status: types.StatusActive},
			},
			ledgers: []*types.Ledger{{ID: "ledger-1", TenantID: tenant.ID}},
			ledgerMembers: []*types.LedgerMember{
				{LedgerID: "ledger-1", UserID: "member-1", Role: types.RoleMember, Status: types.StatusActive},
			},
		},
		{
			name: "admin anywhere never counts as a member",
			role: types.RoleMember,
			tenantMembers: []*types.TenantMember{
				{TenantID: tenant.ID, UserID: "user-1", Role: types.RoleMember, Status: types.StatusActive},
			},
			ledgers: []*types.Ledger{{ID: "ledger-1", TenantID: tenant.ID}},
			ledgerMembers: []*types.LedgerMember{
				{LedgerID: "ledger-1", UserID: "user-1", Role: types.RoleAdmin, Status: types.StatusActive},
			},
		},
		{
			name: "inactive memberships are ignored",
			role: types.RoleMember,
			tenantMembers: []*types.TenantMember{
				{TenantID: tenant.ID, UserID: "member-1", Role: types.RoleMember, Status: "disabled"},
				{TenantID: tenant.ID, UserID: "member-2", Role: types.RoleMember, Status: "disabled"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockStorage, ctrl := newTestEngine(t)
			defer ctrl.Finish()

			ledgerIDs := make([]string, 0, len(tc.ledgers))
			for _, l := range tc.ledgers {
				ledgerIDs = append(ledgerIDs, l.ID)
			}

			mockStorage.EXPECT().ListTenantMembers(gomock.Any(), []string{tenant.ID}).Return(tc.tenantMembers, nil)
			mockStorage.EXPECT().ListLedgersByTenant(gomock.Any(), tenant.ID).Return(tc.ledgers, nil)
			mockStorage.EXPECT().ListLedgerMembers(gomock.Any(), ledgerIDs).Return(tc.ledgerMembers, nil)

			err := e.CheckMaxRoles(context.Background(), tenant, tc.role)
			if !errors.Is(err, tc.expectedError) {
				t.Errorf("expected error %v, got %v", tc.expectedError, err)
			}
		})
	}
}

func TestEngine_CheckMaxInvites(t *testing.T) {
	tenant := &types.Tenant{ID: "tenant-1", MaxInvites: 5}

	testCases := []struct {
		name          string
		count         int
		expectedError error
	}{
		{name: "below quota", count: 4},
		{name: "at quota", count: 5, expectedError: types.ErrMaxInvitesReached},
		{name: "above quota", count: 6, expectedError: types.ErrMaxInvitesReached},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockStorage, ctrl := newTestEngine(t)
			defer ctrl.Finish()

			mockStorage.EXPECT().CountPendingInvitesByTenant(gomock.Any(), tenant.ID).Return(tc.count, nil)

			err := e.CheckMaxInvites(context.Background(), tenant)
			if !errors.Is(err, tc.expectedError) {
				t.Errorf("expected error %v, got %v", tc.expectedError, err)
			}
		})
	}
}

func TestEngine_CheckMaxLedgers(t *testing.T) {
	tenant := &types.Tenant{ID: "tenant-1", MaxLedgers: 10}

	testCases := []struct {
		name          string
		count         int
		expectedError error
	}{
		{name: "below quota", count: 9},
		{name: "at quota", count: 10, expectedError: types.ErrMaxLedgersReached},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, mockStorage, ctrl := newTestEngine(t)
			defer ctrl.Finish()

			mockStorage.EXPECT().CountLedgersByTenant(gomock.Any(), tenant.ID).Return(tc.count, nil)

			err := e.CheckMaxLedgers(context.Background(), tenant)
			if !errors.Is(err, tc.expectedError) {
				t.Errorf("expected error %v, got %v", tc.expectedError, err)
			}
		})
	}
}
