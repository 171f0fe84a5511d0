// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenant implements the tenant lifecycle and tenant membership
// operations.
package tenant

import (
	"context"
	"fmt"

	"github.com/canonical/ledger-service/internal/id"
	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring"
	"github.com/canonical/ledger-service/internal/storage"
	"github.com/canonical/ledger-service/internal/tracing"
	"github.com/canonical/ledger-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	roles   RolesInterface
	idgen   id.GeneratorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	roles RolesInterface,
	idgen id.GeneratorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		roles:   roles,
		idgen:   idgen,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateTenant(ctx context.Context, user *types.User, displayName string, params CreateTenantParams) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	cnt, err := s.storage.CountTenantsByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tenants: %w", err)
	}
	if cnt+1 >= user.MaxTenants {
		return nil, types.ErrMaxTenantsReached
	}

	tenantID := s.idgen.NewID()
	name := params.Name
	if name == "" {
		name = fmt.Sprintf("my-tenant[%s]", tenantID)
	}

	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{
		ID:             tenantID,
		Name:           name,
		OwnerUserID:    user.ID,
		MaxAdminUsers:  orDefault(params.MaxAdminUsers, types.DefaultMaxAdminUsers),
		MaxMemberUsers: orDefault(params.MaxMemberUsers, types.DefaultMaxMemberUsers),
		MaxInvites:     orDefault(params.MaxInvites, types.DefaultMaxInvites),
		MaxLedgers:     orDefault(params.MaxLedgers, types.DefaultMaxLedgers),
		Status:         types.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	memberName := params.Name
	if memberName == "" {
		memberName = displayName
	}
	if _, err := s.AddUserToTenant(ctx, AddUserParams{
		TenantID: tenant.ID,
		UserID:   user.ID,
		Name:     memberName,
		Role:     types.RoleAdmin,
	}); err != nil {
		return nil, fmt.Errorf("failed to attach creator: %w", err)
	}

	return tenant, nil
}

func (s *Service) UpdateTenant(ctx context.Context, userID string, params UpdateTenantParams) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, params.TenantID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrTenantNotFound
		}
		return nil, err
	}

	admin, err := s.roles.IsAdminOfTenant(ctx, userID, params.TenantID)
	if err != nil {
		return nil, err
	}
	if !admin {
		s.logger.Security().AuthzFailure(userID, "updateTenant")
		return nil, types.ErrNotAuthorized
	}

	paths := []string{}
	if params.Name != nil {
		tenant.Name = *params.Name
		paths = append(paths, "name")
	}
	if params.MaxAdminUsers != nil {
		tenant.MaxAdminUsers = *params.MaxAdminUsers
		paths = append(paths, "max_admin_users")
	}
	if params.MaxMemberUsers != nil {
		tenant.MaxMemberUsers = *params.MaxMemberUsers
		paths = append(paths, "max_member_users")
	}
	if params.MaxInvites != nil {
		tenant.MaxInvites = *params.MaxInvites
		paths = append(paths, "max_invites")
	}
	if len(paths) == 0 {
		return tenant, nil
	}

	if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return tenant, nil
}

// DeleteTenant removes the tenant, its memberships and the invites targeting
// it. Ledgers owned by the tenant are left in place.
func (s *Service) DeleteTenant(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	admin, err := s.roles.IsAdminOfTenant(ctx, userID, tenantID)
	if err != nil {
		return err
	}
	if !admin {
		s.logger.Security().AuthzFailure(userID, "deleteTenant")
		return types.ErrNotAuthorized
	}

	if err := s.storage.DeleteInvitesByTenant(ctx, tenantID); err != nil {
		return err
	}
	if err := s.storage.DeleteTenantMembers(ctx, tenantID); err != nil {
		return err
	}
	if err := s.storage.DeleteTenant(ctx, tenantID); err != nil {
		if storage.IsNotFound(err) {
			return types.ErrTenantNotFound
		}
		return err
	}
	return nil
}

// AddUserToTenant attaches a user to an active tenant. The operation is
// idempotent: when the user already holds a role the existing membership row
// is returned unchanged.
func (s *Service) AddUserToTenant(ctx context.Context, params AddUserParams) (*types.TenantMember, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddUserToTenant")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, params.TenantID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrTenantNotFound
		}
		return nil, err
	}
	if tenant.Status != types.StatusActive {
		return nil, types.ErrTenantNotFound
	}

	records, err := s.roles.GetRoles(ctx, params.UserID, []string{params.TenantID}, nil)
	if err != nil {
		return nil, err
	}
	if len(records) > 1 {
		return nil, types.ErrMultipleRolesFound
	}
	if len(records) == 1 {
		member, err := s.activeMember(ctx, params.TenantID, params.UserID)
		if err != nil {
			return nil, err
		}
		return member, nil
	}

	if err := s.roles.CheckMaxRoles(ctx, tenant, params.Role); err != nil {
		return nil, err
	}

	if params.Default {
		if err := s.storage.ClearDefaultTenant(ctx, params.UserID); err != nil {
			return nil, err
		}
	}

	member, err := s.storage.AddTenantMember(ctx, &types.TenantMember{
		TenantID: tenant.ID,
		UserID:   params.UserID,
		Name:     params.Name,
		Role:     params.Role,
		Default:  params.Default,
		Status:   types.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add tenant member: %w", err)
	}
	return member, nil
}

func (s *Service) UpdateUserTenant(ctx context.Context, callerID string, update MembershipUpdate) (*types.TenantMember, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateUserTenant")
	defer span.End()

	targetID := update.UserID
	if targetID == "" {
		targetID = callerID
	}

	member, err := s.membership(ctx, update.TenantID, targetID)
	if err != nil {
		return nil, err
	}

	paths := []string{}
	if update.Role != nil {
		admin, err := s.roles.IsAdminOfTenant(ctx, callerID, update.TenantID)
		if err != nil {
			return nil, err
		}
		if !admin {
			s.logger.Security().AuthzFailure(callerID, "updateUserTenant")
			return nil, types.ErrNotAuthorized
		}
		member.Role = *update.Role
		paths = append(paths, "role")
	}
	if update.Name != nil {
		member.Name = *update.Name
		paths = append(paths, "name")
	}
	if update.Default != nil && *update.Default {
		if err := s.storage.ClearDefaultTenant(ctx, targetID); err != nil {
			return nil, err
		}
		member.Default = true
		paths = append(paths, "is_default")
	}
	if len(paths) == 0 {
		return member, nil
	}

	if err := s.storage.UpdateTenantMember(ctx, member, paths); err != nil {
		return nil, fmt.Errorf("failed to update tenant member: %w", err)
	}
	return member, nil
}

func (s *Service) ListTenantsByUser(ctx context.Context, userID string) ([]*types.UserTenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenantsByUser")
	defer span.End()

	memberships, err := s.storage.ListTenantMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []*types.UserTenant{}, nil
	}

	tenantIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		tenantIDs = append(tenantIDs, m.TenantID)
	}
	tenants, err := s.storage.GetTenantsByIDs(ctx, tenantIDs)
	if err != nil {
		return nil, err
	}
	tenantByID := make(map[string]*types.Tenant, len(tenants))
	for _, t := range tenants {
		tenantByID[t.ID] = t
	}

	records, err := s.roles.GetRoles(ctx, userID, tenantIDs, nil)
	if err != nil {
		return nil, err
	}
	recordByTenant := make(map[string]*types.RoleRecord, len(records))
	for _, r := range records {
		recordByTenant[r.TenantID] = r
	}

	views := make([]*types.UserTenant, 0, len(memberships))
	for _, m := range memberships {
		tenant, ok := tenantByID[m.TenantID]
		if !ok {
			continue
		}
		record, ok := recordByTenant[m.TenantID]
		if !ok {
			// no resolvable role, e.g. a disabled membership
			continue
		}

		view := &types.UserTenant{
			TenantID: m.TenantID,
			Role:     record.Role,
			Default:  m.Default,
			User: types.MembershipMeta{
				Name:         m.Name,
				Status:       m.Status,
				StatusReason: m.StatusReason,
				CreatedAt:    m.CreatedAt,
				UpdatedAt:    m.UpdatedAt,
			},
			Tenant: types.MembershipMeta{
				Name:         tenant.Name,
				Status:       tenant.Status,
				StatusReason: tenant.StatusReason,
				CreatedAt:    tenant.CreatedAt,
				UpdatedAt:    tenant.UpdatedAt,
			},
		}
		if record.IsAdmin() {
			view.AdminUserIDs = record.AdminUserIDs
			view.MemberUserIDs = record.MemberUserIDs
			view.MaxAdminUsers = tenant.MaxAdminUsers
			view.MaxMemberUsers = tenant.MaxMemberUsers
		}
		views = append(views, view)
	}

	return views, nil
}

// membership loads one user's membership row in a tenant.
func (s *Service) membership(ctx context.Context, tenantID, userID string) (*types.TenantMember, error) {
	members, err := s.storage.ListTenantMembers(ctx, []string{tenantID})
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, types.ErrRefNotFound
}

// activeMember loads one user's active membership row in a tenant.
func (s *Service) activeMember(ctx context.Context, tenantID, userID string) (*types.TenantMember, error) {
	member, err := s.membership(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if member.Status != types.StatusActive {
		return nil, types.ErrRefNotFound
	}
	return member, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
