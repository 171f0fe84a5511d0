// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ledger implements the ledger lifecycle and ledger membership
// operations.
package ledger

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

func (s *Service) CreateLedger(ctx context.Context, userID string, params CreateLedgerParams) (*types.UserLedger, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.Service.CreateLedger")
	defer span.End()

	admin, err := s.roles.IsAdminOfTenant(ctx, userID, params.TenantID)
	if err != nil {
		return nil, err
	}
	if !admin {
		s.logger.Security().AuthzFailure(userID, "createLedger")
		return nil, types.ErrNotAuthorized
	}

	tenant, err := s.storage.GetTenantByID(ctx, params.TenantID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrTenantNotFound
		}
		return nil, err
	}
	if err := s.roles.CheckMaxLedgers(ctx, tenant); err != nil {
		return nil, err
	}

	ledger, err := s.storage.CreateLedger(ctx, &types.Ledger{
		ID:          s.idgen.NewID(),
		TenantID:    params.TenantID,
		OwnerUserID: userID,
		Name:        params.Name,
		Status:      types.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	member, err := s.storage.AddLedgerMember(ctx, &types.LedgerMember{
		LedgerID: ledger.ID,
		UserID:   userID,
		Name:     params.Name,
		Role:     types.RoleAdmin,
		Right:    types.RightWrite,
		Status:   types.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach creator: %w", err)
	}

	return view(ledger, member), nil
}

func (s *Service) UpdateLedger(ctx context.Context, userID string, params UpdateLedgerParams) (*types.UserLedger, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.Service.UpdateLedger")
	defer span.End()

	member, err := s.membership(ctx, params.LedgerID, userID)
	if err != nil {
		return nil, err
	}
	ledger, err := s.storage.GetLedgerByID(ctx, params.LedgerID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrLedgerNotFound
		}
		return nil, err
	}

	admin, err := s.roles.IsAdminOfLedger(ctx, userID, params.LedgerID)
	if err != nil {
		return nil, err
	}

	if !admin {
		// non-admins may only rename their own membership
		if params.Name != nil {
			member.Name = *params.Name
			if err := s.storage.UpdateLedgerMember(ctx, member, []string{"name"}); err != nil {
				return nil, fmt.Errorf("failed to update ledger member: %w", err)
			}
		}
		return view(ledger, member), nil
	}

	paths := []string{}
	if params.Default != nil {
		if *params.Default {
			if err := s.storage.ClearDefaultLedger(ctx, userID); err != nil {
				return nil, err
			}
		}
		member.Default = *params.Default
		paths = append(paths, "is_default")
	}
	if params.Name != nil {
		member.Name = *params.Name
		paths = append(paths, "name")

		ledger.Name = *params.Name
		if err := s.storage.UpdateLedger(ctx, ledger, []string{"name"}); err != nil {
			return nil, fmt.Errorf("failed to update ledger: %w", err)
		}
	}
	if params.Right != nil {
		member.Right = *params.Right
		paths = append(paths, "access_right")
	}
	if params.Role != nil {
		member.Role = *params.Role
		paths = append(paths, "role")
	}
	if len(paths) > 0 {
		if err := s.storage.UpdateLedgerMember(ctx, member, paths); err != nil {
			return nil, fmt.Errorf("failed to update ledger member: %w", err)
		}
	}

	return view(ledger, member), nil
}

func (s *Service) DeleteLedger(ctx context.Context, userID, ledgerID string) error {
	ctx, span := s.tracer.Start(ctx, "ledger.Service.DeleteLedger")
	defer span.End()

	admin, err := s.roles.IsAdminOfLedger(ctx, userID, ledgerID)
	if err != nil {
		return err
	}
	if !admin {
		s.logger.Security().AuthzFailure(userID, "deleteLedger")
		return types.ErrNotAuthorized
	}

	if err := s.storage.DeleteLedgerMembers(ctx, ledgerID); err != nil {
		return err
	}
	if err := s.storage.DeleteLedger(ctx, ledgerID); err != nil {
		if storage.IsNotFound(err) {
			return types.ErrLedgerNotFound
		}
		return err
	}
	return nil
}

// AddUserToLedger attaches a user to a ledger. The operation is idempotent:
// when the user already holds a role the existing membership row is returned
// unchanged. Quota counts against the owning tenant.
func (s *Service) AddUserToLedger(ctx context.Context, params AddUserParams) (*types.LedgerMember, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.Service.AddUserToLedger")
	defer span.End()

	ledger, err := s.storage.GetLedgerByID(ctx, params.LedgerID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrLedgerNotFound
		}
		return nil, err
	}
	if ledger.Status != types.StatusActive {
		return nil, types.ErrLedgerNotFound
	}

	records, err := s.roles.GetRoles(ctx, params.UserID, nil, []string{params.LedgerID})
	if err != nil {
		return nil, err
	}
	ledgerRecords := make([]*types.RoleRecord, 0, len(records))
	for _, r := range records {
		if r.Scope == types.RoleScopeLedger {
			ledgerRecords = append(ledgerRecords, r)
		}
	}
	if len(ledgerRecords) > 1 {
		return nil, types.ErrMultipleRolesFound
	}
	if len(ledgerRecords) == 1 {
		member, err := s.activeMember(ctx, params.LedgerID, params.UserID)
		if err != nil {
			return nil, err
		}
		return member, nil
	}

	tenant, err := s.storage.GetTenantByID(ctx, ledger.TenantID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrTenantNotFound
		}
		return nil, err
	}
	if err := s.roles.CheckMaxRoles(ctx, tenant, params.Role); err != nil {
		return nil, err
	}

	if params.Default {
		if err := s.storage.ClearDefaultLedger(ctx, params.UserID); err != nil {
			return nil, err
		}
	}

	member, err := s.storage.AddLedgerMember(ctx, &types.LedgerMember{
		LedgerID: ledger.ID,
		UserID:   params.UserID,
		Name:     params.Name,
		Role:     params.Role,
		Right:    params.Right,
		Default:  params.Default,
		Status:   types.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add ledger member: %w", err)
	}
	return member, nil
}

func (s *Service) ListLedgersByUser(ctx context.Context, userID string, tenantIDs []string) ([]*types.UserLedger, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.Service.ListLedgersByUser")
	defer span.End()

	memberships, err := s.storage.ListLedgerMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []*types.UserLedger{}, nil
	}

	ledgerIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ledgerIDs = append(ledgerIDs, m.LedgerID)
	}
	ledgers, err := s.storage.GetLedgersByIDs(ctx, ledgerIDs)
	if err != nil {
		return nil, err
	}

	wantTenant := make(map[string]struct{}, len(tenantIDs))
	for _, id := range tenantIDs {
		wantTenant[id] = struct{}{}
	}
	ledgerByID := make(map[string]*types.Ledger, len(ledgers))
	for _, l := range ledgers {
		ledgerByID[l.ID] = l
	}

	views := make([]*types.UserLedger, 0, len(memberships))
	for _, m := range memberships {
		ledger, ok := ledgerByID[m.LedgerID]
		if !ok {
			continue
		}
		if len(wantTenant) > 0 {
			if _, ok := wantTenant[ledger.TenantID]; !ok {
				continue
			}
		}
		views = append(views, view(ledger, m))
	}

	return views, nil
}

// membership loads one user's membership row in a ledger.
func (s *Service) membership(ctx context.Context, ledgerID, userID string) (*types.LedgerMember, error) {
	members, err := s.storage.ListLedgerMembers(ctx, []string{ledgerID})
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

// activeMember loads one user's active membership row in a ledger.
func (s *Service) activeMember(ctx context.Context, ledgerID, userID string) (*types.LedgerMember, error) {
	member, err := s.membership(ctx, ledgerID, userID)
	if err != nil {
		return nil, err
	}
	if member.Status != types.StatusActive {
		return nil, types.ErrRefNotFound
	}
	return member, nil
}

// view flattens a ledger and one membership row into the per-user ledger
// view.
func view(ledger *types.Ledger, member *types.LedgerMember) *types.UserLedger {
	name := member.Name
	if name == "" {
		name = ledger.Name
	}
	return &types.UserLedger{
		LedgerID:  ledger.ID,
		TenantID:  ledger.TenantID,
		Name:      name,
		Role:      member.Role,
		Right:     member.Right,
		Default:   member.Default,
		CreatedAt: ledger.CreatedAt,
		UpdatedAt: ledger.UpdatedAt,
	}
}
