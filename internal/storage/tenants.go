// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/ledger-service/internal/types"
)

var tenantColumns = []string{"id", "name", "owner_user_id", "max_admin_users", "max_member_users", "max_invites", "max_ledgers", "status", "status_reason", "created_at", "updated_at"}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var t types.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.OwnerUserID, &t.MaxAdminUsers, &t.MaxMemberUsers, &t.MaxInvites, &t.MaxLedgers, &t.Status, &t.StatusReason, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	var created types.Tenant
	err := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "owner_user_id", "max_admin_users", "max_member_users", "max_invites", "max_ledgers", "status", "status_reason").
		Values(t.ID, t.Name, t.OwnerUserID, t.MaxAdminUsers, t.MaxMemberUsers, t.MaxInvites, t.MaxLedgers, t.Status, t.StatusReason).
		Suffix("RETURNING id, name, owner_user_id, max_admin_users, max_member_users, max_invites, max_ledgers, status, status_reason, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.OwnerUserID, &created.MaxAdminUsers, &created.MaxMemberUsers, &created.MaxInvites, &created.MaxLedgers, &created.Status, &created.StatusReason, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	t, err := scanTenant(
		s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) GetTenantsByIDs(ctx context.Context, ids []string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantsByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": ids}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

func (s *Storage) CountTenantsByOwner(ctx context.Context, userID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountTenantsByOwner")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("tenants").
		Where(sq.Eq{"owner_user_id": userID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	return count, nil
}

// UpdateTenant updates only the fields named in paths, PATCH style.
func (s *Storage) UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = t.Name
		case "max_admin_users":
			updateMap["max_admin_users"] = t.MaxAdminUsers
		case "max_member_users":
			updateMap["max_member_users"] = t.MaxMemberUsers
		case "max_invites":
			updateMap["max_invites"] = t.MaxInvites
		case "max_ledgers":
			updateMap["max_ledgers"] = t.MaxLedgers
		case "status":
			updateMap["status"] = t.Status
		case "status_reason":
			updateMap["status_reason"] = t.StatusReason
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": t.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) AddTenantMember(ctx context.Context, m *types.TenantMember) (*types.TenantMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddTenantMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	created := *m
	err = s.db.Statement(ctx).
		Insert("tenant_members").
		Columns("id", "tenant_id", "user_id", "name", "role", "is_default", "status", "status_reason").
		Values(id.String(), m.TenantID, m.UserID, m.Name, m.Role, m.Default, m.Status, m.StatusReason).
		Suffix("RETURNING id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to add tenant member: %w", err)
	}

	return &created, nil
}

// UpdateTenantMember updates the membership row identified by tenant and user id.
func (s *Storage) UpdateTenantMember(ctx context.Context, m *types.TenantMember, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantMember")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = m.Name
		case "role":
			updateMap["role"] = m.Role
		case "is_default":
			updateMap["is_default"] = m.Default
		case "status":
			updateMap["status"] = m.Status
		case "status_reason":
			updateMap["status_reason"] = m.StatusReason
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("tenant_members").
		SetMap(updateMap).
		Where(sq.Eq{
			"tenant_id": m.TenantID,
			"user_id":   m.UserID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListTenantMembers(ctx context.Context, tenantIDs []string) ([]*types.TenantMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantMembers")
	defer span.End()

	if len(tenantIDs) == 0 {
		return nil, nil
	}

	return s.listTenantMembers(ctx, sq.Eq{"tenant_id": tenantIDs})
}

func (s *Storage) ListTenantMembershipsByUser(ctx context.Context, userID string) ([]*types.TenantMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantMembershipsByUser")
	defer span.End()

	return s.listTenantMembers(ctx, sq.Eq{"user_id": userID})
}

func (s *Storage) listTenantMembers(ctx context.Context, where sq.Eq) ([]*types.TenantMember, error) {
	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "name", "role", "is_default", "status", "status_reason", "created_at", "updated_at").
		From("tenant_members").
		Where(where).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant members: %w", err)
	}
	defer rows.Close()

	var members []*types.TenantMember
	for rows.Next() {
		var m types.TenantMember
		if err := rows.Scan(&m.ID, &m.TenantID, &m.UserID, &m.Name, &m.Role, &m.Default, &m.Status, &m.StatusReason, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// ClearDefaultTenant unsets the default flag on all of the user's tenant
// memberships, so a new default can be set without violating the single
// default invariant.
func (s *Storage) ClearDefaultTenant(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearDefaultTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("tenant_members").
		Set("is_default", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"user_id":    userID,
			"is_default": true,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear default tenant: %w", err)
	}
	return nil
}

func (s *Storage) DeleteTenantMembers(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenantMembers")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("tenant_members").
		Where(sq.Eq{"tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant members: %w", err)
	}
	return nil
}
