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

var ledgerColumns = []string{"id", "tenant_id", "owner_user_id", "name", "status", "status_reason", "created_at", "updated_at"}

func scanLedger(row sq.RowScanner) (*types.Ledger, error) {
	var l types.Ledger
	err := row.Scan(&l.ID, &l.TenantID, &l.OwnerUserID, &l.Name, &l.Status, &l.StatusReason, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Storage) CreateLedger(ctx context.Context, l *types.Ledger) (*types.Ledger, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLedger")
	defer span.End()

	var created types.Ledger
	err := s.db.Statement(ctx).
		Insert("ledgers").
		Columns("id", "tenant_id", "owner_user_id", "name", "status", "status_reason").
		Values(l.ID, l.TenantID, l.OwnerUserID, l.Name, l.Status, l.StatusReason).
		Suffix("RETURNING id, tenant_id, owner_user_id, name, status, status_reason, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.OwnerUserID, &created.Name, &created.Status, &created.StatusReason, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert ledger: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetLedgerByID(ctx context.Context, id string) (*types.Ledger, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLedgerByID")
	defer span.End()

	l, err := scanLedger(
		s.db.Statement(ctx).
			Select(ledgerColumns...).
			From("ledgers").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}

	return l, nil
}

func (s *Storage) GetLedgersByIDs(ctx context.Context, ids []string) ([]*types.Ledger, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLedgersByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select(ledgerColumns...).
		From("ledgers").
		Where(sq.Eq{"id": ids}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []*types.Ledger
	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ledgers, nil
}

func (s *Storage) ListLedgersByTenant(ctx context.Context, tenantID string) ([]*types.Ledger, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLedgersByTenant")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(ledgerColumns...).
		From("ledgers").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []*types.Ledger
	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ledgers, nil
}

func (s *Storage) CountLedgersByTenant(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountLedgersByTenant")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("ledgers").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count ledgers: %w", err)
	}

	return count, nil
}

// UpdateLedger updates only the fields named in paths, PATCH style.
func (s *Storage) UpdateLedger(ctx context.Context, l *types.Ledger, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLedger")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = l.Name
		case "status":
			updateMap["status"] = l.Status
		case "status_reason":
			updateMap["status_reason"] = l.StatusReason
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("ledgers").
		SetMap(updateMap).
		Where(sq.Eq{"id": l.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update ledger: %w", err)
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

func (s *Storage) DeleteLedger(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLedger")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("ledgers").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete ledger: %w", err)
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

func (s *Storage) AddLedgerMember(ctx context.Context, m *types.LedgerMember) (*types.LedgerMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddLedgerMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	created := *m
	err = s.db.Statement(ctx).
		Insert("ledger_members").
		Columns("id", "ledger_id", "user_id", "name", "role", "access_right", "is_default", "status", "status_reason").
		Values(id.String(), m.LedgerID, m.UserID, m.Name, m.Role, m.Right, m.Default, m.Status, m.StatusReason).
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
		return nil, fmt.Errorf("failed to add ledger member: %w", err)
	}

	return &created, nil
}

// UpdateLedgerMember updates the membership row identified by ledger and user id.
func (s *Storage) UpdateLedgerMember(ctx context.Context, m *types.LedgerMember, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLedgerMember")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = m.Name
		case "role":
			updateMap["role"] = m.Role
		case "access_right":
			updateMap["access_right"] = m.Right
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
		Update("ledger_members").
		SetMap(updateMap).
		Where(sq.Eq{
			"ledger_id": m.LedgerID,
			"user_id":   m.UserID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update ledger member: %w", err)
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

func (s *Storage) ListLedgerMembers(ctx context.Context, ledgerIDs []string) ([]*types.LedgerMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLedgerMembers")
	defer span.End()

	if len(ledgerIDs) == 0 {
		return nil, nil
	}

	return s.listLedgerMembers(ctx, sq.Eq{"ledger_id": ledgerIDs})
}

func (s *Storage) ListLedgerMembershipsByUser(ctx context.Context, userID string) ([]*types.LedgerMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLedgerMembershipsByUser")
	defer span.End()

	return s.listLedgerMembers(ctx, sq.Eq{"user_id": userID})
}

func (s *Storage) listLedgerMembers(ctx context.Context, where sq.Eq) ([]*types.LedgerMember, error) {
	rows, err := s.db.Statement(ctx).
		Select("id", "ledger_id", "user_id", "name", "role", "access_right", "is_default", "status", "status_reason", "created_at", "updated_at").
		From("ledger_members").
		Where(where).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger members: %w", err)
	}
	defer rows.Close()

	var members []*types.LedgerMember
	for rows.Next() {
		var m types.LedgerMember
		if err := rows.Scan(&m.ID, &m.LedgerID, &m.UserID, &m.Name, &m.Role, &m.Right, &m.Default, &m.Status, &m.StatusReason, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// ClearDefaultLedger unsets the default flag on all of the user's ledger
// memberships.
func (s *Storage) ClearDefaultLedger(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearDefaultLedger")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("ledger_members").
		Set("is_default", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"user_id":    userID,
			"is_default": true,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear default ledger: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLedgerMembers(ctx context.Context, ledgerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLedgerMembers")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("ledger_members").
		Where(sq.Eq{"ledger_id": ledgerID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete ledger members: %w", err)
	}
	return nil
}
