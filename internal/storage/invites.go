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

var inviteColumns = []string{"id", "inviter_user_id", "inviter_tenant_id", "invited_user_id", "query_provider", "query_email", "query_nick", "send_email_count", "invited_tenant_id", "invited_ledger_id", "target_role", "target_right", "status", "status_reason", "expires_after", "created_at", "updated_at"}

func scanInvite(row sq.RowScanner) (*types.InviteTicket, error) {
	var i types.InviteTicket
	err := row.Scan(&i.ID, &i.InviterUserID, &i.InviterTenantID, &i.InvitedUserID, &i.QueryProvider, &i.QueryEmail, &i.QueryNick, &i.SendEmailCount, &i.InvitedTenantID, &i.InvitedLedgerID, &i.TargetRole, &i.TargetRight, &i.Status, &i.StatusReason, &i.ExpiresAfter, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Storage) CreateInvite(ctx context.Context, i *types.InviteTicket) (*types.InviteTicket, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	created := *i
	err = s.db.Statement(ctx).
		Insert("invites").
		Columns("id", "inviter_user_id", "inviter_tenant_id", "invited_user_id", "query_provider", "query_email", "query_nick", "send_email_count", "invited_tenant_id", "invited_ledger_id", "target_role", "target_right", "status", "status_reason", "expires_after").
		Values(id.String(), i.InviterUserID, i.InviterTenantID, i.InvitedUserID, i.QueryProvider, i.QueryEmail, i.QueryNick, i.SendEmailCount, i.InvitedTenantID, i.InvitedLedgerID, i.TargetRole, i.TargetRight, i.Status, i.StatusReason, i.ExpiresAfter).
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
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetInviteByID(ctx context.Context, id string) (*types.InviteTicket, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByID")
	defer span.End()

	i, err := scanInvite(
		s.db.Statement(ctx).
			Select(inviteColumns...).
			From("invites").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return i, nil
}

// UpdateInvite updates only the fields named in paths, PATCH style.
func (s *Storage) UpdateInvite(ctx context.Context, i *types.InviteTicket, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInvite")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "invited_user_id":
			updateMap["invited_user_id"] = i.InvitedUserID
		case "query_provider":
			updateMap["query_provider"] = i.QueryProvider
		case "query_email":
			updateMap["query_email"] = i.QueryEmail
		case "query_nick":
			updateMap["query_nick"] = i.QueryNick
		case "send_email_count":
			updateMap["send_email_count"] = i.SendEmailCount
		case "target_role":
			updateMap["target_role"] = i.TargetRole
		case "target_right":
			updateMap["target_right"] = i.TargetRight
		case "status":
			updateMap["status"] = i.Status
		case "status_reason":
			updateMap["status_reason"] = i.StatusReason
		case "expires_after":
			updateMap["expires_after"] = i.ExpiresAfter
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("invites").
		SetMap(updateMap).
		Where(sq.Eq{"id": i.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update invite: %w", err)
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

func (s *Storage) DeleteInvite(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
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

func (s *Storage) DeleteInvitesByTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitesByTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Eq{"invited_tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invites: %w", err)
	}
	return nil
}

// listInvitesFilter matches tickets targeting any of the given tenants or
// ledgers. Ledger-targeted tickets carry the owning tenant only as
// inviter_tenant_id, so the tenant branch must match on invited_tenant_id or
// tenant admins would see tickets into ledgers they do not administer.
func listInvitesFilter(tenantIDs, ledgerIDs []string) sq.Sqlizer {
	or := sq.Or{}
	if len(tenantIDs) > 0 {
		or = append(or, sq.Eq{"invited_tenant_id": tenantIDs})
	}
	if len(ledgerIDs) > 0 {
		or = append(or, sq.Eq{"invited_ledger_id": ledgerIDs})
	}
	if len(or) == 0 {
		return nil
	}
	return or
}

// ListInvites returns invites targeting any of the given tenants or ledgers.
func (s *Storage) ListInvites(ctx context.Context, tenantIDs, ledgerIDs []string) ([]*types.InviteTicket, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvites")
	defer span.End()

	where := listInvitesFilter(tenantIDs, ledgerIDs)
	if where == nil {
		return nil, nil
	}

	return s.listInvites(ctx, where)
}

// ListPendingInvitesByTarget returns the pending invites into one tenant or
// ledger. Exactly one of tenantID and ledgerID should be set.
func (s *Storage) ListPendingInvitesByTarget(ctx context.Context, tenantID, ledgerID string) ([]*types.InviteTicket, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitesByTarget")
	defer span.End()

	where := sq.Eq{"status": types.InviteStatusPending}
	if tenantID != "" {
		where["invited_tenant_id"] = tenantID
	}
	if ledgerID != "" {
		where["invited_ledger_id"] = ledgerID
	}

	return s.listInvites(ctx, where)
}

// ListInvitesForUser returns the pending invites addressed to the user,
// either directly by id or through the canonicalized email or nick the
// inviter queried by.
func (s *Storage) ListInvitesForUser(ctx context.Context, userID, cleanEmail, cleanNick string) ([]*types.InviteTicket, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesForUser")
	defer span.End()

	or := sq.Or{}
	if userID != "" {
		or = append(or, sq.Eq{"invited_user_id": userID})
	}
	if cleanEmail != "" {
		or = append(or, sq.Eq{"query_email": cleanEmail})
	}
	if cleanNick != "" {
		or = append(or, sq.Eq{"query_nick": cleanNick})
	}
	if len(or) == 0 {
		return nil, nil
	}

	return s.listInvites(ctx, sq.And{
		sq.Eq{"status": types.InviteStatusPending},
		or,
	})
}

func (s *Storage) listInvites(ctx context.Context, where sq.Sqlizer) ([]*types.InviteTicket, error) {
	rows, err := s.db.Statement(ctx).
		Select(inviteColumns...).
		From("invites").
		Where(where).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.InviteTicket
	for rows.Next() {
		i, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

func (s *Storage) CountPendingInvitesByTenant(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPendingInvitesByTenant")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("invites").
		Where(sq.Eq{
			"inviter_tenant_id": tenantID,
			"status":            types.InviteStatusPending,
		}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count pending invites: %w", err)
	}

	return count, nil
}

// ExpireInvites flips every pending invite past its expiry to expired and
// returns how many rows changed. Called opportunistically before invite reads
// so clients never observe a stale pending state.
func (s *Storage) ExpireInvites(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExpireInvites")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("status", types.InviteStatusExpired).
		Set("status_reason", "invite expired").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"status": types.InviteStatusPending}).
		Where(sq.Expr("expires_after < NOW()")).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to expire invites: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
