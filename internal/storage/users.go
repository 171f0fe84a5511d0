// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/ledger-service/internal/types"
)

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	var created types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "max_tenants", "status", "status_reason").
		Values(u.ID, u.MaxTenants, u.Status, u.StatusReason).
		Suffix("RETURNING id, max_tenants, status, status_reason, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.MaxTenants, &created.Status, &created.StatusReason, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "max_tenants", "status", "status_reason", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.MaxTenants, &u.Status, &u.StatusReason, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) CreateUserProvider(ctx context.Context, p *types.UserProvider) (*types.UserProvider, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUserProvider")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user provider ID: %w", err)
	}

	params, err := json.Marshal(p.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider params: %w", err)
	}

	created := *p
	err = s.db.Statement(ctx).
		Insert("user_providers").
		Columns("id", "user_id", "provider", "provider_user_id", "query_email", "clean_email", "query_nick", "clean_nick", "params").
		Values(id.String(), p.UserID, p.Provider, p.ProviderUserID, p.QueryEmail, p.CleanEmail, p.QueryNick, p.CleanNick, params).
		Suffix("RETURNING id, last_used_at, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.LastUsedAt, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert user provider: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetUserProvider(ctx context.Context, provider, providerUserID string) (*types.UserProvider, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserProvider")
	defer span.End()

	var p types.UserProvider
	var params []byte
	err := s.db.Statement(ctx).
		Select("id", "user_id", "provider", "provider_user_id", "query_email", "clean_email", "query_nick", "clean_nick", "params", "last_used_at", "created_at").
		From("user_providers").
		Where(sq.Eq{"provider": provider, "provider_user_id": providerUserID}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.UserID, &p.Provider, &p.ProviderUserID, &p.QueryEmail, &p.CleanEmail, &p.QueryNick, &p.CleanNick, &params, &p.LastUsedAt, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user provider: %w", err)
	}

	if len(params) > 0 {
		if err := json.Unmarshal(params, &p.Params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal provider params: %w", err)
		}
	}

	return &p, nil
}

// TouchUserProvider records that the provider link was just used for a login.
func (s *Storage) TouchUserProvider(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchUserProvider")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("user_providers").
		Set("last_used_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to touch user provider: %w", err)
	}
	return nil
}

// FindUserIDs returns the distinct user ids whose provider links match the
// query. Email, nick and existing user id predicates are ORed together, the
// provider predicate narrows the match.
func (s *Storage) FindUserIDs(ctx context.Context, q types.UserQuery) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindUserIDs")
	defer span.End()

	or := sq.Or{}
	if q.ByEmail != "" {
		or = append(or, sq.Eq{"clean_email": q.ByEmail})
	}
	if q.ByNick != "" {
		or = append(or, sq.Eq{"clean_nick": q.ByNick})
	}
	if q.ExistingUserID != "" {
		or = append(or, sq.Eq{"user_id": q.ExistingUserID})
	}
	if len(or) == 0 {
		return nil, nil
	}

	query := s.db.Statement(ctx).
		Select("DISTINCT user_id").
		From("user_providers").
		Where(or)

	if q.AndProvider != "" {
		query = query.Where(sq.Eq{"provider": q.AndProvider})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}
