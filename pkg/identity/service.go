// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity resolves bearer credentials to users. It owns the first
// login flow: creating the user, linking it to the external provider account
// and attaching a default tenant.
package identity

import (
	"context"
	"fmt"

	"github.com/canonical/ledger-service/internal/id"
	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring"
	"github.com/canonical/ledger-service/internal/storage"
	"github.com/canonical/ledger-service/internal/tracing"
	"github.com/canonical/ledger-service/internal/types"
	"github.com/canonical/ledger-service/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	registry authentication.RegistryInterface
	idgen    id.GeneratorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	registry authentication.RegistryInterface,
	idgen id.GeneratorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		registry: registry,
		idgen:    idgen,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// verify runs the credential through the verifier registered for its type.
func (s *Service) verify(ctx context.Context, credential types.Credential) (*types.VerifiedIdentity, error) {
	verifier, err := s.registry.VerifierFor(credential.Type)
	if err != nil {
		return nil, err
	}

	identity, err := verifier.VerifyCredential(ctx, credential.Token)
	if err != nil {
		s.logger.Debugf("credential verification failed: %v", err)
		return nil, fmt.Errorf("%w: %v", types.ErrVerificationFailed, err)
	}
	return identity, nil
}

func (s *Service) ResolveActiveUser(ctx context.Context, credential types.Credential) (*types.User, *types.VerifiedIdentity, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.ResolveActiveUser")
	defer span.End()

	identity, err := s.verify(ctx, credential)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.UserForIdentity(ctx, identity)
	if err != nil {
		return nil, nil, err
	}
	return user, identity, nil
}

func (s *Service) UserForIdentity(ctx context.Context, identity *types.VerifiedIdentity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.UserForIdentity")
	defer span.End()

	provider, err := s.storage.GetUserProvider(ctx, identity.Provider, identity.ExternalID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.storage.TouchUserProvider(ctx, provider.ID); err != nil {
		// last_used_at is advisory, a failed touch never blocks the caller
		s.logger.Warnf("failed to touch user provider %s: %v", provider.ID, err)
	}

	user, err := s.storage.GetUserByID(ctx, provider.UserID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}
	if user.Status != types.StatusActive {
		return nil, types.ErrUserNotFound
	}

	return user, nil
}

// EnsureUser is a two phase operation: a create-if-absent phase followed by a
// canonical fetch. When two logins for the same identity race, exactly one
// create wins; the loser refetches. A second consecutive absence means the
// store is misbehaving and is reported as ErrUserCreationRace.
func (s *Service) EnsureUser(ctx context.Context, identity *types.VerifiedIdentity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.EnsureUser")
	defer span.End()

	for attempt := 0; attempt < 2; attempt++ {
		provider, err := s.storage.GetUserProvider(ctx, identity.Provider, identity.ExternalID)
		if err == nil {
			if err := s.storage.TouchUserProvider(ctx, provider.ID); err != nil {
				s.logger.Warnf("failed to touch user provider %s: %v", provider.ID, err)
			}
			return s.storage.GetUserByID(ctx, provider.UserID)
		}
		if !storage.IsNotFound(err) {
			return nil, err
		}

		if err := s.createUser(ctx, identity); err != nil {
			if storage.IsDuplicateKey(err) {
				// lost the race, the winner's rows are fetched next pass
				continue
			}
			return nil, err
		}
	}

	return nil, types.ErrUserCreationRace
}

// createUser writes the user, its provider link, a default tenant and the
// admin membership tying them together.
func (s *Service) createUser(ctx context.Context, identity *types.VerifiedIdentity) error {
	user, err := s.storage.CreateUser(ctx, &types.User{
		ID:           s.idgen.NewID(),
		MaxTenants:   types.DefaultMaxTenants,
		Status:       types.StatusActive,
		StatusReason: "just created",
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.storage.CreateUserProvider(ctx, &types.UserProvider{
		UserID:         user.ID,
		ProviderUserID: identity.ExternalID,
		Provider:       identity.Provider,
		QueryEmail:     identity.Email,
		CleanEmail:     types.CanonicalEmail(identity.Email),
		QueryNick:      identity.Nick,
		CleanNick:      types.CanonicalNick(identity.Nick),
		Params:         identity.Params,
	}); err != nil {
		return fmt.Errorf("failed to link user provider: %w", err)
	}

	tenantID := s.idgen.NewID()
	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{
		ID:             tenantID,
		Name:           fmt.Sprintf("my-tenant[%s]", tenantID),
		OwnerUserID:    user.ID,
		MaxAdminUsers:  types.DefaultMaxAdminUsers,
		MaxMemberUsers: types.DefaultMaxMemberUsers,
		MaxInvites:     types.DefaultMaxInvites,
		MaxLedgers:     types.DefaultMaxLedgers,
		Status:         types.StatusActive,
	})
	if err != nil {
		return fmt.Errorf("failed to create default tenant: %w", err)
	}

	if _, err := s.storage.AddTenantMember(ctx, &types.TenantMember{
		TenantID: tenant.ID,
		UserID:   user.ID,
		Name:     identity.DisplayName(),
		Role:     types.RoleAdmin,
		Default:  true,
		Status:   types.StatusActive,
	}); err != nil {
		return fmt.Errorf("failed to attach default tenant: %w", err)
	}

	s.logger.Infof("created user %s with default tenant %s", user.ID, tenant.ID)
	return nil
}

func (s *Service) FindUser(ctx context.Context, q types.UserQuery) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.FindUser")
	defer span.End()

	if q.IsEmpty() {
		return nil, types.ErrInvalidQuery
	}

	return s.storage.FindUserIDs(ctx, q.Canonical())
}
