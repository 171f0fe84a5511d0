// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ledger-service/internal/storage"
	"github.com/canonical/ledger-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_identity.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_authentication.go -source=../authentication/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_id.go -source=../../internal/id/id.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	registry *MockRegistryInterface
	verifier *MockCredentialVerifierInterface
	idgen    *MockGeneratorInterface
	logger   *MockLoggerInterface
}

func newTestService(t *testing.T) (*Service, *serviceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		registry: NewMockRegistryInterface(ctrl),
		verifier: NewMockCredentialVerifierInterface(ctrl),
		idgen:    NewMockGeneratorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()

	return NewService(m.storage, m.registry, m.idgen, mockTracer, mockMonitor, m.logger), m, ctrl
}

var testCredential = types.Credential{Type: "oidc", Token: "raw-token"}

func TestService_ResolveActiveUser(t *testing.T) {
	identity := &types.VerifiedIdentity{Type: "oidc", ExternalID: "ext-1", Provider: "acme"}

	t.Run("unknown credential type", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.registry.EXPECT().VerifierFor("bogus").Return(nil, types.ErrInvalidAuthType)

		_, _, err := s.ResolveActiveUser(context.Background(), types.Credential{Type: "bogus", Token: "raw-token"})
		if !errors.Is(err, types.ErrInvalidAuthType) {
			t.Errorf("expected ErrInvalidAuthType, got %v", err)
		}
	})

	t.Run("verification failure", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.registry.EXPECT().VerifierFor("oidc").Return(m.verifier, nil)
		m.verifier.EXPECT().VerifyCredential(gomock.Any(), "raw-token").Return(nil, errors.New("bad signature"))

		_, _, err := s.ResolveActiveUser(context.Background(), testCredential)
		if !errors.Is(err, types.ErrVerificationFailed) {
			t.Errorf("expected ErrVerificationFailed, got %v", err)
		}
	})

	t.Run("active user", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.registry.EXPECT().VerifierFor("oidc").Return(m.verifier, nil)
		m.verifier.EXPECT().VerifyCredential(gomock.Any(), "raw-token").Return(identity, nil)
		m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(&types.UserProvider{ID: "link-1", UserID: "user-1"}, nil)
		m.storage.EXPECT().TouchUserProvider(gomock.Any(), "link-1").Return(nil)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Status: types.StatusActive}, nil)

		user, gotIdentity, err := s.ResolveActiveUser(context.Background(), testCredential)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "user-1" {
			t.Errorf("expected user-1, got %s", user.ID)
		}
		if gotIdentity != identity {
			t.Errorf("expected verified identity to be returned")
		}
	})
}

func TestService_UserForIdentity(t *testing.T) {
	identity := &types.VerifiedIdentity{Type: "oidc", ExternalID: "ext-1", Provider: "acme"}

	t.Run("no provider link", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(nil, storage.ErrNotFound)

		_, err := s.UserForIdentity(context.Background(), identity)
		if !errors.Is(err, types.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(&types.UserProvider{ID: "link-1", UserID: "user-1"}, nil)
		m.storage.EXPECT().TouchUserProvider(gomock.Any(), "link-1").Return(nil)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Status: "disabled"}, nil)

		_, err := s.UserForIdentity(context.Background(), identity)
		if !errors.Is(err, types.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("failed touch does not block", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(&types.UserProvider{ID: "link-1", UserID: "user-1"}, nil)
		m.storage.EXPECT().TouchUserProvider(gomock.Any(), "link-1").Return(errors.New("db error"))
		m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Status: types.StatusActive}, nil)

		user, err := s.UserForIdentity(context.Background(), identity)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "user-1" {
			t.Errorf("expected user-1, got %s", user.ID)
		}
	})
}

func TestService_EnsureUser_ExistingUser(t *testing.T) {
	s, m, ctrl := newTestService(t)
	defer ctrl.Finish()

	identity := &types.VerifiedIdentity{Type: "oidc", ExternalID: "ext-1", Provider: "acme"}
	m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(&types.UserProvider{ID: "link-1", UserID: "user-1"}, nil)
	m.storage.EXPECT().TouchUserProvider(gomock.Any(), "link-1").Return(nil)
	m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Status: types.StatusActive}, nil)

	user, err := s.EnsureUser(context.Background(), identity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("expected user-1, got %s", user.ID)
	}
}

func TestService_EnsureUser_FirstLogin(t *testing.T) {
	s, m, ctrl := newTestService(t)
	defer ctrl.Finish()

	identity := &types.VerifiedIdentity{
		Type:       "oidc",
		ExternalID: "ext-1",
		Provider:   "acme",
		Email:      "John.Doe+work@Example.com",
		Nick:       "JDoe",
	}

	m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(nil, storage.ErrNotFound)

	m.idgen.EXPECT().NewID().Return("user-1")
	m.idgen.EXPECT().NewID().Return("tenant-1")

	m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *types.User) (*types.User, error) {
			if u.ID != "user-1" || u.MaxTenants != types.DefaultMaxTenants || u.Status != types.StatusActive {
				t.Errorf("unexpected user: %+v", u)
			}
			return u, nil
		})
	m.storage.EXPECT().CreateUserProvider(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *types.UserProvider) (*types.UserProvider, error) {
			if p.CleanEmail != "johndoe@example.com" {
				t.Errorf("expected canonical email, got %s", p.CleanEmail)
			}
			if p.CleanNick != "jdoe" {
				t.Errorf("expected canonical nick, got %s", p.CleanNick)
			}
			if p.QueryEmail != identity.Email || p.QueryNick != identity.Nick {
				t.Errorf("expected raw query fields preserved: %+v", p)
			}
			return p, nil
		})
	m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			if tenant.Name != "my-tenant[tenant-1]" {
				t.Errorf("unexpected tenant name %s", tenant.Name)
			}
			if tenant.OwnerUserID != "user-1" {
				t.Errorf("unexpected tenant owner %s", tenant.OwnerUserID)
			}
			if tenant.MaxAdminUsers != types.DefaultMaxAdminUsers || tenant.MaxMemberUsers != types.DefaultMaxMemberUsers {
				t.Errorf("unexpected tenant quotas: %+v", tenant)
			}
			return tenant, nil
		})
	m.storage.EXPECT().AddTenantMember(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, member *types.TenantMember) (*types.TenantMember, error) {
			if member.Role != types.RoleAdmin || !member.Default {
				t.Errorf("expected default admin membership, got %+v", member)
			}
			if member.Name != identity.Email {
				t.Errorf("expected display name from email, got %s", member.Name)
			}
			return member, nil
		})

	// fetch-canonical phase
	m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(&types.UserProvider{ID: "link-1", UserID: "user-1"}, nil)
	m.storage.EXPECT().TouchUserProvider(gomock.Any(), "link-1").Return(nil)
	m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Status: types.StatusActive}, nil)

	user, err := s.EnsureUser(context.Background(), identity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("expected user-1, got %s", user.ID)
	}
}

func TestService_EnsureUser_LostRace(t *testing.T) {
	s, m, ctrl := newTestService(t)
	defer ctrl.Finish()

	identity := &types.VerifiedIdentity{Type: "oidc", ExternalID: "ext-1", Provider: "acme"}

	m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(nil, storage.ErrNotFound)
	m.idgen.EXPECT().NewID().Return("user-1")
	m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

	// the concurrent winner's rows show up on the retry
	m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(&types.UserProvider{ID: "link-1", UserID: "user-2"}, nil)
	m.storage.EXPECT().TouchUserProvider(gomock.Any(), "link-1").Return(nil)
	m.storage.EXPECT().GetUserByID(gomock.Any(), "user-2").Return(&types.User{ID: "user-2", Status: types.StatusActive}, nil)

	user, err := s.EnsureUser(context.Background(), identity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-2" {
		t.Errorf("expected winner's user-2, got %s", user.ID)
	}
}

func TestService_EnsureUser_CreationRace(t *testing.T) {
	s, m, ctrl := newTestService(t)
	defer ctrl.Finish()

	identity := &types.VerifiedIdentity{Type: "oidc", ExternalID: "ext-1", Provider: "acme"}

	m.storage.EXPECT().GetUserProvider(gomock.Any(), "acme", "ext-1").Return(nil, storage.ErrNotFound).Times(2)
	m.idgen.EXPECT().NewID().Return("user-1").Times(2)
	m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey).Times(2)

	_, err := s.EnsureUser(context.Background(), identity)
	if !errors.Is(err, types.ErrUserCreationRace) {
		t.Errorf("expected ErrUserCreationRace, got %v", err)
	}
}

func TestService_FindUser(t *testing.T) {
	t.Run("empty query rejected", func(t *testing.T) {
		s, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		_, err := s.FindUser(context.Background(), types.UserQuery{})
		if !errors.Is(err, types.ErrInvalidQuery) {
			t.Errorf("expected ErrInvalidQuery, got %v", err)
		}
	})

	t.Run("query is canonicalized", func(t *testing.T) {
		s, m, ctrl := newTestService(t)
		defer ctrl.Finish()

		m.storage.EXPECT().FindUserIDs(gomock.Any(), types.UserQuery{ByEmail: "johndoe@example.com"}).Return([]string{"user-9"}, nil)

		ids, err := s.FindUser(context.Background(), types.UserQuery{ByEmail: "John.Doe+x@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 1 || ids[0] != "user-9" {
			t.Errorf("expected [user-9], got %v", ids)
		}
	})
}
