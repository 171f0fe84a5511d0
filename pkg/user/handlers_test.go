// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ledger-service/internal/types"
	"github.com/canonical/ledger-service/pkg/authentication"
	"github.com/canonical/ledger-service/pkg/identity"
)

//go:generate mockgen -build_flags=--mod=mod -package user -destination ./mock_user.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package user -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

type apiMocks struct {
	identity *identity.MockServiceInterface
	tenants  *MockTenantsInterface
	tokens   *MockTokensInterface
}

func newTestAPI(t *testing.T) (*API, *apiMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &apiMocks{
		identity: identity.NewMockServiceInterface(ctrl),
		tenants:  NewMockTenantsInterface(ctrl),
		tokens:   NewMockTokensInterface(ctrl),
	}
	return NewAPI(m.identity, m.tenants, m.tokens, NewMockLoggerInterface(ctrl)), m, ctrl
}

func doRequest(api *API, verified *types.VerifiedIdentity, path, body string) *httptest.ResponseRecorder {
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if verified != nil {
		req = req.WithContext(authentication.WithIdentity(req.Context(), verified))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_EnsureUser(t *testing.T) {
	verified := &types.VerifiedIdentity{Type: "oidc", ExternalID: "ext-1", Email: "john@example.com"}

	t.Run("no verified identity", func(t *testing.T) {
		api, _, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		rec := doRequest(api, nil, "/api/v0/users/ensure", "{}")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("user with tenants returned", func(t *testing.T) {
		api, m, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		user := &types.User{ID: "user-1", Status: types.StatusActive}
		m.identity.EXPECT().EnsureUser(gomock.Any(), verified).Return(user, nil)
		m.tenants.EXPECT().ListTenantsByUser(gomock.Any(), "user-1").Return([]*types.UserTenant{
			{TenantID: "tenant-1", Role: types.RoleAdmin, Default: true},
		}, nil)

		rec := doRequest(api, verified, "/api/v0/users/ensure", "{}")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		payload := struct {
			User    *types.User         `json:"user"`
			Tenants []*types.UserTenant `json:"tenants"`
		}{}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if payload.User.ID != "user-1" || len(payload.Tenants) != 1 {
			t.Errorf("unexpected payload: %+v", payload)
		}
	})

	t.Run("creation race maps to 500", func(t *testing.T) {
		api, m, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		m.identity.EXPECT().EnsureUser(gomock.Any(), verified).Return(nil, types.ErrUserCreationRace)

		rec := doRequest(api, verified, "/api/v0/users/ensure", "{}")
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
	})
}

func TestAPI_FindUser(t *testing.T) {
	verified := &types.VerifiedIdentity{Type: "oidc", ExternalID: "ext-1"}
	user := &types.User{ID: "user-1", Status: types.StatusActive}

	t.Run("empty query rejected", func(t *testing.T) {
		api, m, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		m.identity.EXPECT().UserForIdentity(gomock.Any(), verified).Return(user, nil)
		m.identity.EXPECT().FindUser(gomock.Any(), types.UserQuery{}).Return(nil, types.ErrInvalidQuery)

		rec := doRequest(api, verified, "/api/v0/users/find", `{"query":{}}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("matches returned", func(t *testing.T) {
		api, m, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		m.identity.EXPECT().UserForIdentity(gomock.Any(), verified).Return(user, nil)
		m.identity.EXPECT().FindUser(gomock.Any(), types.UserQuery{ByEmail: "a@b.com"}).Return([]string{"user-2"}, nil)

		rec := doRequest(api, verified, "/api/v0/users/find", `{"query":{"by_email":"a@b.com"}}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		payload := struct {
			Results []string `json:"results"`
		}{}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(payload.Results) != 1 || payload.Results[0] != "user-2" {
			t.Errorf("unexpected results: %+v", payload.Results)
		}
	})
}

func TestAPI_SessionToken(t *testing.T) {
	verified := &types.VerifiedIdentity{Type: "oidc", ExternalID: "ext-1"}
	user := &types.User{ID: "user-1", Status: types.StatusActive}

	t.Run("unknown user", func(t *testing.T) {
		api, m, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		m.identity.EXPECT().UserForIdentity(gomock.Any(), verified).Return(nil, types.ErrUserNotFound)

		rec := doRequest(api, verified, "/api/v0/users/token", "{}")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("token issued", func(t *testing.T) {
		api, m, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		m.identity.EXPECT().UserForIdentity(gomock.Any(), verified).Return(user, nil)
		m.tokens.EXPECT().IssueSessionToken(gomock.Any(), "user-1").Return("signed-token", nil)

		rec := doRequest(api, verified, "/api/v0/users/token", "{}")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "signed-token") {
			t.Errorf("expected the token in the response, got %s", rec.Body.String())
		}
	})
}
