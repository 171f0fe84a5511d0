// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package token

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/ledger-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package token -destination ./mock_token.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package token -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package token -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package token -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func testKeyPEM(t *testing.T) (string, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("failed to marshal key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})), key
}

func newTestService(t *testing.T, cfg Config) (*Service, *MockTenantsInterface, *MockLedgersInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	tenants := NewMockTenantsInterface(ctrl)
	ledgers := NewMockLedgersInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()

	svc, err := NewService(tenants, ledgers, cfg, mockTracer, mockMonitor, mockLogger)
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	return svc, tenants, ledgers, ctrl
}

func TestNewService_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewService(
		NewMockTenantsInterface(ctrl),
		NewMockLedgersInterface(ctrl),
		Config{SecretPEM: "not a key"},
		NewMockTracingInterface(ctrl),
		NewMockMonitorInterface(ctrl),
		NewMockLoggerInterface(ctrl),
	)
	if err == nil {
		t.Fatal("expected an error for a malformed key")
	}
}

func TestService_IssueSessionToken(t *testing.T) {
	secret, key := testKeyPEM(t)

	svc, tenants, ledgers, ctrl := newTestService(t, Config{
		SecretPEM:  secret,
		Issuer:     "LEDGER_CLOUD",
		Audience:   "PUBLIC",
		ValidForMS: 3600000,
	})
	defer ctrl.Finish()

	tenants.EXPECT().ListTenantsByUser(gomock.Any(), "user-1").Return([]*types.UserTenant{
		{TenantID: "tenant-1", Role: types.RoleAdmin},
		{TenantID: "tenant-2", Role: types.RoleMember},
	}, nil)
	ledgers.EXPECT().ListLedgersByUser(gomock.Any(), "user-1", nil).Return([]*types.UserLedger{
		{LedgerID: "ledger-1", Role: types.RoleMember, Right: types.RightWrite},
		{LedgerID: "ledger-2", Role: types.RoleMember},
	}, nil)

	signed, err := svc.IssueSessionToken(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := sessionClaims{}
	parsed, err := jwt.ParseWithClaims(signed, &claims, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("expected a valid token")
	}

	if claims.UserID != "user-1" {
		t.Errorf("unexpected userId claim: %s", claims.UserID)
	}
	if claims.Issuer != "LEDGER_CLOUD" || len(claims.Audience) != 1 || claims.Audience[0] != "PUBLIC" {
		t.Errorf("unexpected issuer/audience: %s %v", claims.Issuer, claims.Audience)
	}
	if len(claims.Tenants) != 2 || claims.Tenants[0].ID != "tenant-1" || claims.Tenants[0].Role != types.RoleAdmin {
		t.Errorf("unexpected tenants claim: %+v", claims.Tenants)
	}
	// ledger-2 carries no right and must not be claimed
	if len(claims.Ledgers) != 1 || claims.Ledgers[0].ID != "ledger-1" || claims.Ledgers[0].Right != types.RightWrite {
		t.Errorf("unexpected ledgers claim: %+v", claims.Ledgers)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("expected a 1h token, got %v", ttl)
	}
}

func TestService_ValidForClamped(t *testing.T) {
	secret, _ := testKeyPEM(t)

	for _, validFor := range []int64{-1, 7200000} {
		svc, _, _, ctrl := newTestService(t, Config{SecretPEM: secret, ValidForMS: validFor})
		if svc.validFor != time.Hour {
			t.Errorf("validFor %d: expected clamp to 1h, got %v", validFor, svc.validFor)
		}
		ctrl.Finish()
	}
}
