// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package token issues the ES256-signed cloud session tokens clients present
// to downstream data-plane services.
package token

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring"
	"github.com/canonical/ledger-service/internal/tracing"
	"github.com/canonical/ledger-service/internal/types"
)

const maxValidForMS = 3600000

var _ ServiceInterface = (*Service)(nil)

// Config carries the signing material and claim parameters for the issuer.
type Config struct {
	// SecretPEM is the ES256 private key in PEM form.
	SecretPEM  string
	Issuer     string
	Audience   string
	ValidForMS int64
}

type tenantClaim struct {
	ID   string     `json:"id"`
	Role types.Role `json:"role"`
}

type ledgerClaim struct {
	ID    string      `json:"id"`
	Role  types.Role  `json:"role"`
	Right types.Right `json:"right"`
}

type sessionClaims struct {
	UserID  string        `json:"userId"`
	Tenants []tenantClaim `json:"tenants"`
	Ledgers []ledgerClaim `json:"ledgers"`
	jwt.RegisteredClaims
}

type Service struct {
	tenants  TenantsInterface
	ledgers  LedgersInterface
	key      *ecdsa.PrivateKey
	issuer   string
	audience string
	validFor time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	tenants TenantsInterface,
	ledgers LedgersInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Service, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(cfg.SecretPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token key: %w", err)
	}

	validForMS := cfg.ValidForMS
	if validForMS < 0 || validForMS > maxValidForMS {
		validForMS = maxValidForMS
	}

	return &Service{
		tenants:  tenants,
		ledgers:  ledgers,
		key:      key,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		validFor: time.Duration(validForMS) * time.Millisecond,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}, nil
}

func (s *Service) IssueSessionToken(ctx context.Context, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "token.Service.IssueSessionToken")
	defer span.End()

	userTenants, err := s.tenants.ListTenantsByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	userLedgers, err := s.ledgers.ListLedgersByUser(ctx, userID, nil)
	if err != nil {
		return "", err
	}

	tenants := make([]tenantClaim, 0, len(userTenants))
	for _, t := range userTenants {
		tenants = append(tenants, tenantClaim{ID: t.TenantID, Role: t.Role})
	}
	ledgers := make([]ledgerClaim, 0, len(userLedgers))
	for _, l := range userLedgers {
		// a ledger the caller holds no right on carries no capability
		if l.Right == "" {
			continue
		}
		ledgers = append(ledgers, ledgerClaim{ID: l.LedgerID, Role: l.Role, Right: l.Right})
	}

	now := time.Now().UTC()
	claims := sessionClaims{
		UserID:  userID,
		Tenants: tenants,
		Ledgers: ledgers,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validFor)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
