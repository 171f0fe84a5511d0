// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/ledger-service/internal/db"
	"github.com/canonical/ledger-service/internal/id"
	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring"
	"github.com/canonical/ledger-service/internal/storage"
	"github.com/canonical/ledger-service/internal/tracing"
	"github.com/canonical/ledger-service/pkg/authentication"
	"github.com/canonical/ledger-service/pkg/identity"
	"github.com/canonical/ledger-service/pkg/invite"
	"github.com/canonical/ledger-service/pkg/ledger"
	"github.com/canonical/ledger-service/pkg/metrics"
	"github.com/canonical/ledger-service/pkg/roles"
	"github.com/canonical/ledger-service/pkg/status"
	"github.com/canonical/ledger-service/pkg/tenant"
	"github.com/canonical/ledger-service/pkg/token"
	"github.com/canonical/ledger-service/pkg/user"
)

// Config carries the non-infrastructure knobs of the API surface.
type Config struct {
	InviteLifetime time.Duration
	SessionToken   token.Config
}

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	registry authentication.RegistryInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (http.Handler, error) {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	idgen := id.NewGenerator()
	rolesEngine := roles.NewEngine(s, tracer, monitor, logger)
	identityService := identity.NewService(s, registry, idgen, tracer, monitor, logger)
	tenantService := tenant.NewService(s, rolesEngine, idgen, tracer, monitor, logger)
	ledgerService := ledger.NewService(s, rolesEngine, idgen, tracer, monitor, logger)
	inviteService := invite.NewService(s, rolesEngine, identityService, tenantService, ledgerService, cfg.InviteLifetime, tracer, monitor, logger)
	tokenService, err := token.NewService(tenantService, ledgerService, cfg.SessionToken, tracer, monitor, logger)
	if err != nil {
		return nil, err
	}

	// everything under /api/v0 except metrics and status requires a
	// verified credential and runs inside one transaction per request
	api := chi.NewMux()
	api.Use(authentication.NewMiddleware(registry, tracer, monitor, logger).Authenticate())
	api.Use(db.TransactionMiddleware(dbClient, logger))

	user.NewAPI(identityService, tenantService, tokenService, logger).RegisterEndpoints(api)
	tenant.NewAPI(tenantService, identityService, logger).RegisterEndpoints(api)
	ledger.NewAPI(ledgerService, identityService, logger).RegisterEndpoints(api)
	invite.NewAPI(inviteService, identityService, logger).RegisterEndpoints(api)

	router.Mount("/", api)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router), nil
}
