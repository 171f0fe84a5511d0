// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/ledger-service/internal/config"
	"github.com/canonical/ledger-service/internal/db"
	"github.com/canonical/ledger-service/internal/logging"
	"github.com/canonical/ledger-service/internal/monitoring/prometheus"
	"github.com/canonical/ledger-service/internal/storage"
	"github.com/canonical/ledger-service/internal/tracing"
	"github.com/canonical/ledger-service/pkg/authentication"
	"github.com/canonical/ledger-service/pkg/token"
	"github.com/canonical/ledger-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("ledger-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	registry := authentication.NewRegistry(logger)
	if specs.OIDCJwksURL != "" {
		// issuers without a well-known endpoint, verify against the key set directly
		verifier, err := authentication.NewProviderWithJWKS(context.Background(), specs.OIDCIssuer, specs.OIDCJwksURL)
		if err != nil {
			return fmt.Errorf("failed to set up OIDC key set: %v", err)
		}
		registry.Register(
			authentication.DefaultCredentialType,
			authentication.NewJWTVerifierDirect(verifier, authentication.DefaultCredentialType, authentication.DefaultCredentialType, tracer, monitor, logger),
		)
	} else {
		provider, err := authentication.NewProvider(context.Background(), specs.OIDCIssuer)
		if err != nil {
			return fmt.Errorf("failed to set up OIDC provider: %v", err)
		}
		registry.Register(
			authentication.DefaultCredentialType,
			authentication.NewJWTVerifier(provider, authentication.DefaultCredentialType, authentication.DefaultCredentialType, tracer, monitor, logger),
		)
	}

	router, err := web.NewRouter(
		s,
		dbClient,
		registry,
		web.Config{
			InviteLifetime: specs.InviteLifetime,
			SessionToken: token.Config{
				SecretPEM:  specs.SessionTokenSecret,
				Issuer:     specs.SessionTokenIssuer,
				Audience:   specs.SessionTokenAudience,
				ValidForMS: specs.SessionTokenValidFor,
			},
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to build router: %v", err)
	}

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
