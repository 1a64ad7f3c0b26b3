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
	"strings"
	"syscall"
	"time"

	"github.com/canonical/society-gate/internal/config"
	"github.com/canonical/society-gate/internal/db"
	"github.com/canonical/society-gate/internal/directory"
	"github.com/canonical/society-gate/internal/identity"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring/prometheus"
	"github.com/canonical/society-gate/internal/routing"
	"github.com/canonical/society-gate/internal/selection"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/pkg/gate"
	"github.com/canonical/society-gate/pkg/onboarding"
	"github.com/canonical/society-gate/pkg/resolver"
	"github.com/canonical/society-gate/pkg/web"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
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

	monitor := prometheus.NewMonitor("society-gate", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	// An invalid configuration pins the resolver in its error phase but
	// must not abort the process, the shell still renders.
	configErr := specs.Validate()
	if configErr != nil {
		logger.Errorf("configuration incomplete: %v", configErr)
	}

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
		if configErr == nil {
			configErr = fmt.Errorf("failed to create database client: %v", err)
		}
		logger.Errorf("failed to create database client: %v", err)
	} else {
		defer dbClient.Close()
	}
	dir := directory.NewDirectory(dbClient, tracer, monitor, logger)

	identityClient := identity.NewClient(specs.IdentityPublicURL, tracer, monitor, logger)
	watcher := identity.NewWatcher(identityClient, specs.SessionPollInterval, logger)

	cachePath := specs.SelectionCachePath
	if cachePath == "" {
		cachePath = selection.DefaultPath()
	}
	cache := selection.NewCache(cachePath, logger)

	var orchestrator onboarding.Orchestrator
	switch specs.OnboardingMode {
	case onboarding.ModeDeferred:
		orchestrator = onboarding.NewDeferred(dir, identityClient, deferredRedirect(specs.SiteURL), tracer, monitor, logger)
	default:
		orchestrator = onboarding.NewDirect(dir, tracer, monitor, logger)
	}
	seasons := onboarding.NewSeasonService(dir, tracer, monitor, logger)

	resolverService := resolver.NewService(dir, cache, orchestrator, specs.OnboardingMode, configErr, tracer, monitor, logger)

	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	go resolverService.Run(runCtx)

	// The watcher reports transitions relative to a baseline, so the seed
	// observation doubles as that baseline; a sign-in landing right after
	// the seed read still surfaces on the channel.
	seed, err := identityClient.CurrentSession(runCtx)
	if err != nil {
		logger.Debugf("initial session read failed: %v", err)
	}
	sessions, unsubscribe := watcher.Subscribe(seed)
	defer unsubscribe()
	go func() {
		resolverService.SetSession(seed)
		for session := range sessions {
			resolverService.SetSession(session)
		}
	}()

	gateAPI := gate.NewAPI(
		resolverService,
		identityClient,
		orchestrator,
		seasons,
		routing.NewResolver(specs.BasePath),
		specs.SiteURL,
		specs.AdminSignInEnabled,
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(gateAPI, tracer, monitor, logger)
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

// deferredRedirect points magic links back at the deployed site with the
// onboarding marker set, the signup continuation depends on it.
func deferredRedirect(siteURL string) string {
	sep := "?"
	if strings.Contains(siteURL, "?") {
		sep = "&"
	}
	return siteURL + sep + routing.OnboardParam + "=1"
}
