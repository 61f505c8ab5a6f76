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

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/dns-tenant-bot/internal/authz"
	"github.com/canonical/dns-tenant-bot/internal/cloudflare"
	"github.com/canonical/dns-tenant-bot/internal/config"
	"github.com/canonical/dns-tenant-bot/internal/db"
	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring/prometheus"
	"github.com/canonical/dns-tenant-bot/internal/storage"
	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
	"github.com/canonical/dns-tenant-bot/pkg/bot"
	"github.com/canonical/dns-tenant-bot/pkg/dns"
	"github.com/canonical/dns-tenant-bot/pkg/tenants"
	"github.com/canonical/dns-tenant-bot/pkg/tunnels"
	"github.com/canonical/dns-tenant-bot/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the bot and the web server",
	Long:  `Launch the Telegram dispatcher and the observability endpoints, configuration is sourced from the environment`,
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
	defer logger.Sync()

	monitor := prometheus.NewMonitor("dns-tenant-bot", logger)
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

	authorizer := authz.NewAuthorizer(s, specs.SuperAdminID, tracer, monitor, logger)

	gateway := cloudflare.NewClient(specs.CloudflareAPIURL, specs.GatewayTimeout, tracer, monitor, logger)
	cache := tenantcache.NewCache(s, gateway, tracer, monitor, logger)

	tenantService := tenants.NewService(s, authorizer, cache, tracer, monitor, logger)
	dnsService := dns.NewService(cache, gateway, tracer, monitor, logger)
	tunnelService := tunnels.NewService(cache, gateway, tracer, monitor, logger)

	api, err := tgbotapi.NewBotAPI(specs.TelegramToken)
	if err != nil {
		return fmt.Errorf("failed to reach the bot API: %v", err)
	}
	api.Debug = specs.Debug

	dispatcher := bot.NewService(
		api,
		authorizer,
		tenantService,
		dnsService,
		tunnelService,
		cache,
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(tracer, monitor, logger)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	botCtx, botCancel := context.WithCancel(context.Background())
	defer botCancel()

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("Starting dispatcher as %s", api.Self.UserName)
		if err := dispatcher.Run(botCtx); err != nil && !errors.Is(err, context.Canceled) {
			serverError = fmt.Errorf("dispatcher error: %w", err)
			c <- os.Interrupt
		}
	}()

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	botCancel()

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
