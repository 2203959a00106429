package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nakamauwu/hirechat/cockroach"
	"github.com/nakamauwu/hirechat/cockroach/migrator"
	"github.com/nakamauwu/hirechat/config"
	"github.com/nakamauwu/hirechat/realtime"
	"github.com/nakamauwu/hirechat/service"
	httptransport "github.com/nakamauwu/hirechat/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	errLogger := slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	}))
	infoLogger := slog.New(charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
	}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := pgxpool.New(ctx, cfg.CockroachURL)
	if err != nil {
		return fmt.Errorf("open cockroach connection pool: %w", err)
	}

	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping cockroach: %w", err)
	}

	migrationStart := time.Now()
	infoLogger.Info("starting cockroach migrations")

	if err := migrator.Migrate(ctx, dbPool, cockroach.MigrationsFS); err != nil {
		return fmt.Errorf("migrate cockroach schema: %w", err)
	}

	infoLogger.Info("finished cockroach migrations", "took", time.Since(migrationStart))

	verifier, err := newVerifier(cfg)
	if err != nil {
		return err
	}

	broker, err := newBroker(ctx, cfg)
	if err != nil {
		return err
	}

	defer broker.Close()

	sink, err := newActivitySink(cfg, infoLogger)
	if err != nil {
		return err
	}

	defer sink.Close()

	// The gateway authorizes rooms through the service
	// and the service publishes through the gateway.
	var svc *service.Service
	gateway := realtime.NewGateway(realtime.Config{
		Verifier: verifier,
		Authorizer: realtime.AuthorizerFunc(func(ctx context.Context, conversationID string) error {
			return svc.AuthorizeRoom(ctx, conversationID)
		}),
		Broker:         broker,
		Logger:         errLogger,
		AllowedOrigins: cfg.Origins(),
	})

	svc = service.New(&service.Config{
		Cockroach:         cockroach.New(dbPool),
		ActivitySink:      sink,
		Publisher:         gateway,
		BaseCtx:           context.WithoutCancel(ctx),
		BackgroundTimeout: cfg.BackgroundTimeout,
	})

	go func() {
		for err := range svc.Errs() {
			errLogger.Error("service error", "err", err)
		}
	}()

	if err := gateway.Start(ctx); err != nil {
		return fmt.Errorf("start realtime gateway: %w", err)
	}

	go logBackfillRuns(svc.StartBackfillSchedule(ctx, cfg.BackfillInterval), infoLogger, errLogger)

	handler := &httptransport.Handler{
		Service:     svc,
		Verifier:    verifier,
		Gateway:     gateway,
		ErrorLogger: errLogger,
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	srvErrs := make(chan error, 1)
	go func() {
		infoLogger.Info("starting hirechat server", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
		srvErrs <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErrs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start hirechat server: %w", err)
		}
	case <-ctx.Done():
		infoLogger.Info("shutting down hirechat server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	gateway.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errLogger.Error("shutdown hirechat server", "err", err)
	}

	return svc.Close()
}
