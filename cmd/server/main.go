package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"authgate/internal/authz"
	memorystore "authgate/internal/authz/store/memory"
	postgresstore "authgate/internal/authz/store/postgres"
	redisstore "authgate/internal/authz/store/redis"
	"authgate/internal/gate"
	"authgate/internal/identity"
	"authgate/internal/identity/verifier"
	"authgate/internal/platform/audit"
	"authgate/internal/platform/config"
	"authgate/internal/platform/httpserver"
	"authgate/internal/platform/logger"
	"authgate/internal/platform/metrics"
	"authgate/internal/platform/postgres"
	"authgate/internal/platform/redis"
	httptransport "authgate/internal/transport/http"
)

// main wires the gate's collaborators from the environment and keeps the server
// lifecycle small. Decision logic lives in internal/identity, internal/authz, and
// internal/gate.
func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := config.FromEnv()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auditor, err := audit.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AuditTopic, log)
	if err != nil {
		return err
	}

	store, cleanup, err := buildStore(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	resolver, err := identity.NewResolver(
		identity.ContextProvider{},
		verifier.NewJWTVerifier(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience),
		identity.WithLogger(log),
		identity.WithMetrics(m),
	)
	if err != nil {
		return err
	}

	checkerOpts := []authz.Option{authz.WithLogger(log), authz.WithMetrics(m)}
	if auditor != nil {
		checkerOpts = append(checkerOpts, authz.WithAuditPublisher(auditor))
	}
	checker, err := authz.NewChecker(authz.NewStaticSet(cfg.StaticAllowSet...), store, checkerOpts...)
	if err != nil {
		return err
	}

	gateOpts := []gate.Option{gate.WithLogger(log), gate.WithMetrics(m)}
	if auditor != nil {
		gateOpts = append(gateOpts, gate.WithAuditPublisher(auditor))
	}
	authGate, err := gate.New(resolver, checker, gateOpts...)
	if err != nil {
		return err
	}

	handler := httptransport.NewHandler(log)
	router := handler.NewRouter(httptransport.RouterConfig{
		Authorizer:           authGate,
		TrustedSubjectHeader: cfg.TrustedSubjectHeader,
		TrustedIssuer:        cfg.TrustedIssuer,
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting authgate", "addr", cfg.Addr, "static_subjects", len(cfg.StaticAllowSet))

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if auditor != nil {
			return auditor.Close(shutdownCtx)
		}
		return nil
	})
	return group.Wait()
}

// buildStore selects the durable allow-list store: Postgres when configured, else
// Redis, else the in-memory store for local development.
func buildStore(cfg config.Server, log *slog.Logger) (authz.AllowlistStore, func(), error) {
	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if db != nil {
		return postgresstore.New(db), func() { db.Close() }, nil
	}

	rc, err := redis.New(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	if rc != nil {
		return redisstore.New(rc.Client), func() { rc.Close() }, nil
	}

	log.Warn("no durable allow-list store configured, using in-memory store")
	return memorystore.New(), func() {}, nil
}
