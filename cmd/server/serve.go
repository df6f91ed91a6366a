package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"partylink/config"
	"partylink/internal/auth"
	"partylink/internal/cache"
	"partylink/internal/database"
	"partylink/internal/mailer"
	"partylink/internal/queue"
	"partylink/internal/repository"
	"partylink/internal/server"
	"partylink/internal/service"
	"partylink/internal/worker"
	"partylink/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and the audit worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func runServe(parent context.Context, autoMigrate bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log := logger.WithComponent("server")

	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Server.Timezone, err)
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer rdb.Close()

	if autoMigrate {
		applied, err := database.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		log.Info("migrations applied", zap.Strings("applied", applied))
	}

	auditQueue, err := queue.NewRedisStreamAuditQueue(ctx, rdb, "", nil)
	if err != nil {
		return fmt.Errorf("init audit queue: %w", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	inviteRepo := repository.NewInviteRepository(pool)

	auditService := service.NewAuditService(repository.NewAuditRepository(pool), auditQueue)
	eventService := service.NewEventService(eventRepo, auditService, location)
	guestService := service.NewGuestService(eventRepo, inviteRepo, auditService, cfg.Server.PublicBaseURL)
	rsvpService := service.NewRSVPService(repository.NewRSVPRepository(pool), auditService)
	authService := service.NewAuthService(
		repository.NewHostRepository(pool),
		cache.NewRedisOTPStore(rdb),
		mailer.New(cfg.Mail),
		auditService,
		service.AuthOptions{
			CodeTTL:     cfg.Auth.CodeTTL,
			MaxAttempts: cfg.Auth.MaxAttempts,
			BaseURL:     cfg.Server.PublicBaseURL,
		},
	)

	auditWorker := worker.NewAuditWorker(auditService, auditQueue)
	if err := auditWorker.Start(ctx); err != nil {
		return err
	}

	router := server.NewRouter(server.Dependencies{
		Events:      eventService,
		Guests:      guestService,
		RSVP:        rsvpService,
		Auth:        authService,
		Audit:       auditService,
		Sessions:    auth.NewSessionManager(cfg.Session),
		RateLimiter: cache.NewRedisRateLimiter(rdb),
		RateLimit:   cfg.RateLimit,
		Database:    pool.Ping,
		Redis: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	// 等 worker 收完已送出的紀錄
	stop()
	select {
	case <-auditWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("audit worker did not stop before timeout")
	}
	return nil
}
