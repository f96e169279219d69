package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/config"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/handlers"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/middleware"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/services"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/utils"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/workers"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.close(); err != nil {
			logger.Warn("Failed to close backend", "error", err)
		}
	}()

	authorizer, err := middleware.NewAuthorizer(cfg.AdminAuthMode, cfg.AdminToken, cfg.JWTSecret)
	if err != nil {
		return err
	}

	var notifier services.DepositNotifier = services.NopNotifier{}
	if cfg.ResendAPIKey != "" {
		notifier = services.NewResendNotifier(cfg.ResendAPIKey, cfg.MailFrom)
	}

	tournaments := services.NewTournamentService(store.joins, store.rooms)
	deposits := services.NewDepositService(store.deposits, notifier, cfg.Location())
	defer deposits.Close()

	var archiver *workers.Archiver
	if cfg.ArchiveInterval > 0 {
		if !cfg.R2Enabled() {
			logger.Warn("ARCHIVE_INTERVAL set but R2 credentials are incomplete, archival disabled")
		} else {
			r2, err := utils.NewR2Client(ctx, cfg.R2AccountID, cfg.R2AccessKeyID, cfg.R2AccessKeySecret, cfg.R2Bucket)
			if err != nil {
				return err
			}
			archiver = workers.NewArchiver(cfg.AppName, r2, store.joins, store.deposits)
		}
	}

	sched, err := workers.StartScheduler(tournaments, archiver, workers.SchedulerOptions{
		PruneInterval:   cfg.RoomPruneInterval,
		RoomStaleAfter:  cfg.RoomStaleAfter,
		ArchiveInterval: cfg.ArchiveInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer func() {
		if err := sched.Shutdown(); err != nil {
			logger.Warn("Scheduler shutdown failed", "error", err)
		}
	}()

	app := newApp(cfg)
	handlers.SetupRoutes(app, handlers.Deps{
		Tournaments: tournaments,
		Deposits:    deposits,
		Authorizer:  authorizer,
		Backend:     store.name,
		StartedAt:   time.Now(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting",
			"port", cfg.Port,
			"backend", store.name,
			"admin_auth", cfg.AdminAuthMode,
		)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newApp(cfg *config.Config) *fiber.App {
	// Immutable: parsed values outlive the request in the memory backend.
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		Immutable:    true,
		BodyLimit:    1 * 1024 * 1024,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Admin-Token, X-Request-ID",
	}))
	app.Use(middleware.RequestLogger())
	return app
}
