package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/musicalcamp/musicalcamp-server/internal/adapter/payment"
	"github.com/musicalcamp/musicalcamp-server/internal/adapter/store"
	"github.com/musicalcamp/musicalcamp-server/internal/handler"
	"github.com/musicalcamp/musicalcamp-server/internal/metrics"
	"github.com/musicalcamp/musicalcamp-server/internal/middleware"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
	"github.com/musicalcamp/musicalcamp-server/internal/service"
	"github.com/musicalcamp/musicalcamp-server/pkg/config"
	"golang.org/x/sync/errgroup"
)

const (
	connectTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("🚀 Starting "+cfg.AppName,
		"port", cfg.Port,
		"database", cfg.DSN(),
		"require_auth", cfg.RequireAuth,
		"payments_enabled", cfg.PaymentsEnabled(),
		"audit_enabled", cfg.AuditEnabled,
		"bootstrap_admins", len(cfg.AdminEmails),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ── Database ─────────────────────────────────────────────────────────
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	mongoStore, err := store.NewMongoStore(connectCtx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	indexCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	if err := mongoStore.EnsureIndexes(indexCtx); err != nil {
		slog.Warn("failed to ensure indexes", "error", err)
	}
	cancel()

	// ── Adapters ─────────────────────────────────────────────────────────
	tokens, err := middleware.NewTokenService(cfg.AccessTokenSecret)
	if err != nil {
		slog.Error("failed to create token service", "error", err)
		os.Exit(1)
	}

	var processor port.PaymentProcessor
	if cfg.PaymentsEnabled() {
		processor = payment.NewStripeProcessor(cfg.PaymentSecretKey)
	} else {
		slog.Warn("PAYMENT_SECRET_KEY not set, payment intents are disabled")
	}

	// ── Services ─────────────────────────────────────────────────────────
	authService := service.NewAuthService(tokens)
	roleService := service.NewRoleService(mongoStore)
	userService := service.NewUserService(mongoStore, cfg.AdminEmails...)
	paymentService := service.NewPaymentService(processor, mongoStore, cfg.PaymentCurrency)

	gates := middleware.NewGates(tokens, roleService, cfg.RequireAuth)

	if len(cfg.AdminEmails) > 0 {
		promoteCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		if err := userService.PromoteAdmins(promoteCtx); err != nil {
			slog.Warn("failed to promote bootstrap admins", "error", err)
		}
		cancel()
	}

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))
	app.Use(metrics.Middleware())

	if cfg.AuditEnabled {
		app.Use(middleware.AuditMiddleware(mongoStore))
	}

	// ── Routes ───────────────────────────────────────────────────────────
	app.Get("/metrics", metrics.Handler())
	handler.NewHealthHandler(cfg.AppName, mongoStore).Register(app)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartCleanup(time.Minute, ctx.Done())
	handler.NewAuthHandler(authService, limiter.Handler()).Register(app)

	handler.NewUserHandler(userService, roleService).Register(app, gates)
	handler.NewClassHandler(mongoStore).Register(app, gates)
	handler.NewSelectionHandler(mongoStore).Register(app, gates)
	handler.NewPaymentHandler(paymentService).Register(app, gates)
	handler.NewAuditHandler(mongoStore).Register(app, gates)

	// ── Start ────────────────────────────────────────────────────────────
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("🌐 Fiber listening", "port", cfg.Port)
		return app.Listen(":"+cfg.Port, fiber.ListenConfig{DisableStartupMessage: true})
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("🛑 Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(
			app.ShutdownWithContext(shutdownCtx),
			mongoStore.Close(shutdownCtx),
		)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("👋 Server stopped")
}
