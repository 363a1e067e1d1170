package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/config"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/database"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/discord"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/handler"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/middleware"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/repository"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/service"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lmittmann/tint"
)

func main() {
	cfg := config.Load()

	logLevel := slog.LevelDebug
	if cfg.IsProduction() {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
	})))

	// Database
	db, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		slog.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	// Object storage for property photos
	images, err := storage.NewImageStore(cfg)
	if err != nil {
		slog.Error("failed to init image store", "err", err)
		os.Exit(1)
	}
	if err := images.EnsureBucket(context.Background()); err != nil {
		slog.Error("failed to ensure image bucket", "err", err)
		os.Exit(1)
	}

	// Optional Discord announcements for newly published plots
	announcer, err := discord.NewAnnouncer(cfg.DiscordToken, cfg.DiscordChannelID)
	if err != nil {
		slog.Warn("discord announcer disabled", "err", err)
	}
	defer announcer.Close()

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	listingRepo := repository.NewListingRepository(db)
	savedRepo := repository.NewSavedRepository(db)
	compareRepo := repository.NewCompareRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Grant the configured admin account its role, once it has registered.
	if cfg.AdminEmail != "" {
		if p, err := profileRepo.GetByEmail(context.Background(), cfg.AdminEmail); err == nil {
			if err := profileRepo.GrantRole(context.Background(), p.ID, "admin"); err != nil {
				slog.Warn("admin role grant failed", "err", err)
			}
		}
	}

	// Services
	authSvc := service.NewAuthService(profileRepo, sessionRepo, cfg.JWTSecret)
	listingSvc := service.NewListingService(listingRepo, announcer)
	wizardSvc := service.NewWizardService(listingSvc)
	compareSvc := service.NewCompareService(compareRepo)
	wsHub := service.NewWSHub()

	// Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    25 * 1024 * 1024, // photo uploads
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// Health
	healthH := handler.NewHealthHandler(db)
	app.Get("/health", healthH.Health)
	app.Get("/ready", healthH.Ready)

	// API v1
	v1 := app.Group("/api/v1")

	// Auth (public)
	authH := handler.NewAuthHandler(authSvc)
	auth := v1.Group("/auth")
	auth.Post("/register", middleware.RateLimit(5, time.Minute), authH.Register)
	auth.Post("/login", middleware.RateLimit(10, time.Minute), authH.Login)
	auth.Post("/refresh", middleware.RateLimit(20, time.Minute), authH.Refresh)
	auth.Post("/logout", authH.Logout)

	// Public browse
	listingH := handler.NewListingHandler(listingSvc)
	plots := v1.Group("/plots")
	plots.Get("/", listingH.Browse)
	plots.Get("/filter-options", listingH.FilterOptions)
	plots.Get("/compare", listingH.Compare)
	plots.Get("/:id", listingH.Get)

	// Admin (role-gated)
	admin := v1.Group("/admin", middleware.Auth(cfg.JWTSecret), middleware.AdminOnly(profileRepo))
	adminH := handler.NewAdminHandler(listingRepo, profileRepo, wsHub)
	admin.Get("/stats", adminH.Stats)
	admin.Get("/plots", adminH.Listings)
	admin.Patch("/plots/:id/verify", adminH.Verify)
	admin.Patch("/plots/:id/status", adminH.SetStatus)
	admin.Delete("/plots/:id", adminH.Delete)
	admin.Patch("/users/:id/ban", adminH.Ban)
	admin.Post("/announce", adminH.Announce)

	// JWT-protected routes
	protected := v1.Group("/my", middleware.Auth(cfg.JWTSecret))

	profileH := handler.NewProfileHandler(authSvc)
	protected.Get("/profile", profileH.Me)
	protected.Patch("/profile", profileH.Update)
	protected.Put("/profile/password", profileH.ChangePassword)

	protected.Get("/plots", listingH.MyListings)

	wizardH := handler.NewWizardHandler(wizardSvc, images)
	protected.Post("/wizard", wizardH.Start)
	protected.Get("/wizard", wizardH.Get)
	protected.Patch("/wizard", wizardH.Change)
	protected.Delete("/wizard", wizardH.Abandon)
	protected.Post("/wizard/next", wizardH.Next)
	protected.Post("/wizard/previous", wizardH.Previous)
	protected.Post("/wizard/restart", wizardH.Restart)
	protected.Put("/wizard/images/:slot", wizardH.SetSlot)
	protected.Post("/wizard/images", wizardH.AddImages)
	protected.Delete("/wizard/images/:index", wizardH.RemoveImage)
	protected.Post("/wizard/submit", wizardH.Submit)

	savedH := handler.NewSavedHandler(savedRepo)
	protected.Get("/saved", savedH.List)
	protected.Get("/saved/:plotID", savedH.IsSaved)
	protected.Post("/saved/:plotID", savedH.Save)
	protected.Delete("/saved/:plotID", savedH.Unsave)
	protected.Delete("/saved/items/:id", savedH.UnsaveByID)

	compareH := handler.NewCompareHandler(compareSvc)
	protected.Get("/compare", compareH.Get)
	protected.Delete("/compare", compareH.Clear)
	protected.Post("/compare/:id", compareH.Add)
	protected.Delete("/compare/:id", compareH.Remove)

	chatH := handler.NewChatHandler(chatRepo, listingSvc, wsHub)
	protected.Post("/conversations", chatH.Start)
	protected.Get("/conversations", chatH.List)
	protected.Get("/conversations/:id/messages", chatH.Messages)
	protected.Post("/conversations/:id/messages", chatH.Send)

	// WebSocket
	wsH := handler.NewWSHandler(wsHub, authSvc)
	app.Get("/ws", wsH.Upgrade)

	// Start hub
	go wsHub.Run()

	// Daily housekeeping: expired refresh tokens and old chat messages
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := sessionRepo.DeleteExpired(context.Background()); err != nil {
					slog.Error("token sweep failed", "err", err)
				} else if n > 0 {
					slog.Info("token sweep", "deleted", n)
				}
				if cfg.ChatRetentionDays > 0 {
					n, err := chatRepo.DeleteOlderThan(context.Background(), cfg.ChatRetentionDays)
					if err != nil {
						slog.Error("chat retention sweep failed", "err", err)
					} else if n > 0 {
						slog.Info("chat retention sweep", "deleted", n)
					}
				}
			case <-sweepDone:
				return
			}
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	slog.Info("zaminbazzar backend running", "port", cfg.Port, "env", cfg.Env)

	<-quit
	slog.Info("shutting down")
	_ = app.ShutdownWithTimeout(5 * time.Second)
	close(sweepDone)
	wsHub.Shutdown()
	slog.Info("server stopped")
}
