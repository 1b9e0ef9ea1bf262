package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpapi "github.com/heliotrack/solar-installations/internal/api/http"
	"github.com/heliotrack/solar-installations/internal/auth"
	"github.com/heliotrack/solar-installations/internal/config"
	"github.com/heliotrack/solar-installations/internal/installation"
	"github.com/heliotrack/solar-installations/internal/store"
	"github.com/heliotrack/solar-installations/internal/weather"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// Shared HTTP client for outbound weather calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	gateway, err := weather.NewClient(httpClient, cfg.WeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.WeatherUnits)
	if err != nil {
		log.Fatal().Err(err).Msg("weather client init failed")
	}

	installations := store.NewInstallationStore(store.SeedInstallations())
	users := store.NewUserStore(store.SeedUsers())

	svc := installation.NewService(installations, gateway)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		AppName:               "solar-installations",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware. CORS is open; the API serves a browser SPA.
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	httpapi.RegisterRoutes(app, svc, users, tokens)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("api listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	// Wait for termination signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
