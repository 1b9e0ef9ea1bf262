package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/heliotrack/solar-installations/internal/weather"
)

// AppConfig holds everything the process reads from the environment.
type AppConfig struct {
	// OpenWeatherMap integration.
	WeatherAPIKey      string
	OpenWeatherBaseURL string
	WeatherUnits       string

	// Signing secret for login tokens.
	JWTSecret string

	// HTTP server and outbound client settings.
	Port        string
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment (with optional .env file)
// and applies defaults. The weather API key is not required here; the
// weather client enforces it so tests and offline tooling can still load
// config.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msgf("no .env file loaded: %v", err)
	}

	viper.SetDefault("OPENWEATHER_BASE_URL", weather.DefaultBaseURL)
	viper.SetDefault("WEATHER_UNITS", "metric")
	viper.SetDefault("JWT_SECRET", "your_jwt_secret_key")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("HTTP_TIMEOUT", "10s")
	viper.AutomaticEnv()

	cfg := &AppConfig{
		WeatherAPIKey:      viper.GetString("WEATHER_API_KEY"),
		OpenWeatherBaseURL: viper.GetString("OPENWEATHER_BASE_URL"),
		WeatherUnits:       viper.GetString("WEATHER_UNITS"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		Port:               viper.GetString("PORT"),
		HTTPTimeout:        viper.GetDuration("HTTP_TIMEOUT"),
	}

	valid := false
	for _, u := range weather.AllowedUnits {
		if cfg.WeatherUnits == u {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("invalid WEATHER_UNITS %q; allowed: %s",
			cfg.WeatherUnits, strings.Join(weather.AllowedUnits, ", "))
	}

	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %s", cfg.HTTPTimeout)
	}

	return cfg, nil
}
