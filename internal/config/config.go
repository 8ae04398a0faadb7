package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/air-traffic-analysis/internal/domain"
)

// defaultDownloadBaseURL serves the raw OpenFlights data files.
const defaultDownloadBaseURL = "https://raw.githubusercontent.com/jpatokal/openflights/master/data"

// Config holds all toolkit settings, populated from environment variables.
type Config struct {
	DataDir   string
	LogLevel  string
	LogFormat string

	// Emission factors in grams of CO₂ per passenger-kilometer.
	AirGramsPerKm  float64
	RailGramsPerKm float64

	DistanceCacheSize int

	// Dataset fetch configuration.
	DownloadBaseURL string
	DownloadTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	airFactor, err := parseFloatEnv("AIR_EMISSION_FACTOR", domain.DefaultAirGramsPerKm)
	if err != nil {
		return nil, err
	}

	railFactor, err := parseFloatEnv("RAIL_EMISSION_FACTOR", domain.DefaultRailGramsPerKm)
	if err != nil {
		return nil, err
	}

	timeoutStr := envOrDefault("DOWNLOAD_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid DOWNLOAD_TIMEOUT")
	}

	cfg := &Config{
		DataDir:   envOrDefault("AIRTRAFFIC_DATA_DIR", "downloads"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),

		AirGramsPerKm:  airFactor,
		RailGramsPerKm: railFactor,

		DistanceCacheSize: parseDistanceCacheSize(),

		DownloadBaseURL: envOrDefault("DOWNLOAD_BASE_URL", defaultDownloadBaseURL),
		DownloadTimeout: timeout,
	}

	if cfg.DataDir == "" {
		return nil, errors.New("AIRTRAFFIC_DATA_DIR is required")
	}
	if err := cfg.EmissionModel().Validate(); err != nil {
		return nil, fmt.Errorf("emission factor configuration: %w", err)
	}

	return cfg, nil
}

// EmissionModel builds the domain emission model from the configured factors.
func (c *Config) EmissionModel() domain.EmissionModel {
	return domain.EmissionModel{
		AirGramsPerKm:  c.AirGramsPerKm,
		RailGramsPerKm: c.RailGramsPerKm,
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloatEnv(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}

func parseDistanceCacheSize() int {
	if s := os.Getenv("DISTANCE_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 10000
}
