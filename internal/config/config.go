// Package config loads the web server configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ukaji3/aqdash-go/internal/logging"
)

// Environment variable names.
const (
	EnvAddr           = "AQDASH_ADDR"
	EnvAllowedOrigins = "AQDASH_ALLOWED_ORIGINS"
	EnvMaxUploadMB    = "AQDASH_MAX_UPLOAD_MB"
	EnvLogLevel       = "AQDASH_LOG_LEVEL"
)

// Config holds the web server configuration.
type Config struct {
	Addr           string
	AllowedOrigins []string
	MaxUploadBytes int64
	LogLevel       string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
		MaxUploadBytes: 32 << 20,
		LogLevel:       "info",
	}
}

// Load reads the optional .env files, then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		logging.Debugf("No .env file found, relying on system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an environment lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := getenv(EnvAllowedOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}
	if v := getenv(EnvMaxUploadMB); v != "" {
		mb, err := strconv.ParseInt(v, 10, 64)
		if err != nil || mb <= 0 {
			return Config{}, fmt.Errorf("invalid %s: %q", EnvMaxUploadMB, v)
		}
		cfg.MaxUploadBytes = mb << 20
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
