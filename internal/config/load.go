package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. TASKAPI_AUTH_JWT_SECRET maps to auth.jwt_secret.
const envPrefix = "TASKAPI"

// Load reads configuration from environment variables and returns a
// validated Config. Defaults are applied for everything except the
// database URL and the JWT secret, which must be provided.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.dev_mode", false)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime_minutes", 60)
	v.SetDefault("auth.jwt_algorithm", "HS256")
	v.SetDefault("auth.token_expiry_hours", 24)
	v.SetDefault("cors.allowed_origins", []string{})

	// Environment variables take the form TASKAPI_SECTION_KEY.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicitly so AutomaticEnv sees keys that have no default
	// and are absent from any config file.
	for _, key := range []string{
		"server.port", "server.log_level", "server.dev_mode",
		"database.url", "database.max_open_conns", "database.conn_max_lifetime_minutes",
		"auth.jwt_secret", "auth.jwt_algorithm", "auth.token_expiry_hours",
		"cors.allowed_origins",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// The allow-list arrives as a single comma-separated value when set
	// through the environment.
	cfg.CORS.AllowedOrigins = splitOrigins(cfg.CORS.AllowedOrigins)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// splitOrigins normalizes the allowed-origins list, splitting any
// comma-separated entries and dropping empty ones.
func splitOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, origin := range strings.Split(entry, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	return origins
}
