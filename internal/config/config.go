package config

// Config holds all application configuration.
// It is constructed once at process start by Load and passed explicitly
// to every component that needs it; there is no global settings object.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// DevMode gates development conveniences: schema auto-migration at
	// startup and the docs pointer on the root endpoint. Production
	// deployments run migrations as an external step instead.
	DevMode bool `mapstructure:"dev_mode"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`

	// MaxOpenConns bounds the connection pool. Idle connections are kept
	// up to the same bound, so the pool never grows past it under load.
	MaxOpenConns int `mapstructure:"max_open_conns" validate:"gt=0"`

	// ConnMaxLifetimeMinutes recycles connections periodically to avoid
	// stale-connection errors against managed Postgres providers.
	ConnMaxLifetimeMinutes int `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret        string `mapstructure:"jwt_secret"         validate:"required,min=32"`
	JWTAlgorithm     string `mapstructure:"jwt_algorithm"      validate:"required,oneof=HS256 HS384 HS512"`
	TokenExpiryHours int    `mapstructure:"token_expiry_hours" validate:"required,gt=0"`
}

// CORSConfig contains the cross-origin resource sharing policy.
type CORSConfig struct {
	// AllowedOrigins is the explicit origin allow-list. Sourced from a
	// comma-separated environment variable; an empty list means no
	// cross-origin access is permitted.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
