package config

import (
	"os"
	"path/filepath"
	"time"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Session backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds all configuration options for the workhours application
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Server      ServerConfig      `mapstructure:"server"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Session     SessionConfig     `mapstructure:"session"`
	Tracking    TrackingConfig    `mapstructure:"tracking"`
	Validation  ValidationConfig  `mapstructure:"validation"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Application ApplicationConfig `mapstructure:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string        `mapstructure:"driver"`
	Dir            string        `mapstructure:"dir"`
	Filename       string        `mapstructure:"filename"`
	PostgresDSN    string        `mapstructure:"postgres_dsn"`
	MaxConns       int32         `mapstructure:"max_conns"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	DirPermissions uint32        `mapstructure:"dir_permissions"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	SecureCookies     bool          `mapstructure:"secure_cookies"`
	TimerTick         time.Duration `mapstructure:"timer_tick"`
}

// AuthConfig holds login and token configuration
type AuthConfig struct {
	JWTSecret          string        `mapstructure:"jwt_secret"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
	BcryptCost         int           `mapstructure:"bcrypt_cost"`
	LoginRatePerSecond float64       `mapstructure:"login_rate"`
	LoginBurst         int           `mapstructure:"login_burst"`
}

// SessionConfig selects where login sessions are kept
type SessionConfig struct {
	Backend       string `mapstructure:"backend"`
	CacheSize     int    `mapstructure:"cache_size"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	KeyPrefix     string `mapstructure:"key_prefix"`
}

// TrackingConfig holds time accounting settings
type TrackingConfig struct {
	WeeklyGoalHours float64 `mapstructure:"weekly_goal_hours"`
	Timezone        string  `mapstructure:"timezone"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int `mapstructure:"description_max_length"`
	UsernameMinLength    int `mapstructure:"username_min_length"`
	UsernameMaxLength    int `mapstructure:"username_max_length"`
	PasswordMinLength    int `mapstructure:"password_min_length"`
	// Entry dates may lie at most this many years before or after today.
	// Zero leaves that side unbounded.
	MaxPastYears   int `mapstructure:"max_past_years"`
	MaxFutureYears int `mapstructure:"max_future_years"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Verbose bool          `mapstructure:"verbose"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Driver:         DriverSQLite,
			Dir:            filepath.Join(homeDir, ".workhours"),
			Filename:       "workhours.db",
			MaxConns:       10,
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			TimerTick:         time.Second,
		},
		Auth: AuthConfig{
			TokenTTL:           7 * 24 * time.Hour,
			BcryptCost:         12,
			LoginRatePerSecond: 0.2,
			LoginBurst:         5,
		},
		Session: SessionConfig{
			Backend:   SessionBackendMemory,
			CacheSize: 10000,
			RedisAddr: "localhost:6379",
			KeyPrefix: "workhours:session:",
		},
		Tracking: TrackingConfig{
			WeeklyGoalHours: 40,
			Timezone:        "Local",
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: 500,
			UsernameMinLength:    3,
			UsernameMaxLength:    50,
			PasswordMinLength:    6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Location resolves the tracking timezone. Entry dates and timer times are
// taken in this zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Tracking.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.Tracking.Timezone)
	}
}

// Validate validates the configuration and returns the first problem found
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	case DriverPostgres:
		if c.Database.PostgresDSN == "" {
			return &ConfigError{Field: "database.postgres_dsn", Message: "postgres DSN is required for the postgres driver"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: "driver must be sqlite or postgres"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.TimerTick <= 0 {
		return &ConfigError{Field: "server.timer_tick", Message: "timer tick must be positive"}
	}

	if c.Auth.TokenTTL <= 0 {
		return &ConfigError{Field: "auth.token_ttl", Message: "token TTL must be positive"}
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return &ConfigError{Field: "auth.bcrypt_cost", Message: "bcrypt cost must be between 4 and 31"}
	}
	if c.Auth.LoginRatePerSecond <= 0 || c.Auth.LoginBurst < 1 {
		return &ConfigError{Field: "auth.login_rate", Message: "login rate and burst must be positive"}
	}

	switch c.Session.Backend {
	case SessionBackendMemory:
		if c.Session.CacheSize < 1 {
			return &ConfigError{Field: "session.cache_size", Message: "cache size must be at least 1"}
		}
	case SessionBackendRedis:
		if c.Session.RedisAddr == "" {
			return &ConfigError{Field: "session.redis_addr", Message: "redis address is required for the redis backend"}
		}
	default:
		return &ConfigError{Field: "session.backend", Message: "backend must be memory or redis"}
	}

	if c.Tracking.WeeklyGoalHours <= 0 || c.Tracking.WeeklyGoalHours > 7*24 {
		return &ConfigError{Field: "tracking.weekly_goal_hours", Message: "weekly goal must be between 0 and 168 hours"}
	}
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "tracking.timezone", Message: "unknown timezone " + c.Tracking.Timezone}
	}

	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}
	if c.Validation.UsernameMinLength < 1 {
		return &ConfigError{Field: "validation.username_min_length", Message: "username minimum length must be at least 1"}
	}
	if c.Validation.UsernameMaxLength < c.Validation.UsernameMinLength {
		return &ConfigError{Field: "validation.username_max_length", Message: "username maximum length must be greater than minimum length"}
	}
	if c.Validation.PasswordMinLength < 1 {
		return &ConfigError{Field: "validation.password_min_length", Message: "password minimum length must be at least 1"}
	}
	if c.Validation.MaxPastYears < 0 {
		return &ConfigError{Field: "validation.max_past_years", Message: "max past years cannot be negative"}
	}
	if c.Validation.MaxFutureYears < 0 {
		return &ConfigError{Field: "validation.max_future_years", Message: "max future years cannot be negative"}
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "format must be console or json"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ValidateForServer adds the checks that only matter when serving HTTP.
func (c *Config) ValidateForServer() error {
	if len(c.Auth.JWTSecret) < 32 {
		return &ConfigError{Field: "auth.jwt_secret", Message: "JWT secret must be at least 32 characters"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
