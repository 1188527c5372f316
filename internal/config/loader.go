package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. WH_DATABASE_DRIVER.
const EnvPrefix = "WH"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// WithConfigFile makes Load read the given file instead of searching for
// workhours.{yaml,toml,json} in the working directory and ~/.workhours.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load applies, in increasing priority: defaults, the config file,
// environment variables.
func (l *Loader) Load() (*Config, error) {
	setDefaults(l.v, NewConfig())

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName("workhours")
		l.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".workhours"))
		}
	}
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFileUsed reports the file Load read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	DBDriver    *string
	DBDir       *string
	DBFilename  *string
	PostgresDSN *string

	ServerAddr *string

	SessionBackend *string
	RedisAddr      *string

	WeeklyGoalHours *float64
	Timezone        *string

	LogLevel  *string
	LogFormat *string

	Timeout *time.Duration
	Verbose *bool
}

func (o *ConfigOverrides) apply(cfg *Config) {
	setIf(&cfg.Database.Driver, o.DBDriver)
	setIf(&cfg.Database.Dir, o.DBDir)
	setIf(&cfg.Database.Filename, o.DBFilename)
	setIf(&cfg.Database.PostgresDSN, o.PostgresDSN)
	setIf(&cfg.Server.Addr, o.ServerAddr)
	setIf(&cfg.Session.Backend, o.SessionBackend)
	setIf(&cfg.Session.RedisAddr, o.RedisAddr)
	setIf(&cfg.Tracking.WeeklyGoalHours, o.WeeklyGoalHours)
	setIf(&cfg.Tracking.Timezone, o.Timezone)
	setIf(&cfg.Logging.Level, o.LogLevel)
	setIf(&cfg.Logging.Format, o.LogFormat)
	setIf(&cfg.Application.Timeout, o.Timeout)
	setIf(&cfg.Application.Verbose, o.Verbose)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setDefaults registers every key with viper. AutomaticEnv only resolves
// keys viper already knows about.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.dir", d.Database.Dir)
	v.SetDefault("database.filename", d.Database.Filename)
	v.SetDefault("database.postgres_dsn", d.Database.PostgresDSN)
	v.SetDefault("database.max_conns", d.Database.MaxConns)
	v.SetDefault("database.query_timeout", d.Database.QueryTimeout)
	v.SetDefault("database.write_timeout", d.Database.WriteTimeout)
	v.SetDefault("database.dir_permissions", d.Database.DirPermissions)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_header_timeout", d.Server.ReadHeaderTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.secure_cookies", d.Server.SecureCookies)
	v.SetDefault("server.timer_tick", d.Server.TimerTick)

	v.SetDefault("auth.jwt_secret", d.Auth.JWTSecret)
	v.SetDefault("auth.token_ttl", d.Auth.TokenTTL)
	v.SetDefault("auth.bcrypt_cost", d.Auth.BcryptCost)
	v.SetDefault("auth.login_rate", d.Auth.LoginRatePerSecond)
	v.SetDefault("auth.login_burst", d.Auth.LoginBurst)

	v.SetDefault("session.backend", d.Session.Backend)
	v.SetDefault("session.cache_size", d.Session.CacheSize)
	v.SetDefault("session.redis_addr", d.Session.RedisAddr)
	v.SetDefault("session.redis_password", d.Session.RedisPassword)
	v.SetDefault("session.redis_db", d.Session.RedisDB)
	v.SetDefault("session.key_prefix", d.Session.KeyPrefix)

	v.SetDefault("tracking.weekly_goal_hours", d.Tracking.WeeklyGoalHours)
	v.SetDefault("tracking.timezone", d.Tracking.Timezone)

	v.SetDefault("validation.description_max_length", d.Validation.DescriptionMaxLength)
	v.SetDefault("validation.username_min_length", d.Validation.UsernameMinLength)
	v.SetDefault("validation.username_max_length", d.Validation.UsernameMaxLength)
	v.SetDefault("validation.password_min_length", d.Validation.PasswordMinLength)
	v.SetDefault("validation.max_past_years", d.Validation.MaxPastYears)
	v.SetDefault("validation.max_future_years", d.Validation.MaxFutureYears)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("application.timeout", d.Application.Timeout)
	v.SetDefault("application.verbose", d.Application.Verbose)
}
