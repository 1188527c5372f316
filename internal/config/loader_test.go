package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoader_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Session.Backend != SessionBackendMemory {
		t.Errorf("Session.Backend = %q, want memory", cfg.Session.Backend)
	}
}

func TestLoader_EnvironmentOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	t.Setenv("WH_DATABASE_DIR", dir)
	t.Setenv("WH_TRACKING_WEEKLY_GOAL_HOURS", "32.5")
	t.Setenv("WH_APPLICATION_TIMEOUT", "15s")
	t.Setenv("WH_LOGGING_LEVEL", "debug")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Dir != dir {
		t.Errorf("Database.Dir = %q, want %q", cfg.Database.Dir, dir)
	}
	if cfg.Tracking.WeeklyGoalHours != 32.5 {
		t.Errorf("WeeklyGoalHours = %v, want 32.5", cfg.Tracking.WeeklyGoalHours)
	}
	if cfg.Application.Timeout != 15*time.Second {
		t.Errorf("Application.Timeout = %v, want 15s", cfg.Application.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoader_ConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "workhours.yaml")
	content := "tracking:\n  weekly_goal_hours: 20\nserver:\n  addr: \":9090\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader().WithConfigFile(path)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Tracking.WeeklyGoalHours != 20 {
		t.Errorf("WeeklyGoalHours = %v, want 20", cfg.Tracking.WeeklyGoalHours)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if loader.ConfigFileUsed() != path {
		t.Errorf("ConfigFileUsed() = %q, want %q", loader.ConfigFileUsed(), path)
	}
}

func TestLoader_InvalidEnvironmentFailsValidation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WH_DATABASE_DRIVER", "oracle")

	if _, err := NewLoader().Load(); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WH_TRACKING_TIMEZONE", "UTC")

	driver := DriverPostgres
	dsn := "postgres://localhost/workhours"
	verbose := true
	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		DBDriver:    &driver,
		PostgresDSN: &dsn,
		Verbose:     &verbose,
	})
	if err != nil {
		t.Fatalf("LoadWithOverrides() error = %v", err)
	}
	if cfg.Database.Driver != DriverPostgres || cfg.Database.PostgresDSN != dsn {
		t.Errorf("database overrides not applied: %+v", cfg.Database)
	}
	if !cfg.Application.Verbose {
		t.Error("Verbose override not applied")
	}
	if cfg.Tracking.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC from environment", cfg.Tracking.Timezone)
	}

	bad := "oracle"
	if _, err := NewLoader().LoadWithOverrides(&ConfigOverrides{DBDriver: &bad}); err == nil {
		t.Error("expected invalid override to fail validation")
	}
}
