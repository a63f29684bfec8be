package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/clinic")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.DBMaxConns != 20 || cfg.DBMinConns != 5 {
		t.Errorf("unexpected pool defaults: max=%d min=%d", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.ReportSnapshots != "0 2 * * *" {
		t.Errorf("expected default snapshot schedule, got %q", cfg.ReportSnapshots)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/clinic")
	t.Setenv("PORT", "9001")
	t.Setenv("ENV", "production")
	t.Setenv("REPORT_SNAPSHOT_CRON", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "9001" {
		t.Errorf("expected port 9001, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("expected production env, got %s", cfg.Env)
	}
}

func TestValidate(t *testing.T) {
	longSecret := strings.Repeat("s", 32)

	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"dev without secret", Config{Env: "development"}, false},
		{"production without secret", Config{Env: "production"}, true},
		{"production with secret", Config{Env: "production", JWTSecret: longSecret}, false},
		{"short secret", Config{Env: "production", JWTSecret: "short"}, true},
		{"short secret in dev", Config{Env: "development", JWTSecret: "short"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
