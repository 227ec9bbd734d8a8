package database_test

import (
	"strings"
	"testing"
	"time"

	"github.com/lumenlab/vista/pkg/database"
)

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := database.Config{Name: "vista", User: "vista"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != 5432 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MaxOpenConns != 25 || cfg.MaxIdleConns != 5 {
		t.Errorf("pool settings = %d/%d", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetimeDuration() != 15*time.Minute {
		t.Errorf("ConnMaxLifetimeDuration() = %v", cfg.ConnMaxLifetimeDuration())
	}
	if cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("ConnTimeoutDuration() = %v", cfg.ConnTimeoutDuration())
	}
}

func TestConfigFinalizeRequiresNameAndUser(t *testing.T) {
	tests := []struct {
		name string
		cfg  database.Config
	}{
		{"missing name", database.Config{User: "vista"}},
		{"missing user", database.Config{Name: "vista"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() = nil, want error")
			}
		})
	}
}

func TestConfigFinalizeEnvOverride(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PASSWORD", "secret")

	cfg := database.Config{Name: "vista", User: "vista"}
	err := cfg.Finalize(&database.Env{Host: "TEST_DB_HOST", Password: "TEST_DB_PASSWORD"})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "db.internal" || cfg.Password != "secret" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigDsn(t *testing.T) {
	cfg := database.Config{
		Host:     "db.internal",
		Port:     5433,
		Name:     "vista",
		User:     "app",
		Password: "secret",
	}

	dsn := cfg.Dsn()
	for _, fragment := range []string{"host=db.internal", "port=5433", "dbname=vista", "user=app", "password=secret"} {
		if !strings.Contains(dsn, fragment) {
			t.Errorf("Dsn() = %q, missing %q", dsn, fragment)
		}
	}
}

func TestConfigMerge(t *testing.T) {
	base := database.Config{Host: "localhost", Port: 5432, Name: "vista"}
	base.Merge(&database.Config{Host: "db.prod", Password: "prod-secret"})

	if base.Host != "db.prod" || base.Password != "prod-secret" {
		t.Errorf("cfg = %+v", base)
	}
	if base.Port != 5432 || base.Name != "vista" {
		t.Errorf("merge overwrote unset fields: %+v", base)
	}
}
