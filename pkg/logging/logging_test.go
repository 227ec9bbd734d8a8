package logging_test

import (
	"testing"

	"github.com/lumenlab/vista/pkg/logging"
)

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   logging.Level
		wantErr bool
	}{
		{"debug", logging.LevelDebug, false},
		{"info", logging.LevelInfo, false},
		{"warn", logging.LevelWarn, false},
		{"error", logging.LevelError, false},
		{"unknown", logging.Level("verbose"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidate(t *testing.T) {
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Validate() = nil, want error for unknown format")
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestConfigFinalizeEnvOverride(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := logging.Config{}
	err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug || cfg.Format != logging.FormatJSON {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigFinalizeInvalid(t *testing.T) {
	cfg := logging.Config{Level: "verbose"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() = nil, want error for invalid level")
	}
}

func TestNew(t *testing.T) {
	cfg := logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON}
	logger := logging.New(&cfg)

	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if !logger.Enabled(nil, -4) {
		t.Error("debug level not enabled")
	}
}
