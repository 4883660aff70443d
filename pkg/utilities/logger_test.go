package utilities

import (
	"path/filepath"
	"testing"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("LOG_DEV", "")
	t.Setenv("LOG_LEVEL", "")
	cfg := ConfigFromEnv()
	if cfg.Level != "info" || cfg.Dev {
		t.Errorf("ConfigFromEnv() = %+v, want info/non-dev defaults", cfg)
	}

	t.Setenv("LOG_DEV", "1")
	cfg = ConfigFromEnv()
	if cfg.Level != "debug" || !cfg.Dev {
		t.Errorf("ConfigFromEnv() = %+v, want debug/dev", cfg)
	}
}

func TestInit(t *testing.T) {
	lg, err := Init(Config{Level: "debug", Dev: true})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	lg.Sugar().Debug("dev logger works")

	file := filepath.Join(t.TempDir(), "api.log")
	lg, err = Init(Config{Level: "info", File: file})
	if err != nil {
		t.Fatalf("Init() with file sink error = %v", err)
	}
	lg.Sugar().Info("file logger works")
	_ = lg.Sync()
}
