package config

import (
	"strings"
	"testing"
)

type portConfig struct {
	Port int `env:"FLUX_ENV_TEST_PORT" envDefault:"123"`
}

func TestParseEnvUsesDefault(t *testing.T) {
	var cfg portConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("Port = %d, want 123", cfg.Port)
	}
}

func TestParseEnvReadsEnvironment(t *testing.T) {
	t.Setenv("FLUX_ENV_TEST_PORT", "8123")

	var cfg portConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.Port != 8123 {
		t.Fatalf("Port = %d, want 8123", cfg.Port)
	}
}

func TestParseEnvWrapsParseFailure(t *testing.T) {
	t.Setenv("FLUX_ENV_TEST_PORT", "not-a-number")

	var cfg portConfig
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error for a non-numeric port")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("error %q is missing the parse env prefix", err)
	}
}
