package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DEBUG", "REQUEST_TIMEOUT", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Port != "8000" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.Debug {
		t.Fatal("debug should default to false")
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.RequestTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://aniapi.online" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("REQUEST_TIMEOUT", "2.5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if !cfg.Debug {
		t.Fatal("debug override not applied")
	}
	if cfg.RequestTimeout != 2500*time.Millisecond {
		t.Fatalf("unexpected timeout: %v", cfg.RequestTimeout)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("unexpected origin %d: %s", i, cfg.AllowedOrigins[i])
		}
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad debug flag", key: "DEBUG", value: "sure"},
		{name: "bad timeout", key: "REQUEST_TIMEOUT", value: "ten"},
		{name: "negative timeout", key: "REQUEST_TIMEOUT", value: "-1"},
		{name: "empty origin list", key: "ALLOWED_ORIGINS", value: " , ,"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
