// Package config - Configuration tests
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default address, got %q", cfg.Server.Addr)
	}
	if cfg.Pricing.DefaultCurrency != "USD" {
		t.Errorf("expected default currency USD, got %q", cfg.Pricing.DefaultCurrency)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Server.Addr = ":9999"
	cfg.Refresh.Hour = 4
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Addr != ":9999" {
		t.Errorf("addr not round-tripped, got %q", loaded.Server.Addr)
	}
	if loaded.Refresh.Hour != 4 {
		t.Errorf("refresh hour not round-tripped, got %d", loaded.Refresh.Hour)
	}
}

func TestSecretsAreNeverSerialized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Admin.PasswordHash = "bcrypt-hash-value"
	cfg.Admin.JWTSecret = "signing-secret-value"
	cfg.Email.APIKey = "SG.api-key-value"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	for _, secret := range []string{"bcrypt-hash-value", "signing-secret-value", "SG.api-key-value"} {
		if strings.Contains(string(data), secret) {
			t.Errorf("secret %q must never be written to the config file", secret)
		}
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ARCHCOST_ADMIN_PASSWORD_HASH", "env-hash")
	t.Setenv("ARCHCOST_JWT_SECRET", "env-secret")
	t.Setenv("SENDGRID_API_KEY", "env-key")
	t.Setenv("ARCHCOST_ADDR", ":7777")

	cfg := Default()
	if cfg.Admin.PasswordHash != "env-hash" {
		t.Errorf("password hash not read from env, got %q", cfg.Admin.PasswordHash)
	}
	if cfg.Admin.JWTSecret != "env-secret" {
		t.Errorf("jwt secret not read from env, got %q", cfg.Admin.JWTSecret)
	}
	if cfg.Email.APIKey != "env-key" || !cfg.Email.Enabled {
		t.Error("SendGrid key must be read from env and enable email")
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("addr not read from env, got %q", cfg.Server.Addr)
	}
}
