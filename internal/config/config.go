// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"archcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Refresh contains scheduled refresh configuration
	Refresh RefreshConfig `json:"refresh"`

	// Admin contains admin authentication configuration
	Admin AdminConfig `json:"admin"`

	// Email contains notification email configuration
	Email EmailConfig `json:"email"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// AllowedOrigins for CORS; "*" allows any origin
	AllowedOrigins []string `json:"allowed_origins"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// DefaultCurrency is the currency used when a request omits one
	DefaultCurrency string `json:"default_currency"`

	// DataDir is where pricing snapshots are archived
	DataDir string `json:"data_dir"`

	// RefreshOnStart runs the ingestion pipeline during startup
	RefreshOnStart bool `json:"refresh_on_start"`
}

// RefreshConfig controls the daily price refresh job
type RefreshConfig struct {
	// Enabled turns the scheduler on
	Enabled bool `json:"enabled"`

	// Hour and Minute are the daily run time in UTC
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// AdminConfig contains admin authentication settings.
// Secrets are read from the environment, never from the config file.
type AdminConfig struct {
	// Username for the single admin account
	Username string `json:"username"`

	// PasswordHash is a bcrypt hash; overridden by ARCHCOST_ADMIN_PASSWORD_HASH
	PasswordHash string `json:"-"`

	// JWTSecret signs admin tokens; overridden by ARCHCOST_JWT_SECRET
	JWTSecret string `json:"-"`

	// TokenTTLMinutes is the access token lifetime
	TokenTTLMinutes int `json:"token_ttl_minutes"`
}

// EmailConfig contains SendGrid notification settings
type EmailConfig struct {
	// Enabled turns outgoing mail on
	Enabled bool `json:"enabled"`

	// Sender is the from/to address for notifications
	Sender string `json:"sender"`

	// APIKey is read from SENDGRID_API_KEY
	APIKey string `json:"-"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".archcost", "pricing")

	cfg := &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Pricing: PricingConfig{
			DefaultCurrency: "USD",
			DataDir:         dataDir,
			RefreshOnStart:  false,
		},
		Refresh: RefreshConfig{
			Enabled: true,
			Hour:    0,
			Minute:  0,
		},
		Admin: AdminConfig{
			Username:        "admin",
			TokenTTLMinutes: 60,
		},
		Email: EmailConfig{
			Enabled: false,
			Sender:  "archcostestimator@gmail.com",
		},
		Logging: logging.DefaultConfig(),
	}
	cfg.applyEnv()
	return cfg
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	config.applyEnv()

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ARCHCOST_ADMIN_PASSWORD_HASH"); v != "" {
		c.Admin.PasswordHash = v
	}
	if v := os.Getenv("ARCHCOST_JWT_SECRET"); v != "" {
		c.Admin.JWTSecret = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		c.Email.APIKey = v
		c.Email.Enabled = true
	}
	if v := os.Getenv("ARCHCOST_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
