// Package config loads the deskmate configuration file.
// Settings live in ~/.deskmate/config.toml; a missing file yields the
// defaults so the tool works out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvSMTPPassword overrides the configured SMTP password so the secret
// can stay out of the config file.
const EnvSMTPPassword = "DESKMATE_SMTP_PASSWORD"

// Config is the root configuration.
type Config struct {
	// DataDir overrides the default ~/.deskmate/data location.
	DataDir string `toml:"data_dir"`

	// AdminPassword gates ingest commands when set. Empty disables the
	// gate.
	AdminPassword string `toml:"admin_password"`

	Embedding Embedding `toml:"embedding"`
	SMTP      SMTP      `toml:"smtp"`
	Batch     Batch     `toml:"batch"`
}

// Embedding selects and configures the embedding backend.
type Embedding struct {
	// Provider is "tfidf" (local, default) or "ollama".
	Provider string `toml:"provider"`

	// BaseURL and Model apply to the ollama provider.
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`

	// Dimensions is the remote model's vector size.
	Dimensions int `toml:"dimensions"`
}

// SMTP configures outgoing mail for batch replies.
type SMTP struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	FromName string `toml:"from_name"`
	UseTLS   bool   `toml:"use_tls"`
}

// Batch tunes customer-query batch processing.
type Batch struct {
	// SendRate is outgoing messages per second. Zero means the built-in
	// default.
	SendRate float64 `toml:"send_rate"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Embedding: Embedding{Provider: "tfidf"},
		SMTP:      SMTP{Port: 587, FromName: "Customer Support Team"},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".deskmate", "config.toml"), nil
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if pw := os.Getenv(EnvSMTPPassword); pw != "" {
		cfg.SMTP.Password = pw
	}
}
