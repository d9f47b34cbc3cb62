package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultChatEndpoint   = "http://localhost:8000"
	DefaultFeedURL        = "https://raw.githubusercontent.com/S1lver0/Json-Ia/refs/heads/master/cine_db.json"
	DefaultTypingInterval = 20
)

// Config represents the application configuration
type Config struct {
	ChatEndpoint          string `json:"chat_endpoint" validate:"required,url"`
	FeedURL               string `json:"feed_url" validate:"required,url"`
	TypingIntervalMS      int    `json:"typing_interval_ms" validate:"gte=1,lte=1000"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" validate:"gte=0"` // 0 disables the timeout
	SessionDir            string `json:"session_dir"`
	LogLevel              string `json:"log_level" validate:"omitempty,oneof=trace debug info warn warning error"`
	LogFormat             string `json:"log_format" validate:"omitempty,oneof=json text"`
	LogFile               string `json:"log_file"`
}

// environment holds the values that may be overridden from the process
// environment or a .env file in the working directory.
type environment struct {
	ChatEndpoint string `env:"CINEMAX_CHAT_ENDPOINT"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		ChatEndpoint:          DefaultChatEndpoint,
		FeedURL:               DefaultFeedURL,
		TypingIntervalMS:      DefaultTypingInterval,
		RequestTimeoutSeconds: 0,
		LogLevel:              "info",
		LogFormat:             "json",
	}
}

// Load loads configuration from the specified path
// If the file doesn't exist, creates one with default values
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// Start from defaults so fields missing from older files keep sane values.
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment overrides onto cfg. A .env file in the
// working directory is loaded first; variables already set in the process
// environment win over the file.
func ApplyEnv(cfg Config) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	var overrides environment
	if _, err := env.UnmarshalFromEnviron(&overrides); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}
	if endpoint := strings.TrimSpace(overrides.ChatEndpoint); endpoint != "" {
		cfg.ChatEndpoint = endpoint
	}
	return cfg, nil
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

var validate = validator.New()

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid config field %s: failed %q check (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// TypingInterval returns the delay between reveal ticks.
func (c Config) TypingInterval() time.Duration {
	if c.TypingIntervalMS <= 0 {
		return DefaultTypingInterval * time.Millisecond
	}
	return time.Duration(c.TypingIntervalMS) * time.Millisecond
}

// RequestTimeout returns the chat request timeout, zero meaning none.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ResolveSessionDir returns the directory holding the session store.
func (c Config) ResolveSessionDir() string {
	if dir := strings.TrimSpace(c.SessionDir); dir != "" {
		return dir
	}
	return filepath.Join(homeDir(), "session")
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	return filepath.Join(homeDir(), "config.json")
}

// homeDir returns the ~/.cinemax application directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return ".cinemax"
	}
	return filepath.Join(home, ".cinemax")
}
