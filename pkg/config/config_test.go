package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ChatEndpoint != DefaultChatEndpoint {
		t.Errorf("Expected ChatEndpoint %q, got %q", DefaultChatEndpoint, cfg.ChatEndpoint)
	}

	if cfg.FeedURL != DefaultFeedURL {
		t.Errorf("Expected FeedURL %q, got %q", DefaultFeedURL, cfg.FeedURL)
	}

	if cfg.TypingIntervalMS != 20 {
		t.Errorf("Expected TypingIntervalMS 20, got %d", cfg.TypingIntervalMS)
	}

	if cfg.RequestTimeoutSeconds != 0 {
		t.Errorf("Expected no request timeout by default, got %d", cfg.RequestTimeoutSeconds)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoad_CreateDefault(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".cinemax", "config.json")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TypingIntervalMS != DefaultTypingInterval {
		t.Errorf("Expected default TypingIntervalMS, got %d", cfg.TypingIntervalMS)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestLoad_ExistingConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	initialCfg := Default()
	initialCfg.ChatEndpoint = "https://chat.example.com"
	initialCfg.TypingIntervalMS = 35
	if err := Save(configPath, initialCfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ChatEndpoint != "https://chat.example.com" {
		t.Errorf("Expected saved endpoint, got %q", cfg.ChatEndpoint)
	}
	if cfg.TypingIntervalMS != 35 {
		t.Errorf("Expected TypingIntervalMS 35, got %d", cfg.TypingIntervalMS)
	}
}

func TestLoad_MissingFieldsKeepDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	raw := `{"chat_endpoint": "https://chat.example.com"}`
	if err := os.WriteFile(configPath, []byte(raw), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.FeedURL != DefaultFeedURL {
		t.Errorf("Expected default feed URL, got %q", cfg.FeedURL)
	}
	if cfg.TypingIntervalMS != DefaultTypingInterval {
		t.Errorf("Expected default typing interval, got %d", cfg.TypingIntervalMS)
	}
}

func TestLoad_CorruptedJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte("{invalid json}"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for corrupted JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid default", mutate: func(*Config) {}},
		{
			name:    "missing endpoint",
			mutate:  func(c *Config) { c.ChatEndpoint = "" },
			wantErr: "ChatEndpoint",
		},
		{
			name:    "endpoint not a url",
			mutate:  func(c *Config) { c.ChatEndpoint = "not a url" },
			wantErr: "ChatEndpoint",
		},
		{
			name:    "zero typing interval",
			mutate:  func(c *Config) { c.TypingIntervalMS = 0 },
			wantErr: "TypingIntervalMS",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.RequestTimeoutSeconds = -1 },
			wantErr: "RequestTimeoutSeconds",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: "LogLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error to mention %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyEnv_OverridesEndpoint(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CINEMAX_CHAT_ENDPOINT", "https://env.example.com")

	cfg, err := ApplyEnv(Default())
	if err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.ChatEndpoint != "https://env.example.com" {
		t.Errorf("Expected endpoint from environment, got %q", cfg.ChatEndpoint)
	}
}

func TestApplyEnv_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CINEMAX_CHAT_ENDPOINT", "")
	os.Unsetenv("CINEMAX_CHAT_ENDPOINT")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CINEMAX_CHAT_ENDPOINT=https://dotenv.example.com\n"), 0600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	cfg, err := ApplyEnv(Default())
	if err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.ChatEndpoint != "https://dotenv.example.com" {
		t.Errorf("Expected endpoint from .env, got %q", cfg.ChatEndpoint)
	}
}

func TestApplyEnv_NoOverrideKeepsFileValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CINEMAX_CHAT_ENDPOINT", "")
	os.Unsetenv("CINEMAX_CHAT_ENDPOINT")

	base := Default()
	base.ChatEndpoint = "https://file.example.com"

	cfg, err := ApplyEnv(base)
	if err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.ChatEndpoint != "https://file.example.com" {
		t.Errorf("Expected file endpoint to be kept, got %q", cfg.ChatEndpoint)
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	if cfg.TypingInterval() != 20*time.Millisecond {
		t.Errorf("Expected 20ms typing interval, got %v", cfg.TypingInterval())
	}
	if cfg.RequestTimeout() != 0 {
		t.Errorf("Expected no request timeout, got %v", cfg.RequestTimeout())
	}

	cfg.RequestTimeoutSeconds = 15
	if cfg.RequestTimeout() != 15*time.Second {
		t.Errorf("Expected 15s request timeout, got %v", cfg.RequestTimeout())
	}
}

func TestResolveSessionDir(t *testing.T) {
	cfg := Default()
	cfg.SessionDir = "/tmp/cinemax-session"
	if got := cfg.ResolveSessionDir(); got != "/tmp/cinemax-session" {
		t.Errorf("Expected explicit session dir, got %q", got)
	}

	cfg.SessionDir = ""
	if got := cfg.ResolveSessionDir(); !strings.HasSuffix(got, filepath.Join(".cinemax", "session")) {
		t.Errorf("Expected default session dir under .cinemax, got %q", got)
	}
}
