package client

import (
	"testing"

	"github.com/kbukum/restkit"
	"github.com/kbukum/restkit/auth"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.MaxRetries != 1 {
		t.Errorf("MaxRetries = %d, want 1", cfg.MaxRetries)
	}
	if _, ok := cfg.Auth.(auth.None); !ok {
		t.Errorf("Auth = %T, want auth.None", cfg.Auth)
	}
	if cfg.Logger == nil {
		t.Error("Logger must default to a no-op logger")
	}
}

func TestConfig_ApplyDefaults_NegativeRetries(t *testing.T) {
	cfg := Config{MaxRetries: -1}
	cfg.ApplyDefaults()
	if cfg.MaxRetries != 0 {
		t.Errorf("MaxRetries = %d, want 0", cfg.MaxRetries)
	}
}

func TestConfig_ApplyDefaults_ExplicitRetries(t *testing.T) {
	cfg := Config{MaxRetries: 3}
	cfg.ApplyDefaults()
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing base_url")
	}

	cfg.BaseURL = "https://api.example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.TLS = &restkit.TLSConfig{CertFile: "/cert.pem"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for cert without key")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error")
	}
}
