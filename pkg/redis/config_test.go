package redis

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty host", func(c *Config) { c.Host = "" }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"database out of range", func(c *Config) { c.Database = 16 }, true},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }, true},
		{"negative timeout", func(c *Config) { c.ReadTimeout = -time.Second }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewRedisConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientKey(t *testing.T) {
	client, err := NewClient(NewRedisConfig())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	if got := client.Key("reading", "london"); got != "weather-dashboard::reading::london" {
		t.Errorf("Key() = %q", got)
	}

	client.config.KeyPrefix = ""
	if got := client.Key("lock", "refresh"); got != "lock::refresh" {
		t.Errorf("Key() without prefix = %q", got)
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	cfg := NewRedisConfig()
	cfg.Port = 0
	if _, err := NewClient(cfg); err == nil {
		t.Fatal("expected error for invalid port")
	}
}
