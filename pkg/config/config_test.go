package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, apiKey string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "environment: test\n" +
		"alphavantage:\n" +
		"  api_key: \"" + apiKey + "\"\n" +
		"redis:\n" +
		"  addr: localhost:6379\n" +
		"clickhouse:\n" +
		"  host: localhost\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadWithEnvAPIKeyFromEnvironment(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("ALPHAVANTAGE_API_KEY", "demo-key")

	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv with env key: %v", err)
	}
	if c.AlphaVantage.APIKey != "demo-key" {
		t.Fatalf("api key = %q, want the env override", c.AlphaVantage.APIKey)
	}
}

func TestLoadWithEnvRejectsMissingAPIKey(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("ALPHAVANTAGE_API_KEY", "")

	if _, err := LoadWithEnv(path); err == nil {
		t.Fatal("expected a validation error without an api key")
	}
}

func TestLoadWithEnvYAMLKeyWithoutOverride(t *testing.T) {
	path := writeConfig(t, "yaml-key")
	t.Setenv("ALPHAVANTAGE_API_KEY", "")

	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv with yaml key: %v", err)
	}
	if c.AlphaVantage.APIKey != "yaml-key" {
		t.Fatalf("api key = %q, want the yaml value", c.AlphaVantage.APIKey)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "yaml-key")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.AlphaVantage.BaseURL != "https://www.alphavantage.co/query" {
		t.Fatalf("base url = %q", c.AlphaVantage.BaseURL)
	}
	if c.AlphaVantage.RequestInterval != 12*time.Second {
		t.Fatalf("request interval = %v, want 12s", c.AlphaVantage.RequestInterval)
	}
	if c.AlphaVantage.CacheTTL != time.Minute {
		t.Fatalf("cache ttl = %v, want 1m", c.AlphaVantage.CacheTTL)
	}
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	path := writeConfig(t, "")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error without an api key")
	}
}
