package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestExpandEnvVar(t *testing.T) {
	os.Setenv("HOTEL_TEST_KEY", "secret-value")
	defer os.Unsetenv("HOTEL_TEST_KEY")

	if got := expandEnvVar("${HOTEL_TEST_KEY}"); got != "secret-value" {
		t.Errorf("expandEnvVar = %q, want secret-value", got)
	}
	if got := expandEnvVar("literal"); got != "literal" {
		t.Errorf("expandEnvVar(literal) = %q", got)
	}
	if got := expandEnvVar("${HOTEL_TEST_MISSING}"); got != "" {
		t.Errorf("missing env var should expand to empty, got %q", got)
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"empty", LLMConfig{}, true},
		{"none enabled", LLMConfig{Providers: []ProviderConfig{{Name: "deepseek", Model: "deepseek-chat"}}}, true},
		{"duplicate priority", LLMConfig{Providers: []ProviderConfig{
			{Name: "deepseek", Model: "deepseek-chat", Enabled: true, Priority: 1},
			{Name: "openai", Model: "gpt-3.5-turbo", Enabled: true, Priority: 1},
		}}, true},
		{"valid", LLMConfig{Providers: []ProviderConfig{
			{Name: "deepseek", Model: "deepseek-chat", Enabled: true, Priority: 1},
			{Name: "openai", Model: "gpt-3.5-turbo", Enabled: true, Priority: 2},
		}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBackends(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database:  DatabaseConfig{Driver: DriverSQLite, DSN: ":memory:"},
			Session:   SessionConfig{Store: SessionStoreMemory},
			Knowledge: KnowledgeConfig{Backend: KnowledgeChromem, CandidateCount: 30, TopK: 10},
		}
	}

	if err := validateBackends(base()); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.Knowledge.CandidateCount = 5
	if err := validateBackends(cfg); err == nil {
		t.Error("candidate_count below 10 should be rejected")
	}

	cfg = base()
	cfg.Database.Driver = "mysql"
	if err := validateBackends(cfg); err == nil {
		t.Error("unknown driver should be rejected")
	}

	cfg = base()
	cfg.Queue.Enabled = true
	if err := validateBackends(cfg); err == nil {
		t.Error("queue without redis should be rejected")
	}
}

func TestParseProviders(t *testing.T) {
	viper.Reset()
	raw := []interface{}{
		map[string]interface{}{"name": "deepseek", "enabled": true, "priority": 1, "model": "deepseek-chat", "base_url": "https://api.deepseek.com/v1"},
		"garbage",
		map[string]interface{}{"name": "openai", "enabled": true, "priority": float64(2), "model": "gpt-3.5-turbo"},
	}
	got := parseProviders(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(got))
	}
	if got[1].Priority != 2 || got[0].BaseURL == "" {
		t.Errorf("unexpected providers %+v", got)
	}
}
