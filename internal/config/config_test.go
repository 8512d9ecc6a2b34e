package config

import (
	"testing"
	"time"
)

func clearAIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "AI_PROVIDER", "ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY",
		"GEMINI_API_KEY", "AI_MODEL", "AI_TEMPERATURE", "AI_TOP_P", "AI_MAX_TOKENS",
		"AI_REQUEST_TIMEOUT", "MEDIA_DB_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearAIEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr: got %q", cfg.Server.Addr)
	}
	if cfg.AI.Provider != ProviderArk {
		t.Errorf("default provider: got %q", cfg.AI.Provider)
	}
	if cfg.AI.RequestTimeout != 60*time.Second {
		t.Errorf("default timeout: got %v", cfg.AI.RequestTimeout)
	}
	if cfg.AI.Enabled() {
		t.Error("backend should be disabled without credentials")
	}
	if cfg.Media.DBPath != "" {
		t.Errorf("default media path should be empty, got %q", cfg.Media.DBPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("AI_REQUEST_TIMEOUT", "15")
	t.Setenv("MEDIA_DB_PATH", "/tmp/media.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr: got %q", cfg.Server.Addr)
	}
	if cfg.AI.Provider != ProviderGemini || !cfg.AI.Enabled() {
		t.Errorf("gemini provider should be enabled: %+v", cfg.AI)
	}
	if cfg.AI.RequestTimeout != 15*time.Second {
		t.Errorf("timeout: got %v", cfg.AI.RequestTimeout)
	}
	if cfg.Media.DBPath != "/tmp/media.db" {
		t.Errorf("media path: got %q", cfg.Media.DBPath)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearAIEnv(t)

	t.Setenv("AI_PROVIDER", "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}

	clearAIEnv(t)
	t.Setenv("AI_TEMPERATURE", "hot")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable temperature")
	}
}

func TestArkEnabledRules(t *testing.T) {
	cases := []struct {
		name string
		cfg  AIConfig
		want bool
	}{
		{"api key and model", AIConfig{Provider: ProviderArk, APIKey: "k", Model: "m"}, true},
		{"ak/sk and model", AIConfig{Provider: ProviderArk, AccessKey: "a", SecretKey: "s", Model: "m"}, true},
		{"model only", AIConfig{Provider: ProviderArk, Model: "m"}, false},
		{"key only", AIConfig{Provider: ProviderArk, APIKey: "k"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Enabled(); got != tc.want {
				t.Errorf("Enabled() = %v, want %v", got, tc.want)
			}
		})
	}
}
