package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "CORS_ALLOW_ORIGINS", "DATABASE_URL", "REDIS_URL",
		"LLM_ENDPOINT", "LLM_API_KEY", "LLM_MODEL", "LLM_MAX_RETRIES",
		"LLM_TIMEOUT_SECONDS", "MAX_TEXT_LENGTH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("unexpected env %q", cfg.Env)
	}
	if cfg.LLMModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model %q", cfg.LLMModel)
	}
	if cfg.LLMMaxRetries != 2 || cfg.LLMTimeoutSeconds != 30 || cfg.MaxTextLength != 12000 {
		t.Fatalf("unexpected llm defaults %+v", cfg)
	}
	if len(cfg.CORSAllowOrigins) != 1 || cfg.CORSAllowOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowOrigins)
	}
	if cfg.DatabaseURL != "" || cfg.RedisURL != "" || cfg.LLMAPIKey != "" {
		t.Fatalf("expected optional settings empty, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "Production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com ,")
	t.Setenv("LLM_MAX_RETRIES", "5")
	t.Setenv("LLM_TIMEOUT_SECONDS", "10")
	t.Setenv("MAX_TEXT_LENGTH", "4000")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("unexpected env %q", cfg.Env)
	}
	if len(cfg.CORSAllowOrigins) != 2 {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowOrigins)
	}
	if cfg.LLMMaxRetries != 5 || cfg.LLMTimeoutSeconds != 10 || cfg.MaxTextLength != 4000 {
		t.Fatalf("unexpected llm overrides %+v", cfg)
	}
}

func TestLoadIgnoresInvalidInts(t *testing.T) {
	t.Setenv("LLM_MAX_RETRIES", "many")
	t.Setenv("LLM_TIMEOUT_SECONDS", "-1")

	cfg := Load()
	if cfg.LLMMaxRetries != 2 {
		t.Fatalf("expected default retries, got %d", cfg.LLMMaxRetries)
	}
	if cfg.LLMTimeoutSeconds != 30 {
		t.Fatalf("expected default timeout, got %d", cfg.LLMTimeoutSeconds)
	}
}
