package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("TEMPLATE_DIR", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SECURE_COOKIES", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DBPath != "blog.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TemplateDir != "web/templates" {
		t.Errorf("TemplateDir = %q", cfg.TemplateDir)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.SecureCookies {
		t.Error("SecureCookies default should be false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SECURE_COOKIES", "true")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies not set")
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := Load()
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want default", cfg.SessionTTL)
	}
}
