package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dragonling/internal/dragon"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lang != dragon.DefaultLang {
		t.Errorf("lang = %q, want %q", cfg.Lang, dragon.DefaultLang)
	}
	if cfg.TickInterval != dragon.TickInterval {
		t.Errorf("tick interval = %v, want %v", cfg.TickInterval, dragon.TickInterval)
	}
	if cfg.StatePath != "" {
		t.Errorf("state path = %q, want empty", cfg.StatePath)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "lang: fr\nstate_path: /tmp/dragon.json\ntick_interval: 5s\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lang != "fr" {
		t.Errorf("lang = %q, want fr", cfg.Lang)
	}
	if cfg.StatePath != "/tmp/dragon.json" {
		t.Errorf("state path = %q", cfg.StatePath)
	}
	if cfg.TickInterval != 5*time.Second {
		t.Errorf("tick interval = %v, want 5s", cfg.TickInterval)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("lang: en\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DRAGONLING_LANG", "fr")
	t.Setenv("DRAGONLING_STATE_PATH", "/tmp/env.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lang != "fr" {
		t.Errorf("lang = %q, want the env fr", cfg.Lang)
	}
	if cfg.StatePath != "/tmp/env.json" {
		t.Errorf("state path = %q, want the env value", cfg.StatePath)
	}
}

func TestLoadRejectsUnknownLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("lang: klingon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("want an error for an unknown language")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("lang: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("want an error for malformed yaml")
	}
}

func TestLoadNormalizesNonPositiveInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tick_interval: -3s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickInterval != dragon.TickInterval {
		t.Errorf("tick interval = %v, want the default", cfg.TickInterval)
	}
}
