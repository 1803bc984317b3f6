package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ODPT_API_KEY", "test-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Station != "Tokyu.Oimachi.Jiyugaoka" || cfg.Direction != "Outbound" {
		t.Errorf("unexpected default station/direction: %s %s", cfg.Station, cfg.Direction)
	}
	if cfg.Display.Width != 20 || cfg.Display.Rows != 4 {
		t.Errorf("unexpected default geometry: %dx%d", cfg.Display.Width, cfg.Display.Rows)
	}
	if cfg.RefreshSeconds != 30 || cfg.TimeoutSeconds != 15 {
		t.Errorf("unexpected default timings: %d %d", cfg.RefreshSeconds, cfg.TimeoutSeconds)
	}
	if cfg.Animation != "paging" || cfg.WindowStart != 10 || cfg.Wipe != "up" {
		t.Errorf("unexpected default animation settings: %s %d %s", cfg.Animation, cfg.WindowStart, cfg.Wipe)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("expected API key from environment, got %q", cfg.APIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ODPT_API_KEY", "test-key")
	path := writeConfig(t, `
station: Tokyu.Toyoko.Jiyugaoka
direction: Inbound
display:
  width: 16
  rows: 2
animation: scrolling
windowStart: 8
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Station != "Tokyu.Toyoko.Jiyugaoka" || cfg.Direction != "Inbound" {
		t.Errorf("overrides not applied: %s %s", cfg.Station, cfg.Direction)
	}
	if cfg.Display.Width != 16 || cfg.Display.Rows != 2 {
		t.Errorf("display overrides not applied: %dx%d", cfg.Display.Width, cfg.Display.Rows)
	}
	if cfg.Animation != "scrolling" || cfg.WindowStart != 8 {
		t.Errorf("animation overrides not applied: %s %d", cfg.Animation, cfg.WindowStart)
	}
	// Fields absent from the file keep their defaults.
	if cfg.RefreshSeconds != 30 || cfg.Wipe != "up" {
		t.Errorf("defaults lost: %d %s", cfg.RefreshSeconds, cfg.Wipe)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad direction", "direction: Sideways\n", "Direction"},
		{"bad animation", "animation: marquee\n", "Animation"},
		{"zero width", "display:\n  width: 0\n", "Width"},
		{"window past display edge", "windowStart: 25\n", "animation window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ODPT_API_KEY", "test-key")
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("expected error mentioning %q, got %v", tt.errPart, err)
			}
		})
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("ODPT_API_KEY", "")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected an error when ODPT_API_KEY is unset")
	}
}
