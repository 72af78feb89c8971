package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starfield.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFindsRepoConfigUpward(t *testing.T) {
	cfg, path, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join("configs", "starfield.yml")) {
		t.Fatalf("path: got=%q want suffix configs/starfield.yml", path)
	}
	if cfg.Galaxy.Stars != 100 || len(cfg.Galaxy.Factions) != 2 {
		t.Fatalf("galaxy: got=%+v", cfg.Galaxy)
	}
	if cfg.Debug.ReadTimeout != 5*time.Second {
		t.Fatalf("read_timeout: got=%v want=5s", cfg.Debug.ReadTimeout)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "galaxy:\n  stars: 12\n")
	cfg, got, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != path {
		t.Fatalf("path: got=%q want=%q", got, path)
	}
	if cfg.Galaxy.Stars != 12 {
		t.Fatalf("stars: got=%d want=12", cfg.Galaxy.Stars)
	}
	if cfg.View.HoverRadius != 10 || cfg.View.MinScale != 50 {
		t.Fatalf("view defaults: got=%+v", cfg.View)
	}
	if len(cfg.Galaxy.Factions) != 2 || cfg.Galaxy.Factions[0].Name != "us" {
		t.Fatalf("faction defaults: got=%+v", cfg.Galaxy.Factions)
	}
	if cfg.Window.Width != 900 || cfg.Window.SidebarWidth != 260 {
		t.Fatalf("window defaults: got=%+v", cfg.Window)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "galaxy:\n  stars: 12\n  seed: 3\n")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs)
	if err := fs.Parse([]string{"--config", path, "--stars=40"}); err != nil {
		t.Fatal(err)
	}
	cfg, got, err := Load("", fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != path {
		t.Fatalf("path: got=%q want=%q", got, path)
	}
	if cfg.Galaxy.Stars != 40 {
		t.Fatalf("stars: got=%d want=40", cfg.Galaxy.Stars)
	}
	if cfg.Galaxy.Seed != 3 {
		t.Fatalf("seed: got=%d want=3 (flag not given)", cfg.Galaxy.Seed)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"negative stars": "galaxy:\n  stars: -1\n",
		"unnamed faction": "galaxy:\n  factions:\n    - name: \"\"\n      groups: 1\n",
		"zero min scale": "view:\n  min_scale: 0\n",
		"initial<min":    "view:\n  initial_scale: 10\n  min_scale: 50\n",
		"sidebar":        "window:\n  width: 200\n  sidebar_width: 300\n",
		"bad duration":   "debug:\n  read_timeout: soon\n",
	}
	for name, body := range cases {
		if _, _, err := Load(writeConfig(t, body), nil); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yml"), nil); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestWatchRequiresFile(t *testing.T) {
	if err := Watch("", func(*Config) {}, nil); err == nil {
		t.Fatal("expected an error without a config file")
	}
}
