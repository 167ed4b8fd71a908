package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("EXTSURVEY_HOME", t.TempDir())
	t.Setenv("EXTSURVEY_LOG_LEVEL", "debug")

	Load()

	if got := Get(KeyWorkDir); got != "work" {
		t.Errorf("Get(%q) = %q, want work", KeyWorkDir, got)
	}
	if got := Get(KeyRegistryFile); got != "extensions.toml" {
		t.Errorf("Get(%q) = %q, want extensions.toml", KeyRegistryFile, got)
	}
	if got := Get(KeyLogLevel); got != "debug" {
		t.Errorf("Get(%q) = %q, want debug from env", KeyLogLevel, got)
	}
}

func TestSet_WritesFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	home := t.TempDir()
	t.Setenv("EXTSURVEY_HOME", home)

	Load()
	if err := Set(KeyWorkDir, "/tmp/extensions"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !containsLine(string(data), "work_dir: /tmp/extensions") {
		t.Errorf("config file missing work_dir:\n%s", data)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("EXTSURVEY_HOME", t.TempDir())

	if err := Set("bogus", "x"); err == nil {
		t.Error("expected error for unknown key, got nil")
	}
}

func containsLine(s, line string) bool {
	for _, l := range strings.Split(s, "\n") {
		if l == line {
			return true
		}
	}
	return false
}
