package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProps(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "id3tool.properties")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAppliesKnownKeys(t *testing.T) {
	path := writeProps(t, "output.directory=/tmp/out\nembed.tags=false\npregap.threshold=150\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDirectory != "/tmp/out" {
		t.Fatalf("OutputDirectory = %q", cfg.OutputDirectory)
	}
	if cfg.EmbedTags {
		t.Fatalf("expected EmbedTags = false")
	}
	if cfg.PregapThreshold != 150 {
		t.Fatalf("PregapThreshold = %d", cfg.PregapThreshold)
	}
}

func TestLoadKeepsDefaultsForUnspecifiedKeys(t *testing.T) {
	path := writeProps(t, "output.directory=/tmp/out\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadRecordsUnknownKeys(t *testing.T) {
	path := writeProps(t, "some.made.up.key=value\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Unknown["some.made.up.key"] != "value" {
		t.Fatalf("Unknown = %v", cfg.Unknown)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeProps(t, "output.directory=/tmp/from-file\n")
	t.Setenv("ID3TOOL_OUTPUT_DIRECTORY", "/tmp/from-env")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDirectory != "/tmp/from-env" {
		t.Fatalf("OutputDirectory = %q, want env override", cfg.OutputDirectory)
	}
}
