package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load with no file: %v", err)
	}
	if cfg.Server.Listen != ":8080" {
		t.Fatalf("listen default = %q", cfg.Server.Listen)
	}
	if cfg.Log.Verbosity != 1 {
		t.Fatalf("verbosity default = %d", cfg.Log.Verbosity)
	}
	if cfg.Dataset.MaxRows != 100000 || cfg.Dataset.MaxDatasets != 16 {
		t.Fatalf("dataset defaults = %+v", cfg.Dataset)
	}
	if cfg.Report.Dir != "./out" {
		t.Fatalf("report dir default = %q", cfg.Report.Dir)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen: ":9090"
log:
  verbosity: 2
  file: engine.log
dataset:
  max_rows: 500
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Listen != ":9090" {
		t.Fatalf("listen = %q", cfg.Server.Listen)
	}
	if cfg.Log.Verbosity != 2 || cfg.Log.File != "engine.log" {
		t.Fatalf("log = %+v", cfg.Log)
	}
	if cfg.Dataset.MaxRows != 500 {
		t.Fatalf("max_rows = %d", cfg.Dataset.MaxRows)
	}
	// keys absent from the file keep their defaults
	if cfg.Server.ReadTimeoutSec != 15 || cfg.Dataset.MaxDatasets != 16 {
		t.Fatalf("untouched defaults changed: %+v %+v", cfg.Server, cfg.Dataset)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  listen: \":9090\"\n")
	t.Setenv("OPTION_QUOTE_LISTEN", ":7070")
	t.Setenv("OPTION_QUOTE_DATASET_MAX_ROWS", "250")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Listen != ":7070" {
		t.Fatalf("listen = %q, env should win over the file", cfg.Server.Listen)
	}
	if cfg.Dataset.MaxRows != 250 {
		t.Fatalf("max_rows = %d, env should win over the default", cfg.Dataset.MaxRows)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "server: [not a map\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestLoadRejectsVerbosityOutOfRange(t *testing.T) {
	path := writeConfigFile(t, "log:\n  verbosity: 9\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error for verbosity out of range")
	}
}
