package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"vb6cst/internal/config"
)

func TestDefaultsWhenNoFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Color != "auto" || cfg.Output.MaxDiagnostics != 256 {
		t.Errorf("wrong defaults: %+v", cfg.Output)
	}
	if len(cfg.Sources.Extensions) != 3 {
		t.Errorf("wrong default extensions: %v", cfg.Sources.Extensions)
	}
}

func TestLoadFromParentDirectory(t *testing.T) {
	root := t.TempDir()
	content := "[output]\ncolor = \"off\"\nmax_diagnostics = 10\n"
	if err := os.WriteFile(filepath.Join(root, config.FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := config.Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Color != "off" || cfg.Output.MaxDiagnostics != 10 {
		t.Errorf("config not picked up from parent: %+v", cfg.Output)
	}
	// Unset keys keep their defaults.
	if len(cfg.Sources.Extensions) != 3 {
		t.Errorf("defaults lost: %v", cfg.Sources.Extensions)
	}
}

func TestUnknownKeyIsAnError(t *testing.T) {
	root := t.TempDir()
	content := "[output]\ncolour = \"on\"\n"
	if err := os.WriteFile(filepath.Join(root, config.FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(root); err == nil {
		t.Errorf("expected an error for the misspelled key")
	}
}
