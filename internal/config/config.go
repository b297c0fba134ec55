// Package config loads vb6cst.toml, the optional tool configuration
// discovered by walking up from the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest the tool looks for.
const FileName = "vb6cst.toml"

// Config is the full tool configuration with defaults applied.
type Config struct {
	Output  Output  `toml:"output"`
	Sources Sources `toml:"sources"`
}

// Output controls diagnostic rendering.
type Output struct {
	// Color is "auto", "on" or "off".
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// Sources controls which files directory commands pick up.
type Sources struct {
	Extensions []string `toml:"extensions"`
}

// Default returns the configuration used when no vb6cst.toml exists.
func Default() Config {
	return Config{
		Output: Output{
			Color:          "auto",
			MaxDiagnostics: 256,
		},
		Sources: Sources{
			Extensions: []string{".bas", ".cls", ".frm"},
		},
	}
}

// Find walks up from startDir to locate vb6cst.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load discovers and decodes the configuration, falling back to
// defaults when no file exists. Unknown keys are an error so typos do
// not silently disable settings.
func Load(startDir string) (Config, error) {
	cfg := Default()
	path, ok, err := Find(startDir)
	if err != nil {
		return cfg, err
	}
	if !ok {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Output.MaxDiagnostics <= 0 {
		cfg.Output.MaxDiagnostics = Default().Output.MaxDiagnostics
	}
	if len(cfg.Sources.Extensions) == 0 {
		cfg.Sources.Extensions = Default().Sources.Extensions
	}
	return cfg, nil
}
