package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectManifest is an optional ucfix.toml discovered by walking up from
// the scanned path. Command-line flags override whatever it sets.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Scan  scanConfig  `toml:"scan"`
	Fix   fixConfig   `toml:"fix"`
	Files filesConfig `toml:"files"`
}

type scanConfig struct {
	Extended      bool `toml:"extended"`
	UnmatchedOpen bool `toml:"unmatched_open"`
}

type fixConfig struct {
	Backup bool   `toml:"backup"`
	Passes int    `toml:"passes"`
	Output string `toml:"output"`
}

type filesConfig struct {
	Extensions []string `toml:"extensions"`
}

func findUcfixToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ucfix.toml")
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

// loadProjectManifest returns the nearest manifest above startDir, or
// ok=false when none exists. A manifest with defaults only is valid; every
// section is optional.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findUcfixToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if cfg.Fix.Passes < 0 {
		return nil, true, fmt.Errorf("%s: [fix].passes must not be negative", manifestPath)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// manifestDir picks the directory to start the manifest search from.
func manifestDir(targetPath string) string {
	info, err := os.Stat(targetPath)
	if err == nil && info.IsDir() {
		return targetPath
	}
	return filepath.Dir(targetPath)
}
