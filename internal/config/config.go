// Package config loads optional reflow defaults from a .mreflow.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"mreflow/internal/reflow"
)

// FileName is the defaults file looked up in the working directory and its
// parents.
const FileName = ".mreflow.toml"

// File holds values read from a defaults file. Pointer fields distinguish
// "absent" from an explicit zero value.
type File struct {
	LineLength               *int  `toml:"line-length"`
	IgnoreIndented           *bool `toml:"ignore-indented"`
	AlternateCapitalHandling *bool `toml:"alternate-capital-handling"`
}

// Find walks from startDir upward looking for a defaults file. It returns
// the path and whether one was found.
func Find(startDir string) (string, bool, error) {
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

// Load parses the defaults file at path.
func Load(path string) (File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Apply overlays the file's values onto opts and returns the result. Fields
// absent from the file keep their current value.
func (f File) Apply(opts reflow.Options) reflow.Options {
	if f.LineLength != nil {
		opts.LineLength = *f.LineLength
	}
	if f.IgnoreIndented != nil {
		opts.IgnoreIndented = *f.IgnoreIndented
	}
	if f.AlternateCapitalHandling != nil {
		opts.AlternateCapitalHandling = *f.AlternateCapitalHandling
	}
	return opts
}
