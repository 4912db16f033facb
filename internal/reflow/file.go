package reflow

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Result describes one processed file.
type Result struct {
	Path    string
	Changed bool
}

// ProcessFile reflows path in place. The rewrite is destructive (no temp
// file) and happens even when nothing changed; the file's permission bits
// are preserved. Changed reports whether the content differs from before.
func ProcessFile(path string, opts Options) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	reflowed := Reflow(data, opts)

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, reflowed, mode.Perm()); err != nil {
		return Result{Path: path}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return Result{Path: path, Changed: !bytes.Equal(data, reflowed)}, nil
}

// ProcessPaths processes files and directories sequentially. Files are taken
// as given; directories are walked recursively for .m files. The run is
// fail-fast: the first error aborts it, returning the results accumulated so
// far.
func ProcessPaths(paths []string, opts Options) ([]Result, error) {
	files, err := collectMatlabFiles(paths)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))
	for _, path := range files {
		res, err := ProcessFile(path, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// collectMatlabFiles expands the argument list, keeping explicit files in
// the order given and walking directories for .m files. Duplicates are
// dropped.
func collectMatlabFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if filepath.Ext(path) == ".m" {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
