// Package driver orchestrates scans and fixes over real files: loading and
// normalizing sources, walking directories in parallel, applying repair
// passes with the re-scan discipline the core requires, and caching scan
// results between runs.
//
// The core engine in internal/detect and internal/fix stays pure; every
// piece of I/O lives here.
package driver

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"ucfix/internal/detect"
	"ucfix/internal/diag"
	"ucfix/internal/source"
)

// DefaultExtensions are the UnrealScript source extensions scanned when
// the caller does not configure its own set.
var DefaultExtensions = []string{".uc", ".uci"}

// Options configures scanning.
type Options struct {
	Detect     detect.Options
	Jobs       int      // max parallel workers for directories, 0 = GOMAXPROCS
	Extensions []string // nil means DefaultExtensions
	Cache      *DiskCache
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

// FileResult holds one file's scan outcome. Err is set when the file could
// not be loaded; the document-level scan itself never fails.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Issues    []diag.Issue
	FromCache bool
	Err       error
}

// listSourceFiles returns the sorted list of UnrealScript files under dir.
func listSourceFiles(dir string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range extensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order regardless of walk details
	sort.Strings(files)
	return files, nil
}
