package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ucfix/internal/detect"
	"ucfix/internal/fix"
	"ucfix/internal/source"
)

// DefaultFixPasses bounds the scan-repair-rescan loop. The single-shot
// paren detectors surface one finding per scan, so several passes may be
// needed before a document converges.
const DefaultFixPasses = 4

// FixOptions configures repair application over files.
type FixOptions struct {
	Options
	Apply     fix.ApplyOptions
	Passes    int    // 0 means DefaultFixPasses
	Backup    bool   // write <path>.bak with the original text, once
	OutputDir string // when set, write fixed files here instead of in place
}

func (o FixOptions) passes() int {
	if o.Passes <= 0 {
		return DefaultFixPasses
	}
	return o.Passes
}

// FixFileResult summarises repair application on one file.
type FixFileResult struct {
	Path      string
	OutPath   string
	Passes    int
	Applied   []fix.AppliedRepair
	Skipped   []fix.SkippedRepair
	Remaining int // issues still reported by the final re-scan
	Changed   bool
}

// FixFile loads path, repeatedly scans and applies the selected repairs
// against the evolving text, and writes the result. Each pass applies the
// repairs of one scan in order; the text is re-scanned before the next
// pass, which is the only way offsets ever get trusted again.
func FixFile(fileSet *source.FileSet, path string, opts FixOptions) (*FixFileResult, error) {
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return fixLoaded(fileSet, id, path, opts)
}

// writeBackup preserves the pre-fix text at <path>.bak. An existing backup
// is never overwritten: the first one keeps the true original.
func writeBackup(path, original string) error {
	bakPath := path + ".bak"
	if _, err := os.Stat(bakPath); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat backup %s: %w", bakPath, err)
	}
	if err := os.WriteFile(bakPath, []byte(original), 0o644); err != nil {
		return fmt.Errorf("write backup %s: %w", bakPath, err)
	}
	return nil
}

// FixDir applies repairs to every UnrealScript file under dir, one
// independent scan-and-repair cycle per file, parallelized across files.
// A single document is never repaired from two goroutines.
func FixDir(ctx context.Context, dir string, opts FixOptions) (*source.FileSet, []FixFileResult, error) {
	files, err := listSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// preload serially; FileSet mutation is not concurrency-safe
	fileIDs := make(map[string]source.FileID, len(files))
	for _, path := range files {
		if id, err := fileSet.Load(path); err == nil {
			fileIDs[path] = id
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	results := make([]FixFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			id, ok := fileIDs[path]
			if !ok {
				results[i] = FixFileResult{Path: path}
				return nil
			}
			res, err := fixLoaded(fileSet, id, path, opts)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// fixLoaded is FixFile for an already-loaded file.
func fixLoaded(fileSet *source.FileSet, id source.FileID, path string, opts FixOptions) (*FixFileResult, error) {
	file := fileSet.Get(id)
	original := string(file.Content)
	text := original

	result := &FixFileResult{Path: path}
	for pass := 0; pass < opts.passes(); pass++ {
		issues := detect.Scan(text, opts.Detect)
		res, err := fix.ApplyAll(text, issues, opts.Apply)
		result.Skipped = append(result.Skipped, res.Skipped...)
		if errors.Is(err, fix.ErrNoRepairs) {
			break
		}
		if err != nil {
			return result, err
		}
		result.Applied = append(result.Applied, res.Applied...)
		result.Passes++
		text = res.Doc

		if opts.Apply.Mode == fix.ApplyModeOnce {
			break
		}
	}

	result.Remaining = len(detect.Scan(text, opts.Detect))
	result.Changed = text != original
	if !result.Changed {
		result.OutPath = path
		return result, nil
	}

	outPath := path
	if opts.OutputDir != "" {
		rel, err := source.RelativePath(path, fileSet.BaseDir())
		if err != nil {
			rel = source.BaseName(path)
		}
		outPath = filepath.Join(opts.OutputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return result, fmt.Errorf("create output dir: %w", err)
		}
	} else if opts.Backup {
		if err := writeBackup(path, original); err != nil {
			return result, err
		}
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(outPath, []byte(text), mode); err != nil {
		return result, fmt.Errorf("write %s: %w", outPath, err)
	}
	result.OutPath = outPath
	return result, nil
}
