package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ucfix/internal/detect"
	"ucfix/internal/source"
)

// ScanFile loads one file into fs and scans it.
func ScanFile(fileSet *source.FileSet, path string, opts Options) (*FileResult, error) {
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	file := fileSet.Get(id)

	if issues, ok := cachedIssues(opts, file); ok {
		return &FileResult{Path: path, FileID: id, Issues: issues, FromCache: true}, nil
	}

	issues := detect.Scan(string(file.Content), opts.Detect)
	storeIssues(opts, file, issues)
	return &FileResult{Path: path, FileID: id, Issues: issues}, nil
}

// ScanDir scans every UnrealScript file under dir. Files are preloaded
// serially (the FileSet is not safe for concurrent mutation), then scanned
// in parallel; each document's scan is independent of the others. Results
// come back in deterministic sorted-path order.
func ScanDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := listSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// index i is unique per goroutine, no mutex needed
	results := make([]FileResult, len(files))

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

			if loadErr, failed := loadErrors[path]; failed {
				results[i] = FileResult{Path: path, Err: loadErr}
				return nil
			}

			id := fileIDs[path]
			file := fileSet.Get(id)

			if issues, ok := cachedIssues(opts, file); ok {
				results[i] = FileResult{Path: path, FileID: id, Issues: issues, FromCache: true}
				return nil
			}

			issues := detect.Scan(string(file.Content), opts.Detect)
			storeIssues(opts, file, issues)
			results[i] = FileResult{Path: path, FileID: id, Issues: issues}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
