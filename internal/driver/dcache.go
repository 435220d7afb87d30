package driver

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ucfix/internal/detect"
	"ucfix/internal/diag"
	"ucfix/internal/source"
)

// cacheSchemaVersion invalidates every stored payload when the on-disk
// format changes.
const cacheSchemaVersion uint16 = 2

// DiskCache stores per-file scan results keyed by content hash, so a
// directory rescan can skip files that have not changed. Thread-safe for
// concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the serialized scan result for one content hash. The
// detect options are part of the payload: a cache entry produced under a
// different mode never satisfies a lookup.
type CachePayload struct {
	Schema        uint16
	Mode          uint8
	UnmatchedOpen bool
	MaxIssues     int // effective limit; a truncated list must not serve a larger one
	Issues        []diag.Issue
}

// OpenDiskCache initializes a disk cache at the standard location
// ($XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// "scans" subdirectory keeps the cache root readable and easy to clear
	return filepath.Join(c.dir, "scans", hexKey+".mp")
}

// Put serializes and writes a payload via temp file + atomic rename.
func (c *DiskCache) Put(key [32]byte, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload for the given key. Missing entries and entries from
// another schema version report false without error.
func (c *DiskCache) Get(key [32]byte, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	// #nosec G304 -- path is derived from a content hash under our dir
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		// a corrupt entry is treated as a miss, not a failure
		return false, nil
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// cachedIssues returns the cached issue list for file under opts, if the
// cache holds a matching entry.
func cachedIssues(opts Options, file *source.File) ([]diag.Issue, bool) {
	if opts.Cache == nil {
		return nil, false
	}
	var payload CachePayload
	ok, err := opts.Cache.Get(file.Hash, &payload)
	if err != nil || !ok {
		return nil, false
	}
	if detect.Mode(payload.Mode) != opts.Detect.Mode ||
		payload.UnmatchedOpen != opts.Detect.UnmatchedOpen ||
		payload.MaxIssues != opts.Detect.Max() {
		return nil, false
	}
	return payload.Issues, true
}

// storeIssues records a scan result; the cache is best-effort and write
// failures are ignored.
func storeIssues(opts Options, file *source.File, issues []diag.Issue) {
	if opts.Cache == nil {
		return
	}
	_ = opts.Cache.Put(file.Hash, &CachePayload{
		Schema:        cacheSchemaVersion,
		Mode:          uint8(opts.Detect.Mode),
		UnmatchedOpen: opts.Detect.UnmatchedOpen,
		MaxIssues:     opts.Detect.Max(),
		Issues:        issues,
	})
}
