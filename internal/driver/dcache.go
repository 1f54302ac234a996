package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sable/internal/diag"
	"sable/internal/source"
)

// diskCacheSchemaVersion invalidates older payloads when the format
// changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

// DigestOf hashes a file's content.
func DigestOf(content []byte) Digest {
	return sha256.Sum256(content)
}

// DiskCache stores per-file analysis outcomes keyed by content digest,
// so re-checking an unchanged tree replays diagnostics instead of
// re-running the pipeline. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome for one file.
type DiskPayload struct {
	Schema      uint16
	Path        string
	Diagnostics []CachedDiagnostic
}

// CachedDiagnostic is the flat serialized form of one diagnostic.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Line     uint32
	Start    uint32
	End      uint32
}

// OpenDiskCache initializes a cache under the user's cache directory,
// honoring XDG_CACHE_HOME.
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

// OpenDiskCacheAt initializes a cache rooted at dir, for tests and
// sandboxed runs.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and atomically writes a payload.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
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
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; a missing entry or a stale schema is a miss,
// not an error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// replayCached rebuilds a Result from the cache when the file content
// digest matches a stored payload.
func (o Options) replayCached(path string, file *source.File) (*Result, bool) {
	if o.Cache == nil {
		return nil, false
	}
	var payload DiskPayload
	ok, err := o.Cache.Get(DigestOf(file.Content), &payload)
	if err != nil || !ok {
		return nil, false
	}
	bag := diag.NewBag(o.maxDiagnostics())
	for _, d := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			File:     path,
			Primary: source.Loc{
				Line: d.Line,
				Span: source.NewSpan(d.Start, d.End),
			},
		})
	}
	return &Result{Path: path, File: file, Bag: bag, Cached: true}, true
}

// storeCached writes res's diagnostics back under the file digest.
// Cache write failures are ignored; the analysis already succeeded.
func (o Options) storeCached(path string, file *source.File, res *Result) {
	if o.Cache == nil {
		return
	}
	payload := &DiskPayload{Schema: diskCacheSchemaVersion, Path: path}
	for _, d := range res.Bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Line:     d.Primary.Line,
			Start:    d.Primary.Span.Start,
			End:      d.Primary.Span.End,
		})
	}
	_ = o.Cache.Put(DigestOf(file.Content), payload)
}
