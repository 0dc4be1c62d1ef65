package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"quill/internal/reflection"
	"quill/internal/source"
	"quill/internal/version"
)

// Bump when the layout of reflection.Codebase changes.
const fragmentSchemaVersion uint16 = 1

// FragmentCache keeps per-file reflection fragments on disk, keyed by the
// content hash of the file. Safe for concurrent use.
type FragmentCache struct {
	mu  sync.RWMutex
	dir string
}

type fragmentPayload struct {
	Schema   uint16
	Tool     string
	Fragment *reflection.Codebase
}

// OpenFragmentCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenFragmentCache(app string) (*FragmentCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewFragmentCache(filepath.Join(base, app))
}

// NewFragmentCache opens a cache rooted at dir, creating it if needed.
func NewFragmentCache(dir string) (*FragmentCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FragmentCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *FragmentCache) Dir() string { return c.dir }

// pathFor mixes the tool version into the key so a new reflector never
// reads fragments written by an old one.
func (c *FragmentCache) pathFor(content [32]byte) string {
	h := sha256.New()
	_, _ = h.Write(content[:])
	_, _ = h.Write([]byte(version.Version))
	key := hex.EncodeToString(h.Sum(nil))
	// подкаталог по первым двум символам, чтобы не раздувать одну директорию
	return filepath.Join(c.dir, "fragments", key[:2], key+".mp")
}

// Put stores fragment for content. It must be called before the fragment is
// handed to the merge, which takes ownership of it.
func (c *FragmentCache) Put(content [32]byte, fragment *reflection.Codebase) error {
	if c == nil || fragment == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(content)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	payload := fragmentPayload{Schema: fragmentSchemaVersion, Tool: version.Version, Fragment: fragment}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get loads the fragment for content and rebases its spans onto file.
// A stale or foreign payload is a miss, not an error.
func (c *FragmentCache) Get(content [32]byte, file source.FileID) (*reflection.Codebase, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(content))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload fragmentPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decode cached fragment: %w", err)
	}
	if payload.Schema != fragmentSchemaVersion || payload.Tool != version.Version || payload.Fragment == nil {
		return nil, false, nil
	}
	frag := payload.Fragment
	if frag.Classes == nil {
		frag.Classes = make(map[string]*reflection.Class)
	}
	if frag.Functions == nil {
		frag.Functions = make(map[string]*reflection.Function)
	}
	if frag.Constants == nil {
		frag.Constants = make(map[string]*reflection.Constant)
	}
	frag.Rebase(file)
	return frag, true, nil
}

// DropAll removes every cached fragment.
func (c *FragmentCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим целиком
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
