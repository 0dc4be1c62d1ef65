package source

import (
	"fmt"
	"slices"
	"sync"
)

// Manager tracks the sources of one analysis run.
//
// User-defined sources are parsed, reflected and linted. External sources
// (vendor/library code) only contribute to the codebase reflection.
// Enumeration order is the registration order, which callers keep sorted so
// that every run sees the same order regardless of scheduling.
type Manager struct {
	mu       sync.RWMutex
	fs       *FileSet
	user     []FileID
	external []FileID
	seen     map[FileID]struct{}
}

// NewManager creates a manager over a fresh FileSet rooted at baseDir.
func NewManager(baseDir string) *Manager {
	return &Manager{
		fs:   NewFileSetWithBase(baseDir),
		seen: make(map[FileID]struct{}),
	}
}

// FileSet exposes the underlying file set (for span resolution in reporters).
func (m *Manager) FileSet() *FileSet {
	return m.fs
}

// AddUserDefined registers a path that will be linted.
func (m *Manager) AddUserDefined(path string) FileID {
	return m.track(m.fs.Register(path, 0), false)
}

// AddExternal registers a path that is only reflected.
func (m *Manager) AddExternal(path string) FileID {
	return m.track(m.fs.Register(path, FileExternal), true)
}

// AddVirtual registers in-memory content.
func (m *Manager) AddVirtual(name string, content []byte, external bool) FileID {
	flags := FileVirtual
	if external {
		flags |= FileExternal
	}
	return m.track(m.fs.Add(name, content, flags), external)
}

func (m *Manager) track(id FileID, external bool) FileID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seen[id]; ok {
		return id
	}
	m.seen[id] = struct{}{}
	if external {
		m.external = append(m.external, id)
	} else {
		m.user = append(m.user, id)
	}
	return id
}

// UserDefined returns user-defined source ids in enumeration order.
func (m *Manager) UserDefined() []FileID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.user)
}

// External returns external source ids in enumeration order.
func (m *Manager) External() []FileID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.external)
}

// Load returns the file for id, reading it from disk on first use.
// Safe to call from concurrent tasks.
func (m *Manager) Load(id FileID) (*File, error) {
	if !m.fs.HasFile(id) {
		return nil, fmt.Errorf("unknown source id %d", id)
	}
	path, loaded := m.fs.state(id)
	if loaded {
		return m.fs.Get(id), nil
	}
	content, flags, err := readNormalized(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return m.fs.Fill(id, content, flags), nil
}
