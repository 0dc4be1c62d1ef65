package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files.
// Files may be registered up front and filled later from concurrent loaders;
// all methods are safe for concurrent use.
type FileSet struct {
	mu      sync.RWMutex
	files   []*File
	index   map[string]FileID // path -> id
	baseDir string            // базовая директория для относительных путей
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates a FileSet that renders relative paths against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   make([]*File, 0),
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// BaseDir returns the base directory, falling back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

func (fileSet *FileSet) nextID() FileID {
	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	return FileID(lenFiles)
}

// Register reserves a FileID for path without reading it.
// Registering the same path twice returns the existing id.
func (fileSet *FileSet) Register(path string, flags FileFlags) FileID {
	normalizedPath := normalizePath(path)

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	if id, ok := fileSet.index[normalizedPath]; ok {
		return id
	}
	id := fileSet.nextID()
	fileSet.files = append(fileSet.files, &File{
		ID:    id,
		Path:  normalizedPath,
		Flags: flags &^ fileLoaded,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and returns a new FileID.
// It always creates a new FileID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	normalizedPath := normalizePath(path)
	file := &File{Path: normalizedPath}
	fill(file, content, flags)

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	file.ID = fileSet.nextID()
	fileSet.files = append(fileSet.files, file)
	// Всегда обновляем индекс на последнюю версию файла
	fileSet.index[normalizedPath] = file.ID
	return file.ID
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Fill sets the content of a registered file. Filling an already loaded
// file is a no-op, so concurrent loaders agree on the first content.
func (fileSet *FileSet) Fill(id FileID, content []byte, flags FileFlags) *File {
	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	file := fileSet.files[id]
	if !file.Loaded() {
		fill(file, content, file.Flags|flags)
	}
	return file
}

func fill(file *File, content []byte, flags FileFlags) {
	file.Content = content
	file.LineIdx = buildLineIndex(content)
	file.Hash = sha256.Sum256(content)
	file.Flags = flags | fileLoaded
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	content, flags, err := readNormalized(path)
	if err != nil {
		return 0, err
	}
	return fileSet.Add(path, content, flags), nil
}

func readNormalized(path string) ([]byte, FileFlags, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return content, flags, nil
}

// Get returns the file metadata for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return fileSet.files[id]
}

func (fileSet *FileSet) state(id FileID) (path string, loaded bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	file := fileSet.files[id]
	return file.Path, file.Loaded()
}

// HasFile reports whether id refers to a file in the set.
func (fileSet *FileSet) HasFile(id FileID) bool {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return int(id) < len(fileSet.files)
}

// Len returns the number of files in the set.
func (fileSet *FileSet) Len() int {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return len(fileSet.files)
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Slice returns the source text covered by span.
func (f *File) Slice(span Span) string {
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	start, end := min(span.Start, lenContent), min(span.End, lenContent)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// GetLine returns the line with the given 1-based number, or "" if absent.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	var start, end, lenLineIdx, lenContent uint32
	var err error
	lenLineIdx, err = safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err = safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the file path: "absolute", "relative" (to baseDir),
// "basename" or "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := relativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)
	default:
		return f.Path
	}
}

func relativePath(path, baseDir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
