package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
	// FileExternal marks library sources that are reflected but never linted.
	FileExternal
	// fileLoaded is set once Content holds the normalized bytes.
	fileLoaded
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Loaded reports whether the file content has been read.
func (f *File) Loaded() bool {
	return f != nil && f.Flags&fileLoaded != 0
}

// External reports whether the file is a library (reflection-only) source.
func (f *File) External() bool {
	return f != nil && f.Flags&FileExternal != 0
}
