package source

import (
	"bytes"
	"path/filepath"
	"slices"
)

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	crlf    = []byte("\r\n")
	lf      = []byte("\n")
)

// normalizeCRLF turns "\r\n" into "\n". A lone "\r" stays: PHP treats it as
// ordinary text inside strings and inline HTML.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, lf), true
}

func removeBOM(content []byte) ([]byte, bool) {
	trimmed, found := bytes.CutPrefix(content, utf8BOM)
	return trimmed, found
}

// buildLineIndex records the offset of every '\n'.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, lf))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return out
		}
		off += i
		out = append(out, uint32(off))
		off++
	}
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// позиция первого '\n' не раньше off и есть 0-based номер строки
	line, _ := slices.BinarySearch(lineIdx, off)
	if line == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	return LineCol{Line: uint32(line + 1), Col: off - lineIdx[line-1]}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
