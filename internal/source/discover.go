package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverOptions controls which files Discover picks up.
type DiscoverOptions struct {
	Extensions []string // without dot; empty means "php"
	Excludes   []string // slash-separated globs, "**" matches any number of segments
}

// Discover walks roots and returns matching files sorted by path.
// A root may also be a single file, which is returned as is.
func Discover(roots []string, opts DiscoverOptions) ([]string, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{"php"}
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		path = normalizePath(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			slashed := filepath.ToSlash(path)
			if excluded(slashed, opts.Excludes) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !hasExtension(path, exts) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil && !errors.Is(err, filepath.SkipAll) {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, exts []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, want := range exts {
		if strings.EqualFold(ext, strings.TrimPrefix(want, ".")) {
			return true
		}
	}
	return false
}

func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(filepath.ToSlash(pattern), path) {
			return true
		}
	}
	return false
}

// matchGlob matches slash-separated path against pattern segment by segment.
func matchGlob(pattern, path string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(strings.TrimPrefix(path, "./"), "/"))
}

func matchSegments(pattern, path []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(path); i++ {
				if matchSegments(rest, path[i:]) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 {
			return false
		}
		if ok, err := filepath.Match(pattern[0], path[0]); err != nil || !ok {
			return false
		}
		pattern, path = pattern[1:], path[1:]
	}
	return len(path) == 0
}
