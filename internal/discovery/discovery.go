package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoInput is returned when the arguments resolve to no file at all
var ErrNoInput = errors.New("no file found")

// Walker expands file and directory arguments into a list of files
type Walker struct {
	logger   *slog.Logger
	warnings []string
}

// NewWalker creates a new walker
func NewWalker(logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{logger: logger}
}

// Collect resolves args into a sorted, duplicate-free list of files. Regular
// files are kept as given; directories are walked recursively, skipping
// hidden files and hidden subtrees. A directory named explicitly is always
// walked even when hidden.
func (w *Walker) Collect(args []string) ([]string, error) {
	w.warnings = nil
	seen := make(map[string]struct{})

	add := func(path string) {
		seen[filepath.Clean(path)] = struct{}{}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			w.warn(fmt.Sprintf("%s is not a file or directory", arg), err)
			continue
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		w.walk(arg, add)
	}

	if len(seen) == 0 {
		return nil, ErrNoInput
	}

	files := make([]string, 0, len(seen))
	for path := range seen {
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// Warnings returns the messages about arguments that were skipped by the
// last Collect call
func (w *Walker) Warnings() []string {
	return w.warnings
}

// walk recursively scans root for regular files
func (w *Walker) walk(root string, add func(string)) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		// Skip on error
		if err != nil {
			w.logger.Warn("error walking path", "path", path, "error", err)
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		if path != root && isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			add(path)
		}
		return nil
	})
	if err != nil {
		w.warn(fmt.Sprintf("failed to scan %s", root), err)
	}
}

func (w *Walker) warn(msg string, err error) {
	w.logger.Warn(msg, "error", err)
	w.warnings = append(w.warnings, msg)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
