package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/gobwas/glob"
	"go.trai.ch/zerr"
)

// Walker enumerates candidate source files under a project root, skipping
// VCS metadata and configured ignore patterns.
type Walker struct {
	ignores []glob.Glob
}

// NewWalker compiles the ignore patterns once. Patterns match against path
// segments (directory or file base names), e.g. "node_modules" or "*.min.js".
func NewWalker(ignores []string) (*Walker, error) {
	w := &Walker{ignores: make([]glob.Glob, 0, len(ignores))}
	for _, pattern := range ignores {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid ignore pattern"), "pattern", pattern)
		}
		w.ignores = append(w.ignores, g)
	}
	return w, nil
}

// WalkFiles yields the files under root whose extension is in extensions.
// Yielded paths start with root, as produced by filepath.WalkDir.
func (w *Walker) WalkFiles(root string, extensions []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if p != root && (d.Name() == ".git" || d.Name() == ".jj" || w.ignored(d.Name())) {
					return filepath.SkipDir
				}
				return nil
			}

			if w.ignored(d.Name()) || !hasExtension(p, extensions) {
				return nil
			}

			if !yield(p) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) ignored(name string) bool {
	for _, g := range w.ignores {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// hasExtension checks suffixes rather than filepath.Ext because multi-part
// extensions like ".d.ts" must win over their ".ts" tail.
func hasExtension(p string, extensions []string) bool {
	for _, ext := range extensions {
		if len(p) > len(ext) && p[len(p)-len(ext):] == ext {
			return true
		}
	}
	return false
}
