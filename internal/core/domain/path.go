package domain

import (
	"path"
	"strings"
)

// NormalizePath maps platform-specific separators to forward slashes and
// collapses redundant path elements. Dependency-graph keys and members go
// through this so the same file is never recorded under two spellings.
// An empty input stays empty.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}
