package augment

import (
	"crypto/sha256"
	"encoding/hex"

	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
)

// WithFileVersions wraps file enumeration so every returned handle carries a
// content-derived version. Handles are mutated in place and keep their
// identity; a handle that already has a version is left alone, so the
// fingerprint assigned on first enumeration survives every later one.
func WithFileVersions(host ports.ResolvingHost) ports.ResolvingHost {
	return &versioningHost{ResolvingHost: host}
}

type versioningHost struct {
	ports.ResolvingHost
}

func (h *versioningHost) SourceFiles() []*domain.SourceFile {
	files := h.ResolvingHost.SourceFiles()
	for _, f := range files {
		if f.Version != "" {
			continue
		}
		f.Version = ContentVersion(f.Text)
	}
	return files
}

// ContentVersion computes the fingerprint assigned to a source text: the hex
// form of its sha256 digest. Identical text always yields identical versions.
func ContentVersion(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
