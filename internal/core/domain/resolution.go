package domain

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// ResolvedModule is the result of resolving a module name to a concrete file.
// A nil *ResolvedModule means the name did not resolve; that is not an error.
type ResolvedModule struct {
	// Path is the resolved target file path.
	Path string

	// External reports whether the target lives under a package directory
	// (e.g. node_modules) rather than inside the project tree.
	External bool
}

// ResolvedTypeRef is the result of resolving a type-reference directive.
// A nil *ResolvedTypeRef means the directive did not resolve.
type ResolvedTypeRef struct {
	// Path is the resolved declaration file path.
	Path string
}

// ResolutionKind distinguishes the two resolution surfaces sharing one cache.
type ResolutionKind uint8

const (
	// KindModule is a module-name resolution.
	KindModule ResolutionKind = iota
	// KindTypeRef is a type-reference-directive resolution.
	KindTypeRef
)

// DefaultResolutionCacheSize bounds the shared lookup cache when the
// configuration does not say otherwise.
const DefaultResolutionCacheSize = 4096

type resolutionKey struct {
	dir  InternedString
	kind ResolutionKind
	name string
}

// ResolutionCache is the lookup-cache token forwarded to single-name
// resolution so repeated cold lookups of the same name are avoided.
// Both resolution surfaces share one cache; entries are keyed by the
// containing directory, the surface kind and the requested name, so the
// surfaces cannot observe each other's entries.
//
// A nil *ResolutionCache is a valid token meaning "no caching".
type ResolutionCache struct {
	entries *lru.Cache[resolutionKey, *ResolvedModule]
}

// NewResolutionCache creates a bounded resolution cache. Sizes smaller than
// one fall back to DefaultResolutionCacheSize.
func NewResolutionCache(size int) *ResolutionCache {
	if size < 1 {
		size = DefaultResolutionCacheSize
	}
	// lru.New only fails for non-positive sizes, which are handled above.
	entries, _ := lru.New[resolutionKey, *ResolvedModule](size)
	return &ResolutionCache{entries: entries}
}

// Get returns the cached resolution for (dir, kind, name). The second return
// distinguishes a cached miss (nil, true) from an uncached name (nil, false).
func (c *ResolutionCache) Get(dir string, kind ResolutionKind, name string) (*ResolvedModule, bool) {
	if c == nil {
		return nil, false
	}
	return c.entries.Get(resolutionKey{dir: NewInternedString(dir), kind: kind, name: name})
}

// Put stores a resolution outcome, including misses (nil), so negative
// lookups are not repeated either.
func (c *ResolutionCache) Put(dir string, kind ResolutionKind, name string, res *ResolvedModule) {
	if c == nil {
		return
	}
	c.entries.Add(resolutionKey{dir: NewInternedString(dir), kind: kind, name: name}, res)
}

// Len reports the number of cached entries.
func (c *ResolutionCache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
