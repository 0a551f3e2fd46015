package watcher

import (
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// changeFilter remembers a fast content fingerprint per path so spurious
// write events can be dropped. A path that cannot be read is always reported
// as changed; the scan that follows decides what to do about it.
type changeFilter struct {
	mu     sync.Mutex
	hashes map[string]uint64
}

func newChangeFilter() *changeFilter {
	return &changeFilter{hashes: make(map[string]uint64)}
}

// Changed reports whether the file's content differs from the last time it
// was seen, and records the new fingerprint.
func (f *changeFilter) Changed(path string) bool {
	data, err := os.ReadFile(path) //nolint:gosec // paths come from watch events under the project root
	if err != nil {
		f.Forget(path)
		return true
	}
	sum := xxhash.Sum64(data)

	f.mu.Lock()
	defer f.mu.Unlock()
	prev, seen := f.hashes[path]
	f.hashes[path] = sum
	return !seen || prev != sum
}

// Forget drops the fingerprint for a path.
func (f *changeFilter) Forget(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.hashes, path)
}
