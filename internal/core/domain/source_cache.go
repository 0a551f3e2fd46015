package domain

// SourceCacheTable maps raw (not normalized) file paths to their loaded
// handles. The table is owned by the build-tool layer; the caching
// augmentation only reads and inserts. Eviction is the owner's business,
// and the augmentation layer never removes an entry.
type SourceCacheTable struct {
	files map[string]*SourceFile
}

// NewSourceCacheTable creates an empty SourceCacheTable.
func NewSourceCacheTable() *SourceCacheTable {
	return &SourceCacheTable{files: make(map[string]*SourceFile)}
}

// Get returns the cached handle for path, if any.
func (t *SourceCacheTable) Get(path string) (*SourceFile, bool) {
	f, ok := t.files[path]
	return f, ok
}

// Put stores the handle for path, overwriting any previous entry.
func (t *SourceCacheTable) Put(path string, f *SourceFile) {
	t.files[path] = f
}

// Evict removes the entry for path. Used by drivers (e.g. the watch loop)
// that know the on-disk content changed.
func (t *SourceCacheTable) Evict(path string) {
	delete(t.files, path)
}

// Len reports the number of cached handles.
func (t *SourceCacheTable) Len() int {
	return len(t.files)
}
