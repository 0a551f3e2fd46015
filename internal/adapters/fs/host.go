// Package fs provides the file-system collaborators of the augmentation
// layer: project walking and a file-backed compilation host.
package fs

import (
	"os"
	"path"
	"runtime"
	"sort"
	"strings"

	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var (
	_ ports.CompilerHost  = (*ScriptHost)(nil)
	_ ports.ModuleLookup  = (*ScriptHost)(nil)
	_ ports.TypeRefLookup = (*ScriptHost)(nil)
)

// ScriptHost is a file-system-backed compilation host over a project tree.
// It exposes only the single-name resolution shape; the augmentation layer's
// Normalize adapter turns that into the batched shape the decorators expect.
//
// The host keeps its own handle registry for non-fresh retrievals, which is
// exactly the delegate-side caching the source-cache augmentation guards
// against by forcing fresh reads on table misses.
type ScriptHost struct {
	project *domain.Project
	files   []string
	handles map[string]*domain.SourceFile
}

// NewScriptHost enumerates the project's source files and preloads their
// text. Preloading is concurrent; the finished host is handed to the
// single-threaded augmentation layer afterwards.
func NewScriptHost(project *domain.Project) (*ScriptHost, error) {
	walker, err := NewWalker(project.Ignore)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHostLoadFailed.Error())
	}

	if info, err := os.Stat(project.Root); err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrRootNotFound, "root", project.Root)
	}

	h := &ScriptHost{
		project: project,
		handles: make(map[string]*domain.SourceFile),
	}
	for p := range walker.WalkFiles(project.Root, h.extensions()) {
		h.files = append(h.files, domain.NormalizePath(p))
	}
	sort.Strings(h.files)

	handles := make([]*domain.SourceFile, len(h.files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, p := range h.files {
		g.Go(func() error {
			text, err := os.ReadFile(p) //nolint:gosec // Paths come from walking the project root
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read source file"), "path", p)
			}
			handles[i] = &domain.SourceFile{Path: p, Text: string(text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrHostLoadFailed.Error())
	}
	for i, p := range h.files {
		h.handles[p] = handles[i]
	}

	return h, nil
}

// SourceFiles returns the handles of all enumerated project files, in
// deterministic path order.
func (h *ScriptHost) SourceFiles() []*domain.SourceFile {
	out := make([]*domain.SourceFile, 0, len(h.files))
	for _, p := range h.files {
		if f := h.GetSourceFile(p, false); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// GetSourceFile retrieves the handle for path. A non-fresh request reuses
// the host's registered handle; a fresh request always re-reads the file and
// produces a new handle. Returns nil when the file cannot be read.
func (h *ScriptHost) GetSourceFile(p string, fresh bool) *domain.SourceFile {
	key := domain.NormalizePath(p)
	if !fresh {
		if f, ok := h.handles[key]; ok {
			return f
		}
	}

	text, err := os.ReadFile(key) //nolint:gosec // Host retrieval is path-driven by design
	if err != nil {
		return nil
	}
	f := &domain.SourceFile{Path: key, Text: string(text)}
	h.handles[key] = f
	return f
}

// LookupModule resolves one module specifier for one containing file.
// Relative specifiers are probed against the containing directory; bare
// specifiers are probed in the configured package directories of every
// ancestor directory. The cache token, when present, short-circuits repeated
// lookups of the same (directory, name) pair, misses included.
func (h *ScriptHost) LookupModule(name, containingFile string, cache *domain.ResolutionCache) *domain.ResolvedModule {
	if name == "" || containingFile == "" {
		return nil
	}
	dir := path.Dir(domain.NormalizePath(containingFile))

	if res, ok := cache.Get(dir, domain.KindModule, name); ok {
		return res
	}
	res := h.lookupModule(name, dir)
	cache.Put(dir, domain.KindModule, name, res)
	return res
}

func (h *ScriptHost) lookupModule(name, dir string) *domain.ResolvedModule {
	if isRelative(name) || path.IsAbs(name) {
		base := name
		if !path.IsAbs(name) {
			base = path.Join(dir, name)
		}
		if target := h.probe(base); target != "" {
			return &domain.ResolvedModule{Path: target}
		}
		return nil
	}

	// Bare specifier: walk package directories upwards from the containing
	// directory, nearest first.
	for a := dir; ; a = path.Dir(a) {
		for _, md := range h.moduleDirs() {
			if target := h.probe(path.Join(a, md, name)); target != "" {
				return &domain.ResolvedModule{Path: target, External: true}
			}
		}
		if path.Dir(a) == a {
			return nil
		}
	}
}

// LookupTypeRef resolves one type-reference directive against the project's
// type roots. It shares the module lookup cache under a separate kind.
func (h *ScriptHost) LookupTypeRef(name, containingFile string, cache *domain.ResolutionCache) *domain.ResolvedTypeRef {
	if name == "" || containingFile == "" {
		return nil
	}
	dir := path.Dir(domain.NormalizePath(containingFile))

	if res, ok := cache.Get(dir, domain.KindTypeRef, name); ok {
		if res == nil {
			return nil
		}
		return &domain.ResolvedTypeRef{Path: res.Path}
	}

	var res *domain.ResolvedModule
	for _, tr := range h.typeRoots() {
		base := path.Join(h.project.Root, tr, name)
		for _, candidate := range []string{path.Join(base, "index.d.ts"), base + ".d.ts"} {
			if fileExists(candidate) {
				res = &domain.ResolvedModule{Path: domain.NormalizePath(candidate), External: true}
				break
			}
		}
		if res != nil {
			break
		}
	}

	cache.Put(dir, domain.KindTypeRef, name, res)
	if res == nil {
		return nil
	}
	return &domain.ResolvedTypeRef{Path: res.Path}
}

// probe tries a base path as a file (with and without the configured
// extensions) and as a directory with an index file.
func (h *ScriptHost) probe(base string) string {
	if hasExtension(base, h.extensions()) && fileExists(base) {
		return domain.NormalizePath(base)
	}
	for _, ext := range h.extensions() {
		if candidate := base + ext; fileExists(candidate) {
			return domain.NormalizePath(candidate)
		}
	}
	for _, ext := range h.extensions() {
		if candidate := path.Join(base, "index"+ext); fileExists(candidate) {
			return domain.NormalizePath(candidate)
		}
	}
	return ""
}

func (h *ScriptHost) extensions() []string {
	if len(h.project.Extensions) > 0 {
		return h.project.Extensions
	}
	return domain.DefaultExtensions
}

func (h *ScriptHost) moduleDirs() []string {
	if len(h.project.ModuleDirs) > 0 {
		return h.project.ModuleDirs
	}
	return domain.DefaultModuleDirs
}

func (h *ScriptHost) typeRoots() []string {
	if len(h.project.TypeRoots) > 0 {
		return h.project.TypeRoots
	}
	return domain.DefaultTypeRoots
}

func isRelative(name string) bool {
	return name == "." || name == ".." ||
		strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../")
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
