package augment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
	"go.skein.dev/skein/internal/engine/augment"
)

// lookupHost exposes only the single-name resolution shape, like a host that
// never implemented batching. Resolutions are scripted per name.
type lookupHost struct {
	files       []*domain.SourceFile
	reads       map[string]string // path -> text served on retrieval
	modules     map[string]string // name -> resolved path
	typeRefs    map[string]string // name -> resolved path
	getCalls    []getCall
	lookupCalls int
	seenCache   *domain.ResolutionCache
}

type getCall struct {
	path  string
	fresh bool
}

func (h *lookupHost) SourceFiles() []*domain.SourceFile { return h.files }

func (h *lookupHost) GetSourceFile(path string, fresh bool) *domain.SourceFile {
	h.getCalls = append(h.getCalls, getCall{path: path, fresh: fresh})
	text, ok := h.reads[path]
	if !ok {
		return nil
	}
	return &domain.SourceFile{Path: path, Text: text}
}

func (h *lookupHost) LookupModule(name, _ string, cache *domain.ResolutionCache) *domain.ResolvedModule {
	h.lookupCalls++
	h.seenCache = cache
	p, ok := h.modules[name]
	if !ok {
		return nil
	}
	return &domain.ResolvedModule{Path: p, External: true}
}

func (h *lookupHost) LookupTypeRef(name, _ string, _ *domain.ResolutionCache) *domain.ResolvedTypeRef {
	p, ok := h.typeRefs[name]
	if !ok {
		return nil
	}
	return &domain.ResolvedTypeRef{Path: p}
}

// batchedHost natively implements both batched surfaces.
type batchedHost struct {
	lookupHost
	batchCalls int
}

func (h *batchedHost) ResolveModuleNames(names []string, _ string) []*domain.ResolvedModule {
	h.batchCalls++
	out := make([]*domain.ResolvedModule, len(names))
	for i, name := range names {
		if p, ok := h.modules[name]; ok {
			out[i] = &domain.ResolvedModule{Path: p, External: true}
		}
	}
	return out
}

func (h *batchedHost) ResolveTypeReferenceDirectives(names []string, _ string) []*domain.ResolvedTypeRef {
	out := make([]*domain.ResolvedTypeRef, len(names))
	for i, name := range names {
		if p, ok := h.typeRefs[name]; ok {
			out[i] = &domain.ResolvedTypeRef{Path: p}
		}
	}
	return out
}

// bareHost has no resolution capability at all.
type bareHost struct{}

func (bareHost) SourceFiles() []*domain.SourceFile             { return nil }
func (bareHost) GetSourceFile(string, bool) *domain.SourceFile { return nil }

func TestNormalize_BatchedHostUsedDirectly(t *testing.T) {
	base := &batchedHost{lookupHost: lookupHost{
		modules: map[string]string{"pkg-a": "/node_modules/pkg-a/index.d.ts"},
	}}

	host := augment.Normalize(base, nil)
	results := host.ResolveModuleNames([]string{"pkg-a", "pkg-b"}, "/src/app.ts")

	require.Len(t, results, 2)
	assert.Equal(t, "/node_modules/pkg-a/index.d.ts", results[0].Path)
	assert.Nil(t, results[1])
	assert.Equal(t, 1, base.batchCalls)
	assert.Zero(t, base.lookupCalls, "batched host must not be driven name-at-a-time")
}

func TestNormalize_SingleNameFallback(t *testing.T) {
	base := &lookupHost{
		modules: map[string]string{
			"pkg-a": "/node_modules/pkg-a/index.d.ts",
			"pkg-c": "/node_modules/pkg-c/index.d.ts",
		},
	}
	cache := domain.NewResolutionCache(16)

	host := augment.Normalize(base, cache)
	results := host.ResolveModuleNames([]string{"pkg-a", "pkg-b", "pkg-c"}, "/src/app.ts")

	// Shape contract: same length, same order, misses as nil.
	require.Len(t, results, 3)
	assert.Equal(t, "/node_modules/pkg-a/index.d.ts", results[0].Path)
	assert.Nil(t, results[1])
	assert.Equal(t, "/node_modules/pkg-c/index.d.ts", results[2].Path)

	assert.Equal(t, 3, base.lookupCalls)
	assert.Same(t, cache, base.seenCache, "cache token must be forwarded to single-name lookups")
}

func TestNormalize_TypeRefFallback(t *testing.T) {
	base := &lookupHost{typeRefs: map[string]string{"node": "/node_modules/@types/node/index.d.ts"}}

	host := augment.Normalize(base, nil)
	results := host.ResolveTypeReferenceDirectives([]string{"node", "ghost"}, "/src/app.ts")

	require.Len(t, results, 2)
	assert.Equal(t, "/node_modules/@types/node/index.d.ts", results[0].Path)
	assert.Nil(t, results[1])
}

func TestNormalize_AbsentCapabilityFallsBackToMisses(t *testing.T) {
	host := augment.Normalize(bareHost{}, nil)

	modules := host.ResolveModuleNames([]string{"a", "b"}, "/src/app.ts")
	require.Len(t, modules, 2)
	assert.Nil(t, modules[0])
	assert.Nil(t, modules[1])

	refs := host.ResolveTypeReferenceDirectives([]string{"a"}, "/src/app.ts")
	require.Len(t, refs, 1)
	assert.Nil(t, refs[0])
}

func TestNormalize_AlreadyNormalizedIsIdentity(t *testing.T) {
	base := &lookupHost{}
	host := augment.Normalize(base, nil)
	assert.Same(t, host, augment.Normalize(host, nil))
}

func TestNormalize_EmptyBatch(t *testing.T) {
	host := augment.Normalize(&lookupHost{}, nil)
	assert.Empty(t, host.ResolveModuleNames(nil, "/src/app.ts"))
}

// TestAugment_MixedResolutionScenario is the end-to-end shape: a host with
// no native batched resolver, two names where one resolves and one does not.
func TestAugment_MixedResolutionScenario(t *testing.T) {
	base := &lookupHost{
		modules: map[string]string{"pkg-a": "/node_modules/pkg-a/index.d.ts"},
	}
	graph := domain.NewDependencyGraph()

	var host ports.ResolvingHost = augment.Normalize(base, domain.NewResolutionCache(16))
	host = augment.WithDependencyRecording(host, graph)

	results := host.ResolveModuleNames([]string{"pkg-a", "pkg-b"}, "/src/app.ts")

	require.Len(t, results, 2)
	require.NotNil(t, results[0])
	assert.Equal(t, "/node_modules/pkg-a/index.d.ts", results[0].Path)
	assert.Nil(t, results[1])

	assert.True(t, graph.HasEdge("/src/app.ts", "/node_modules/pkg-a/index.d.ts"))
	assert.Equal(t, 1, graph.EdgeCount(), "no edge may be recorded for the miss")
}

// TestAugment_FullStack layers every decorator onto a single-shape host and
// checks the surfaces still behave like the bare host, side effects aside.
func TestAugment_FullStack(t *testing.T) {
	base := &lookupHost{
		files: []*domain.SourceFile{
			{Path: "/src/app.ts", Text: "import \"pkg-a\";"},
		},
		reads:   map[string]string{"/src/app.ts": "import \"pkg-a\";"},
		modules: map[string]string{"pkg-a": "/node_modules/pkg-a/index.d.ts"},
	}
	graph := domain.NewDependencyGraph()
	table := domain.NewSourceCacheTable()
	proc := &countingProcessor{}

	var host ports.ResolvingHost = augment.Normalize(base, domain.NewResolutionCache(16))
	host = augment.WithFileVersions(host)
	host = augment.WithSourceCache(host, table)
	host = augment.WithModuleProcessing(host, proc)
	host = augment.WithDependencyRecording(host, graph)

	files := host.SourceFiles()
	require.Len(t, files, 1)
	assert.NotEmpty(t, files[0].Version)

	results := host.ResolveModuleNames([]string{"pkg-a"}, "/src/app.ts")
	require.Len(t, results, 1)
	require.NotNil(t, results[0])
	assert.Equal(t, 1, proc.calls)
	assert.True(t, graph.HasEdge("/src/app.ts", "/node_modules/pkg-a/index.d.ts"))

	first := host.GetSourceFile("/src/app.ts", false)
	assert.Same(t, first, host.GetSourceFile("/src/app.ts", false))
}
