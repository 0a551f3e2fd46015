package augment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/engine/augment"
)

// countingProcessor records every target it is handed and optionally rewrites
// resolved paths through a fixed mapping.
type countingProcessor struct {
	calls   int
	names   []string
	rewrite map[string]string // resolved path -> replacement path
}

func (p *countingProcessor) Process(requestedName string, res *domain.ResolvedModule) *domain.ResolvedModule {
	p.calls++
	p.names = append(p.names, requestedName)
	if to, ok := p.rewrite[res.Path]; ok {
		return &domain.ResolvedModule{Path: to, External: res.External}
	}
	return res
}

func TestWithModuleProcessing_HitsProcessedOncePerCall(t *testing.T) {
	base := &lookupHost{modules: map[string]string{"pkg-a": "/node_modules/pkg-a/index.d.ts"}}
	proc := &countingProcessor{}
	host := augment.WithModuleProcessing(augment.Normalize(base, nil), proc)

	results := host.ResolveModuleNames([]string{"pkg-a", "pkg-miss"}, "/src/app.ts")

	require.Len(t, results, 2)
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])

	// Only the hit reaches the processor, with its requested name.
	assert.Equal(t, 1, proc.calls)
	assert.Equal(t, []string{"pkg-a"}, proc.names)
}

func TestWithModuleProcessing_RewritesResolution(t *testing.T) {
	base := &lookupHost{modules: map[string]string{"pkg-a": "/node_modules/pkg-a/index.d.ts"}}
	proc := &countingProcessor{rewrite: map[string]string{
		"/node_modules/pkg-a/index.d.ts": "/converted/pkg-a/index.d.ts",
	}}
	host := augment.WithModuleProcessing(augment.Normalize(base, nil), proc)

	results := host.ResolveModuleNames([]string{"pkg-a"}, "/src/app.ts")
	require.Len(t, results, 1)
	assert.Equal(t, "/converted/pkg-a/index.d.ts", results[0].Path)
	assert.True(t, results[0].External)
}

func TestWithModuleProcessing_TypeRefSurface(t *testing.T) {
	base := &lookupHost{typeRefs: map[string]string{"runner": "/node_modules/@types/runner/index.d.ts"}}
	proc := &countingProcessor{rewrite: map[string]string{
		"/node_modules/@types/runner/index.d.ts": "/converted/@types/runner/index.d.ts",
	}}
	host := augment.WithModuleProcessing(augment.Normalize(base, nil), proc)

	results := host.ResolveTypeReferenceDirectives([]string{"runner", "ghost"}, "/src/app.ts")

	require.Len(t, results, 2)
	assert.Equal(t, "/converted/@types/runner/index.d.ts", results[0].Path)
	assert.Nil(t, results[1])
	assert.Equal(t, []string{"runner"}, proc.names)
}

func TestWithModuleProcessing_RepeatTargetsAreProcessedAgain(t *testing.T) {
	base := &lookupHost{modules: map[string]string{"pkg-a": "/node_modules/pkg-a/index.d.ts"}}
	proc := &countingProcessor{}
	host := augment.WithModuleProcessing(augment.Normalize(base, nil), proc)

	host.ResolveModuleNames([]string{"pkg-a"}, "/src/app.ts")
	host.ResolveModuleNames([]string{"pkg-a"}, "/src/other.ts")

	// Per-target idempotence is the processor's job, not the layer's.
	assert.Equal(t, 2, proc.calls)
}
