// Package ports defines the core interfaces for the application.
package ports

import "go.skein.dev/skein/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// CompilerHost is the minimal surface every compilation host provides: it can
// enumerate the source files of the current compilation unit and retrieve a
// single file by path.
type CompilerHost interface {
	// SourceFiles returns the handles of all source files currently known to
	// the compilation unit. Callers may invoke it many times per compilation.
	SourceFiles() []*domain.SourceFile

	// GetSourceFile retrieves the handle for path, or nil if the file cannot
	// be loaded. When fresh is true the host must produce a new read instead
	// of reusing anything it may have cached itself.
	GetSourceFile(path string, fresh bool) *domain.SourceFile
}

// ModuleResolver is the batched module-name resolution capability. The
// returned slice has exactly one entry per input name, in input order; a nil
// entry is a resolution miss, never an error.
type ModuleResolver interface {
	ResolveModuleNames(names []string, containingFile string) []*domain.ResolvedModule
}

// TypeRefResolver is the batched type-reference-directive resolution
// capability, with the same shape contract as ModuleResolver.
type TypeRefResolver interface {
	ResolveTypeReferenceDirectives(names []string, containingFile string) []*domain.ResolvedTypeRef
}

// ModuleLookup is the single-name resolution shape some hosts expose instead
// of ModuleResolver. The cache token may be nil; hosts forward it to avoid
// repeated cold lookups of the same name.
type ModuleLookup interface {
	LookupModule(name, containingFile string, cache *domain.ResolutionCache) *domain.ResolvedModule
}

// TypeRefLookup is the single-name counterpart of TypeRefResolver.
type TypeRefLookup interface {
	LookupTypeRef(name, containingFile string, cache *domain.ResolutionCache) *domain.ResolvedTypeRef
}

// ResolvingHost is a compilation host whose resolution surfaces have been
// normalized to the batched shape. Augmentations wrap and return this
// interface so they compose regardless of the base host's native shape.
type ResolvingHost interface {
	CompilerHost
	ModuleResolver
	TypeRefResolver
}
