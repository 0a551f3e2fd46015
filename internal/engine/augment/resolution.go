package augment

import (
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
)

// Normalize adapts a compilation host to the batched resolution shape. The
// host's native shape is inspected exactly once, here, so every later
// decorator wraps one uniform surface:
//
//   - a host already exposing batched resolution is used as-is;
//   - a host exposing only single-name lookup is driven name by name, with
//     the cache token forwarded to spare repeated cold lookups;
//   - a host with neither capability gets a complete all-miss fallback.
//
// The same normalization is applied independently to the module-name surface
// and the type-reference surface. Both forward one shared cache token.
func Normalize(host ports.CompilerHost, cache *domain.ResolutionCache) ports.ResolvingHost {
	if resolved, ok := host.(ports.ResolvingHost); ok {
		return resolved
	}

	n := &normalizedHost{CompilerHost: host}

	switch h := host.(type) {
	case ports.ModuleResolver:
		n.modules = h
	case ports.ModuleLookup:
		n.modules = &singleModuleResolver{lookup: h, cache: cache}
	default:
		n.modules = missingModuleResolver{}
	}

	switch h := host.(type) {
	case ports.TypeRefResolver:
		n.typeRefs = h
	case ports.TypeRefLookup:
		n.typeRefs = &singleTypeRefResolver{lookup: h, cache: cache}
	default:
		n.typeRefs = missingTypeRefResolver{}
	}

	return n
}

// normalizedHost presents the batched shape regardless of what the base host
// natively provides. File operations pass through untouched.
type normalizedHost struct {
	ports.CompilerHost
	modules  ports.ModuleResolver
	typeRefs ports.TypeRefResolver
}

func (n *normalizedHost) ResolveModuleNames(names []string, containingFile string) []*domain.ResolvedModule {
	return n.modules.ResolveModuleNames(names, containingFile)
}

func (n *normalizedHost) ResolveTypeReferenceDirectives(names []string, containingFile string) []*domain.ResolvedTypeRef {
	return n.typeRefs.ResolveTypeReferenceDirectives(names, containingFile)
}

// singleModuleResolver reconstructs batched behavior from a name-at-a-time
// lookup. Output order and cardinality match the input by construction.
type singleModuleResolver struct {
	lookup ports.ModuleLookup
	cache  *domain.ResolutionCache
}

func (r *singleModuleResolver) ResolveModuleNames(names []string, containingFile string) []*domain.ResolvedModule {
	results := make([]*domain.ResolvedModule, len(names))
	for i, name := range names {
		results[i] = r.lookup.LookupModule(name, containingFile, r.cache)
	}
	return results
}

type singleTypeRefResolver struct {
	lookup ports.TypeRefLookup
	cache  *domain.ResolutionCache
}

func (r *singleTypeRefResolver) ResolveTypeReferenceDirectives(names []string, containingFile string) []*domain.ResolvedTypeRef {
	results := make([]*domain.ResolvedTypeRef, len(names))
	for i, name := range names {
		results[i] = r.lookup.LookupTypeRef(name, containingFile, r.cache)
	}
	return results
}

// missingModuleResolver is the fallback for hosts without any module
// resolution capability: every name is a miss, shape is still preserved.
type missingModuleResolver struct{}

func (missingModuleResolver) ResolveModuleNames(names []string, _ string) []*domain.ResolvedModule {
	return make([]*domain.ResolvedModule, len(names))
}

type missingTypeRefResolver struct{}

func (missingTypeRefResolver) ResolveTypeReferenceDirectives(names []string, _ string) []*domain.ResolvedTypeRef {
	return make([]*domain.ResolvedTypeRef, len(names))
}
