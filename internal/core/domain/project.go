package domain

// Project is the resolved configuration for one scanned project tree.
type Project struct {
	// Root is the absolute project root directory.
	Root string

	// Ignore lists glob patterns for directories and files the walker skips
	// (on top of the always-skipped VCS directories).
	Ignore []string

	// Extensions is the probe order for resolving extensionless module
	// specifiers, e.g. [".ts", ".tsx", ".d.ts", ".js"].
	Extensions []string

	// ModuleDirs names the package directories probed for bare specifiers,
	// e.g. ["node_modules"], walked upwards from the containing file.
	ModuleDirs []string

	// TypeRoots names the directories probed for type-reference directives,
	// relative to Root, e.g. ["node_modules/@types"].
	TypeRoots []string

	// Augment selects which augmentations the driver applies to the host.
	Augment AugmentConfig

	// ResolutionCacheSize bounds the shared resolution cache. Zero means
	// DefaultResolutionCacheSize.
	ResolutionCacheSize int

	// ProcessorCommand, when non-empty, is the external conversion pipeline
	// invoked for every successfully resolved module target.
	ProcessorCommand []string
}

// AugmentConfig toggles the individual host augmentations.
type AugmentConfig struct {
	// Versions enables content versioning of enumerated source files.
	Versions bool
	// SourceCache enables the source-file retrieval cache.
	SourceCache bool
	// Graph enables dependency-edge recording.
	Graph bool
}

// DefaultExtensions is the probe order used when the config omits one.
var DefaultExtensions = []string{".ts", ".tsx", ".d.ts", ".js"}

// DefaultModuleDirs is the package-directory list used when the config omits one.
var DefaultModuleDirs = []string{"node_modules"}

// DefaultTypeRoots is the type-root list used when the config omits one.
var DefaultTypeRoots = []string{"node_modules/@types"}
