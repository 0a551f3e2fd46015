// Package augment implements the host augmentation layer: decorators that
// wrap a compilation host's operations while preserving their contracts
// exactly. A driver first normalizes the host's resolution surfaces with
// Normalize, then layers any combination of WithFileVersions,
// WithSourceCache, WithDependencyRecording and WithModuleProcessing on top.
// The last-applied decorator runs first on each call.
//
// Nothing in this package returns an error: resolution misses are nil
// entries, bookkeeping failures are skipped silently, and absent host
// capabilities are replaced by complete fallbacks. The layer must never turn
// a soft failure into a hard one.
package augment
