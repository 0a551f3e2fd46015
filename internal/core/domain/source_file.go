// Package domain contains the core domain models for the host augmentation layer.
package domain

// SourceFile is the in-memory representation of a loaded source file as seen
// by a compilation host. The handle is shared by reference: augmentations
// mutate it in place (versioning) but never replace it.
type SourceFile struct {
	// Path is the file path exactly as the host reported it, not normalized.
	Path string

	// Text is the raw file content.
	Text string

	// Version is a content-derived fingerprint. It is empty until the
	// versioning augmentation assigns it and is never overwritten afterwards.
	Version string
}
