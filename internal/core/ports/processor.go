package ports

import "go.skein.dev/skein/internal/core/domain"

// ModuleProcessor is the external conversion pipeline applied to successful
// resolutions before they are returned to the compiler driver. Process must
// be idempotent: the same target is routed through it again whenever another
// containing file resolves to it.
//
// Process never fails from the caller's point of view; an implementation
// that cannot convert a target returns the resolution unchanged.
//
//go:generate go run go.uber.org/mock/mockgen -source=processor.go -destination=mocks/mock_processor.go -package=mocks
type ModuleProcessor interface {
	Process(requestedName string, resolution *domain.ResolvedModule) *domain.ResolvedModule
}
