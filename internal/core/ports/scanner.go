package ports

// ImportScanner extracts the module names and type-reference directives a
// source text refers to. It is the driver-side collaborator feeding the
// resolution surfaces: the augmentation layer trusts that every name it is
// handed was actually referenced by the containing file.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type ImportScanner interface {
	// ScanImports returns the module specifiers referenced by text, in
	// first-occurrence order, deduplicated.
	ScanImports(text string) []string

	// ScanTypeRefs returns the type-reference directive names in text, in
	// first-occurrence order, deduplicated.
	ScanTypeRefs(text string) []string
}
