package ports

import (
	"context"
	"iter"
)

//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp identifies the kind of file system change.
type WatchOp int

const (
	OpWrite WatchOp = iota
	OpCreate
	OpRemove
	OpRename
)

// WatchEvent is one observed file system change.
type WatchEvent struct {
	Path string
	Op   WatchOp
}

// Watcher observes a project tree for changes to its source files.
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
	// Stop stops the watcher and releases all resources.
	Stop() error
}
