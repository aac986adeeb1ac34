package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once a burst of transcript changes has settled.
// filePath is the last transcript that changed.
type EventHandler func(ctx context.Context, filePath string) error
