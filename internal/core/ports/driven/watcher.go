package driven

import "context"

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch signals on the returned channel each time the file at path is
	// written or replaced. Bursts of events may be coalesced into one
	// signal. The channel is closed when ctx is done.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
