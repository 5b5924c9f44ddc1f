package glide

import "context"

// Watcher observes a config source and emits its raw contents on a channel.
// Implementations emit the current contents immediately so the first config
// can be loaded without waiting for a change.
type Watcher interface {
	// Watch begins observing the source. The returned channel is closed when
	// ctx is canceled or the source can no longer be observed.
	Watch(ctx context.Context) (<-chan []byte, error)
}
