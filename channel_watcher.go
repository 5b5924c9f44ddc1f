package glide

import "context"

// ChannelWatcher adapts an existing byte channel into a Watcher. It is used
// by tests and by hosts that receive config from somewhere other than a file.
type ChannelWatcher struct {
	src    <-chan []byte
	direct bool
}

// NewChannelWatcher forwards values from src through its own goroutine until
// src closes or the watch context ends.
func NewChannelWatcher(src <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{src: src}
}

// NewSyncChannelWatcher hands src to the Reloader directly. Pair it with
// Reloader.SyncMode for deterministic tests.
func NewSyncChannelWatcher(src <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{src: src, direct: true}
}

// Watch returns a channel carrying the values read from the source.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if w.direct {
		return w.src, nil
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			var (
				raw []byte
				ok  bool
			)
			select {
			case <-ctx.Done():
				return
			case raw, ok = <-w.src:
				if !ok {
					return
				}
			}
			select {
			case out <- raw:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
