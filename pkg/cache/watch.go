package cache

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"

	"tableflip.dev/gridstate/pkg/layout"
)

// EventType describes the nature of a cache change notification.
type EventType int

const (
	// EventLayoutChanged indicates the stored layout for the given
	// context changed (written or cleared).
	EventLayoutChanged EventType = iota

	// EventStoreInvalidated signals a change that cannot be attributed
	// to a single context; callers should refresh their full view.
	EventStoreInvalidated
)

// Event is emitted by Store.Watch when the underlying storage changes.
type Event struct {
	Type EventType
	Key  layout.Key
}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel to avoid blocking the watcher. The channel
// is closed once ctx is done or the watcher encounters an unrecoverable
// error.
func (s *store) Watch(ctx context.Context) (<-chan Event, error) {
	if s.basePath == "" {
		return nil, errors.New("cache: base path unknown")
	}

	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("cache: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("cache: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				glog.Warningf("cache: watcher close: %v", err)
			}
		})
	}

	if err := watcher.Add(s.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("cache: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; a
				// subsequent refresh picks up the changes and keeps a
				// filesystem storm from blocking the watcher.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh to keep
				// clients in sync even when the change cannot be
				// classified.
				glog.Warningf("cache: watcher: %v", err)
				throttle.Enqueue(Event{Type: EventStoreInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				key := s.keyForPath(evt.Name)
				if key.Zero() {
					throttle.Enqueue(Event{Type: EventStoreInvalidated}, send)
					continue
				}

				throttle.Enqueue(Event{Type: EventLayoutChanged, Key: key}, send)
			}
		}
	}()

	return events, nil
}

// keyForPath derives the context key from a diskv file path.
func (s *store) keyForPath(path string) layout.Key {
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	decoded, err := base64.URLEncoding.DecodeString(rel)
	if err != nil {
		return ""
	}
	return layout.Key(decoded)
}

// eventThrottle coalesces rapid change notifications so a consumer can
// redraw once per burst of filesystem activity instead of on every
// single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[layout.Key]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[layout.Key]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[layout.Key]struct{})
	}
	t.pending[ev.Type][ev.Key] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[layout.Key]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, keys := range pending {
		if len(keys) == 0 {
			send(Event{Type: eventType})
			continue
		}

		for key := range keys {
			send(Event{Type: eventType, Key: key})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
