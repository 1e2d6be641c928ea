package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"

	"tableflip.dev/gridstate/pkg/layout"
)

// DefaultQuietPeriod is how long the scheduler waits after the last
// edit in a burst before pushing to the session store.
const DefaultQuietPeriod = 2 * time.Second

// Scheduler debounces session writes: a burst of Schedule calls
// produces exactly one remote write, issued one quiet period after the
// last call, carrying the last call's payload. The target key is
// captured at schedule time, so a write that fires after the user has
// moved on still lands on the context it was edited under.
//
// A failed write is logged and dropped. The next edit supersedes it
// with a fresh full-replacement write, so there is nothing to retry.
type Scheduler struct {
	client Client
	quiet  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	key     layout.Key
	payload Payload
}

// NewScheduler wires a scheduler to the given client. A non-positive
// quiet period selects DefaultQuietPeriod.
func NewScheduler(client Client, quiet time.Duration) *Scheduler {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Scheduler{client: client, quiet: quiet}
}

// Schedule records the payload as the pending write for key and
// restarts the quiet-period timer.
func (s *Scheduler) Schedule(key layout.Key, payload Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key = key
	s.payload = payload
	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, func() {
		s.fire(seq)
	})
}

// CancelPending discards any scheduled write. Safe to call when
// nothing is pending.
func (s *Scheduler) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Flush issues the pending write immediately instead of waiting out
// the quiet period. A no-op when nothing is pending. Short-lived
// callers use this before exiting.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.timer == nil {
		s.mu.Unlock()
		return
	}
	s.timer.Stop()
	s.timer = nil
	seq := s.seq
	s.mu.Unlock()

	s.fire(seq)
}

func (s *Scheduler) fire(seq uint64) {
	s.mu.Lock()
	if seq != s.seq {
		// Superseded or cancelled after the timer went off.
		s.mu.Unlock()
		return
	}
	key := s.key
	payload := s.payload
	s.timer = nil
	s.mu.Unlock()

	payload.WriteID = ulid.Make().String()
	payload.UpdatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), defaultRequestTimeout)
	defer cancel()

	if err := s.client.Put(ctx, key, payload); err != nil {
		// Best effort: stale session state is recoverable, a blocked
		// edit path is not.
		glog.Warningf("session: sync for %s dropped: %v", key, err)
		return
	}
	glog.V(1).Infof("session: synced %s (write %s)", key, payload.WriteID)
}
