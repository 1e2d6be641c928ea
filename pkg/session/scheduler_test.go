package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/gridstate/pkg/layout"
)

type recordedPut struct {
	key     layout.Key
	payload Payload
}

type recordingClient struct {
	mu   sync.Mutex
	puts []recordedPut
	fail bool
}

func (r *recordingClient) Get(context.Context, layout.Key) (Payload, bool, error) {
	return Payload{}, false, nil
}

func (r *recordingClient) Put(_ context.Context, key layout.Key, payload Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("endpoint down")
	}
	r.puts = append(r.puts, recordedPut{key: key, payload: payload})
	return nil
}

func (r *recordingClient) Delete(context.Context, layout.Key) error {
	return nil
}

func (r *recordingClient) recorded() []recordedPut {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedPut, len(r.puts))
	copy(out, r.puts)
	return out
}

func TestScheduleCoalescesBursts(t *testing.T) {
	client := &recordingClient{}
	s := NewScheduler(client, 50*time.Millisecond)
	key := layout.NewKey("ds1", "users")

	for i := 0; i < 5; i++ {
		s.Schedule(key, Payload{Pinned: []string{"col", string(rune('a' + i))}})
		time.Sleep(5 * time.Millisecond)
	}
	s.Schedule(key, Payload{Pinned: []string{"last"}})

	time.Sleep(300 * time.Millisecond)

	puts := client.recorded()
	if len(puts) != 1 {
		t.Fatalf("expected a burst to coalesce into 1 write, got %d", len(puts))
	}
	if len(puts[0].payload.Pinned) != 1 || puts[0].payload.Pinned[0] != "last" {
		t.Fatalf("expected the last payload to win, got %+v", puts[0].payload)
	}
}

func TestScheduleCapturesKeyAtScheduleTime(t *testing.T) {
	client := &recordingClient{}
	s := NewScheduler(client, 30*time.Millisecond)

	users := layout.NewKey("ds1", "users")
	orders := layout.NewKey("ds1", "orders")

	s.Schedule(users, Payload{Pinned: []string{"email"}})
	time.Sleep(200 * time.Millisecond)

	s.Schedule(orders, Payload{Pinned: []string{"total"}})
	time.Sleep(200 * time.Millisecond)

	puts := client.recorded()
	if len(puts) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(puts))
	}
	if puts[0].key != users || puts[1].key != orders {
		t.Fatalf("writes landed on the wrong contexts: %q then %q", puts[0].key, puts[1].key)
	}
}

func TestCancelPendingPreventsWrite(t *testing.T) {
	client := &recordingClient{}
	s := NewScheduler(client, 30*time.Millisecond)

	s.Schedule(layout.NewKey("ds1", "users"), Payload{Pinned: []string{"id"}})
	s.CancelPending()

	time.Sleep(200 * time.Millisecond)

	if got := client.recorded(); len(got) != 0 {
		t.Fatalf("expected no writes after cancel, got %d", len(got))
	}
}

func TestCancelPendingIsNoopWhenIdle(t *testing.T) {
	s := NewScheduler(&recordingClient{}, 30*time.Millisecond)
	s.CancelPending()
	s.CancelPending()
}

func TestFailedWriteIsDroppedAndSuperseded(t *testing.T) {
	client := &recordingClient{fail: true}
	s := NewScheduler(client, 20*time.Millisecond)
	key := layout.NewKey("ds1", "users")

	s.Schedule(key, Payload{Pinned: []string{"lost"}})
	time.Sleep(150 * time.Millisecond)

	client.mu.Lock()
	client.fail = false
	client.mu.Unlock()

	s.Schedule(key, Payload{Pinned: []string{"kept"}})
	time.Sleep(150 * time.Millisecond)

	puts := client.recorded()
	if len(puts) != 1 {
		t.Fatalf("expected only the superseding write, got %d", len(puts))
	}
	if puts[0].payload.Pinned[0] != "kept" {
		t.Fatalf("expected payload from the retry edit, got %+v", puts[0].payload)
	}
}

func TestWritesAreStamped(t *testing.T) {
	client := &recordingClient{}
	s := NewScheduler(client, 10*time.Millisecond)

	s.Schedule(layout.NewKey("ds1", "users"), Payload{Pinned: []string{"id"}})
	time.Sleep(150 * time.Millisecond)

	puts := client.recorded()
	if len(puts) != 1 {
		t.Fatalf("expected 1 write, got %d", len(puts))
	}
	if puts[0].payload.WriteID == "" {
		t.Fatal("expected a write id on the issued payload")
	}
	if puts[0].payload.UpdatedAt.IsZero() {
		t.Fatal("expected a timestamp on the issued payload")
	}
}

func TestFlushWritesImmediately(t *testing.T) {
	client := &recordingClient{}
	s := NewScheduler(client, 10*time.Second)
	key := layout.NewKey("ds1", "users")

	s.Schedule(key, Payload{Pinned: []string{"id"}})
	s.Flush()

	if got := client.recorded(); len(got) != 1 {
		t.Fatalf("expected flush to issue the pending write, got %d", len(got))
	}

	// Nothing should remain pending after the flush.
	s.Flush()
	if got := client.recorded(); len(got) != 1 {
		t.Fatalf("expected second flush to be a no-op, got %d writes", len(got))
	}
}
