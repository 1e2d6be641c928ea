package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/gridstate/pkg/layout"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) Store {
	t.Helper()
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s
}

func TestGetMissReturnsDefault(t *testing.T) {
	s := load(t)
	got := s.Get(layout.NewKey("ds1", "users"))
	if !got.AllVisible() || len(got.Pinned) != 0 || len(got.Order) != 0 {
		t.Fatalf("expected default layout on miss, got %+v", got)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := load(t)
	key := layout.NewKey("ds1", "users")
	entry := layout.Entry{
		Pinned:  []string{"email"},
		Order:   []string{"b", "a"},
		Visible: []string{"a", "b", "email"},
	}

	if err := s.Put(key, entry); err != nil {
		t.Fatalf("put: %v", err)
	}

	got := s.Get(key)
	if !reflect.DeepEqual(got, entry) {
		t.Fatalf("expected %+v, got %+v", entry, got)
	}
}

func TestPutOverwritesWholeEntry(t *testing.T) {
	s := load(t)
	key := layout.NewKey("ds1", "users")

	if err := s.Put(key, layout.Entry{Pinned: []string{"a"}, Order: []string{"a"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(key, layout.Entry{Visible: []string{"b"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got := s.Get(key)
	if len(got.Pinned) != 0 || len(got.Order) != 0 {
		t.Fatalf("expected second put to replace the entry wholesale, got %+v", got)
	}
}

func TestEntriesSurviveReload(t *testing.T) {
	dir := t.TempDir()
	key := layout.NewKey("ds1", "users")
	entry := layout.Entry{Order: []string{"b", "a"}}

	s, err := Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if err := s.Put(key, entry); err != nil {
		t.Fatalf("put: %v", err)
	}

	// A fresh Store over the same path stands in for a process restart.
	s2, err := Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	got := s2.Get(key)
	if !reflect.DeepEqual(got.Order, entry.Order) {
		t.Fatalf("expected order %v after reload, got %v", entry.Order, got.Order)
	}
}

func TestClearRemovesOnlyThatKey(t *testing.T) {
	s := load(t)
	users := layout.NewKey("ds1", "users")
	orders := layout.NewKey("ds1", "orders")

	if err := s.Put(users, layout.Entry{Pinned: []string{"id"}, Visible: []string{"id"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(orders, layout.Entry{Order: []string{"total"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := s.Clear(users); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if got := s.Get(users); len(got.Pinned) != 0 {
		t.Fatalf("expected cleared key to read as default, got %+v", got)
	}
	if got := s.Get(orders); len(got.Order) != 1 {
		t.Fatalf("clear must not touch other keys, got %+v", got)
	}
}

func TestClearMissingKeyIsNoop(t *testing.T) {
	s := load(t)
	if err := s.Clear(layout.NewKey("ds1", "never-written")); err != nil {
		t.Fatalf("clearing an absent key should not fail: %v", err)
	}
}

func TestKeysListsStoredContexts(t *testing.T) {
	s := load(t)
	want := map[layout.Key]bool{
		layout.NewKey("ds1", "users"):  true,
		layout.NewKey("ds2", "orders"): true,
	}
	for key := range want {
		if err := s.Put(key, layout.Default()); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	got := s.Keys(context.Background())
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), got)
	}
	for _, key := range got {
		if !want[key] {
			t.Fatalf("unexpected key %q", key)
		}
	}
}

func TestWatchEmitsLayoutChanges(t *testing.T) {
	s := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	key := layout.NewKey("ds1", "users")
	if err := s.Put(key, layout.Entry{Pinned: []string{"id"}, Visible: []string{"id"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventStoreInvalidated {
				return
			}
			if evt.Type == EventLayoutChanged {
				if evt.Key != key {
					t.Fatalf("expected key %q, got %q", key, evt.Key)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for layout change event")
		}
	}
}
