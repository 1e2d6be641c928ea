// Package state owns the live view state: one active context, its
// mutable layout buffer, and the plumbing that keeps the durable cache
// and the remote session in step with every edit.
package state

import (
	"context"
	"errors"
	"time"

	"github.com/golang/glog"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/session"
	"tableflip.dev/gridstate/pkg/views"
)

// ErrNoActiveContext is returned when a mutation arrives while no
// context is bound.
var ErrNoActiveContext = errors.New("state: no active context")

// FieldSource supplies the full known field set for a context, from
// schema plus observed record keys. The set is dynamic per table, so
// the manager asks on every visibility change rather than caching it.
type FieldSource func(key layout.Key) []string

// Source says where the initial data for a context came from.
type Source int

const (
	// SourceCache seeded from the durable layout cache (or defaults).
	SourceCache Source = iota
	// SourceSavedView seeded from an explicitly saved view.
	SourceSavedView
	// SourceSession restored an in-progress remote session.
	SourceSession
)

func (s Source) String() string {
	switch s {
	case SourceSession:
		return "session"
	case SourceSavedView:
		return "saved view"
	default:
		return "cache"
	}
}

// Seed is the caller-supplied initial configuration for a context, the
// strict fallback a hard refresh returns to.
type Seed struct {
	Layout   layout.Entry
	Filters  []layout.Filter
	Mappings map[string]string
}

// Manager binds at most one active context at a time and owns its live
// layout buffer. Every mutation is written through to the cache
// synchronously and pushed to the remote session on a debounce; the
// flush-on-switch protocol keeps the cache holding the last-known state
// of every context ever visited.
//
// The manager expects a single caller goroutine, mirroring the
// event-driven UI it serves. The only concurrent actor is the sync
// scheduler's timer, which never touches the manager.
type Manager struct {
	store     cache.Store
	client    session.Client
	scheduler *session.Scheduler
	fields    FieldSource

	active          layout.Key
	buffer          layout.Entry
	filters         []layout.Filter
	mappings        map[string]string
	initial         Seed
	sessionRestored bool
}

// New wires a manager to its collaborators. A non-positive quiet
// period selects the scheduler default.
func New(store cache.Store, client session.Client, fields FieldSource, quiet time.Duration) *Manager {
	return &Manager{
		store:     store,
		client:    client,
		scheduler: session.NewScheduler(client, quiet),
		fields:    fields,
		buffer:    layout.Default(),
	}
}

// ActiveKey returns the bound context key, or the zero key when idle.
func (m *Manager) ActiveKey() layout.Key {
	return m.active
}

// Buffer returns a copy of the live layout buffer.
func (m *Manager) Buffer() layout.Entry {
	return m.buffer.Clone()
}

// Filters returns the active filters.
func (m *Manager) Filters() []layout.Filter {
	out := make([]layout.Filter, len(m.filters))
	copy(out, m.filters)
	return out
}

// Mappings returns the active field mappings.
func (m *Manager) Mappings() map[string]string {
	out := make(map[string]string, len(m.mappings))
	for k, v := range m.mappings {
		out[k] = v
	}
	return out
}

// SessionRestored reports whether the current context was seeded from
// a live remote session.
func (m *Manager) SessionRestored() bool {
	return m.sessionRestored
}

// DisplayColumns computes the on-screen column sequence for the active
// context.
func (m *Manager) DisplayColumns() []string {
	if m.active.Zero() {
		return nil
	}
	return layout.DisplayOrder(m.fields(m.active), m.buffer)
}

// SetActiveContext switches the manager to key. Binding the already
// active key is a no-op; otherwise the outgoing buffer is flushed into
// the cache and the incoming context's entry is loaded as a fresh
// copy. The load never consults the remote session; that only happens
// on LoadInitialData.
func (m *Manager) SetActiveContext(key layout.Key) error {
	if key == m.active {
		return nil
	}

	if !m.active.Zero() {
		if err := m.store.Put(m.active, m.buffer.Clone()); err != nil {
			return err
		}
	}

	m.buffer = m.store.Get(key).Clone()
	m.filters = nil
	m.mappings = nil
	m.sessionRestored = false
	m.active = key
	return nil
}

// LoadInitialData opens a context for the first time in a view's life
// and reconciles where its state comes from: a live remote session
// wins, then a caller-supplied saved view, then the cache. The seed is
// remembered as the configuration a hard refresh returns to.
func (m *Manager) LoadInitialData(ctx context.Context, key layout.Key, initial Seed, saved *views.View) (Source, error) {
	if err := m.SetActiveContext(key); err != nil {
		return SourceCache, err
	}
	m.initial = cloneSeed(initial)

	payload, ok, err := m.client.Get(ctx, key)
	if err != nil {
		// A failed read is an empty read; the session is scratch state.
		glog.Warningf("state: session read for %s failed, continuing without: %v", key, err)
		ok = false
	}

	switch {
	case ok:
		m.buffer = payload.Layout()
		m.filters = append([]layout.Filter(nil), payload.Filters...)
		m.mappings = cloneMappings(payload.Mappings)
		m.sessionRestored = true
		m.writeThrough()
		return SourceSession, nil

	case saved != nil:
		m.buffer = saved.Layout()
		m.filters = append([]layout.Filter(nil), saved.Filters...)
		m.mappings = cloneMappings(saved.Mappings)
		m.writeThrough()
		return SourceSavedView, nil

	default:
		// SetActiveContext already loaded the cache entry and reset
		// filters and mappings.
		return SourceCache, nil
	}
}

// Initialize binds key and seeds the buffer from an explicit source,
// bypassing session and cache reconciliation entirely. The seed is
// also what a later hard refresh returns to.
func (m *Manager) Initialize(key layout.Key, seed Seed) error {
	if err := m.SetActiveContext(key); err != nil {
		return err
	}
	m.initial = cloneSeed(seed)
	applied := cloneSeed(seed)
	m.buffer = applied.Layout
	m.filters = applied.Filters
	m.mappings = applied.Mappings
	m.sessionRestored = false
	m.writeThrough()
	return nil
}

// TogglePin pins or unpins the column in the active buffer. Pinning a
// hidden or unknown column leaves the buffer unchanged.
func (m *Manager) TogglePin(column string) error {
	return m.mutate(func(e layout.Entry) layout.Entry {
		return layout.TogglePin(column, m.fields(m.active), e)
	})
}

// ToggleVisibility flips the column's visibility in the active buffer.
func (m *Manager) ToggleVisibility(column string) error {
	return m.mutate(func(e layout.Entry) layout.Entry {
		return layout.ToggleVisibility(column, m.fields(m.active), e)
	})
}

// SetPinnedColumns replaces the pin list.
func (m *Manager) SetPinnedColumns(columns []string) error {
	return m.mutate(func(e layout.Entry) layout.Entry {
		return layout.SetPinned(columns, m.fields(m.active), e)
	})
}

// SetVisibleColumns replaces the visible list.
func (m *Manager) SetVisibleColumns(columns []string) error {
	return m.mutate(func(e layout.Entry) layout.Entry {
		return layout.SetVisible(columns, m.fields(m.active), e)
	})
}

// SetColumnOrder replaces the column order with an already-computed
// permutation, e.g. the result of a drag reorder.
func (m *Manager) SetColumnOrder(order []string) error {
	return m.mutate(func(e layout.Entry) layout.Entry {
		return layout.SetColumnOrder(order, e)
	})
}

// SetFilters replaces the active filters. Filters live in the session
// payload only; the layout cache is untouched beyond the usual write.
func (m *Manager) SetFilters(filters []layout.Filter) error {
	if m.active.Zero() {
		return ErrNoActiveContext
	}
	m.filters = append([]layout.Filter(nil), filters...)
	m.writeThrough()
	return nil
}

// SetFieldMappings replaces the active field mappings.
func (m *Manager) SetFieldMappings(mappings map[string]string) error {
	if m.active.Zero() {
		return ErrNoActiveContext
	}
	m.mappings = cloneMappings(mappings)
	m.writeThrough()
	return nil
}

// HardRefresh discards every trace of customization drift for the
// active context: the remote session, the cache entry, and any pending
// sync. The buffer is re-seeded strictly from the initial
// configuration, never from session or cache.
func (m *Manager) HardRefresh(ctx context.Context) error {
	if m.active.Zero() {
		return ErrNoActiveContext
	}

	m.scheduler.CancelPending()

	if err := m.client.Delete(ctx, m.active); err != nil {
		glog.Warningf("state: session delete for %s failed: %v", m.active, err)
	}
	if err := m.store.Clear(m.active); err != nil {
		return err
	}

	seed := cloneSeed(m.initial)
	m.buffer = seed.Layout
	m.filters = seed.Filters
	m.mappings = seed.Mappings
	m.sessionRestored = false
	return nil
}

// ClearTableCache removes one context's cache entry. Clearing the
// active context also resets the live buffer so the caller sees the
// clear immediately, not only after the next switch.
func (m *Manager) ClearTableCache(key layout.Key) error {
	if err := m.store.Clear(key); err != nil {
		return err
	}
	if key == m.active {
		m.buffer = layout.Default()
	}
	return nil
}

// Flush pushes any pending session write immediately. Short-lived
// callers use this before exiting so an edit is not lost to the quiet
// period.
func (m *Manager) Flush() {
	m.scheduler.Flush()
}

// Reset returns the manager to idle: no active context, default
// buffer, nothing pending. The cache keeps whatever was last written
// through.
func (m *Manager) Reset() {
	m.scheduler.CancelPending()
	m.active = ""
	m.buffer = layout.Default()
	m.filters = nil
	m.mappings = nil
	m.initial = Seed{}
	m.sessionRestored = false
}

// mutate applies an engine transform to the buffer and fans the result
// out: synchronously to the cache, debounced to the session.
func (m *Manager) mutate(fn func(layout.Entry) layout.Entry) error {
	if m.active.Zero() {
		return ErrNoActiveContext
	}
	m.buffer = fn(m.buffer)
	m.writeThrough()
	return nil
}

func (m *Manager) writeThrough() {
	if err := m.store.Put(m.active, m.buffer.Clone()); err != nil {
		// The buffer is still authoritative; the next write retries.
		glog.Warningf("state: cache write for %s failed: %v", m.active, err)
	}
	m.scheduler.Schedule(m.active, session.FromLayout(m.buffer.Clone(), m.Filters(), m.Mappings()))
}

func cloneSeed(s Seed) Seed {
	return Seed{
		Layout:   s.Layout.Clone(),
		Filters:  append([]layout.Filter(nil), s.Filters...),
		Mappings: cloneMappings(s.Mappings),
	}
}

func cloneMappings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
