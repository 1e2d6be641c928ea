package ui

import (
	"context"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/session"
	"tableflip.dev/gridstate/pkg/state"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newTestModel(t *testing.T) model {
	t.Helper()

	store, err := cache.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	contexts := SampleContexts()
	byKey := make(map[layout.Key]Context, len(contexts))
	for _, c := range contexts {
		byKey[layout.NewKey(c.Source, c.Table)] = c
	}

	mgr := state.New(store, session.NewMemoryClient(), func(key layout.Key) []string {
		return byKey[key].Fields
	}, 10*time.Millisecond)

	first := layout.NewKey(contexts[0].Source, contexts[0].Table)
	if _, err := mgr.LoadInitialData(context.Background(), first, state.Seed{}, nil); err != nil {
		t.Fatalf("load initial data: %v", err)
	}

	return model{mgr: mgr, contexts: contexts, keys: defaultKeyMap()}
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestPinKeyPinsSelectedColumn(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "p")

	buf := m.mgr.Buffer()
	if !buf.IsPinned("id") {
		t.Fatalf("expected the first column to be pinned, got %v", buf.Pinned)
	}
}

func TestHideKeyHidesSelectedColumn(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "right", "h")

	buf := m.mgr.Buffer()
	if buf.IsVisible("email") {
		t.Fatalf("expected email to be hidden, got visible %v", buf.Visible)
	}
}

func TestMoveKeyReordersColumns(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "right", "[")

	cols := m.columns()
	if len(cols) < 2 || cols[0] != "email" || cols[1] != "id" {
		t.Fatalf("expected email to move first, got %v", cols)
	}
}

func TestSwitchingContextsPreservesLayouts(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "p")
	m = press(t, m, "tab")

	if got := m.mgr.Buffer().Pinned; len(got) != 0 {
		t.Fatalf("fresh context must start unpinned, got %v", got)
	}

	m = press(t, m, "tab")

	if got := m.mgr.Buffer().Pinned; !reflect.DeepEqual(got, []string{"id"}) {
		t.Fatalf("expected the pin to survive the round trip, got %v", got)
	}
}

func TestClearKeyResetsActiveLayout(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "p", "c")

	if got := m.mgr.Buffer().Pinned; len(got) != 0 {
		t.Fatalf("expected clear to reset the layout, got %v", got)
	}
}

func TestCellPaddingUsesDisplayWidth(t *testing.T) {
	got := pad("café", 6)
	if w := lipgloss.Width(got); w != 6 {
		t.Fatalf("expected display width 6, got %d (%q)", w, got)
	}

	c := Context{
		Fields: []string{"name"},
		Rows:   []map[string]string{{"name": "Ñandú"}, {"name": "Jo"}},
	}
	widths := columnWidths(c, []string{"name"})
	if widths[0] != 5 {
		t.Fatalf("expected widest cell to measure 5 columns, got %d", widths[0])
	}
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m := newTestModel(t)
	if out := m.View(); out == "" {
		t.Fatal("expected a rendered frame")
	}
	m = press(t, m, "p", "right", "h", "tab")
	if out := m.View(); out == "" {
		t.Fatal("expected a rendered frame after edits")
	}
}
