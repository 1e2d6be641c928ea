// Package views stores named view configurations: an explicitly saved
// snapshot of layout, filters, and field mappings for one context,
// distinct from the ephemeral remote session.
package views

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"

	"tableflip.dev/gridstate/pkg/layout"
)

// View is one saved configuration. Loading it yields the fallback seed
// used when no session is live for the context.
type View struct {
	Name     string            `toml:"name"`
	Source   string            `toml:"source"`
	Table    string            `toml:"table"`
	Pinned   []string          `toml:"pinned_columns"`
	Order    []string          `toml:"column_order"`
	Visible  []string          `toml:"visible_columns"`
	Filters  []layout.Filter   `toml:"filters,omitempty"`
	Mappings map[string]string `toml:"field_mappings,omitempty"`
	SavedAt  time.Time         `toml:"saved_at"`
}

// Key returns the context key the view belongs to.
func (v View) Key() layout.Key {
	return layout.NewKey(v.Source, v.Table)
}

// Layout extracts the layout portion of the view.
func (v View) Layout() layout.Entry {
	e := layout.Entry{Pinned: v.Pinned, Order: v.Order, Visible: v.Visible}
	if e.Pinned == nil {
		e.Pinned = []string{}
	}
	if e.Order == nil {
		e.Order = []string{}
	}
	if e.Visible == nil {
		e.Visible = []string{}
	}
	return e
}

const defaultViewsDir = "~/.config/gridstate/views"

// DefaultDir returns the default directory for saved view files.
func DefaultDir() string {
	if expanded, err := homedir.Expand(defaultViewsDir); err == nil {
		return expanded
	}
	return defaultViewsDir
}

// Save writes the view to dir as <name>.toml, creating the directory
// as needed.
func Save(dir string, v View) error {
	if strings.TrimSpace(v.Name) == "" {
		return errors.New("views: view name required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("views: create views dir: %w", err)
	}

	if v.SavedAt.IsZero() {
		v.SavedAt = time.Now().UTC()
	}

	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("views: marshal %s: %w", v.Name, err)
	}
	if err := os.WriteFile(path(dir, v.Name), data, 0o644); err != nil {
		return fmt.Errorf("views: write %s: %w", v.Name, err)
	}
	return nil
}

// Load reads the named view from dir.
func Load(dir, name string) (View, error) {
	data, err := os.ReadFile(path(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return View{}, fmt.Errorf("views: no saved view %q", name)
		}
		return View{}, fmt.Errorf("views: read %s: %w", name, err)
	}
	var v View
	if err := toml.Unmarshal(data, &v); err != nil {
		return View{}, fmt.Errorf("views: decode %s: %w", name, err)
	}
	return v, nil
}

// List returns every readable view in dir sorted by name. Unreadable
// files are skipped with a note on stderr so one broken file cannot
// hide the rest.
func List(dir string) ([]View, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("views: list %s: %w", dir, err)
	}

	out := make([]View, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")
		v, err := Load(dir, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "views: %s: %s\n", entry.Name(), err)
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Delete removes the named view. Removing an absent view is a no-op.
func Delete(dir, name string) error {
	if err := os.Remove(path(dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("views: delete %s: %w", name, err)
	}
	return nil
}

func path(dir, name string) string {
	return filepath.Join(dir, sanitize(name)+".toml")
}

// sanitize keeps view names filesystem-safe without being precious
// about it.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '-'
		}
		return r
	}, name)
}
