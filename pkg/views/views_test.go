package views

import (
	"reflect"
	"testing"

	"tableflip.dev/gridstate/pkg/layout"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	v := View{
		Name:     "active users",
		Source:   "ds1",
		Table:    "users",
		Pinned:   []string{"email"},
		Order:    []string{"email", "id", "name"},
		Visible:  []string{"email", "id"},
		Filters:  []layout.Filter{{Field: "status", Operator: "eq", Value: "active"}},
		Mappings: map[string]string{"email": "Email Address"},
	}

	if err := Save(dir, v); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(dir, "active users")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SavedAt.IsZero() {
		t.Fatal("expected save to stamp the view")
	}
	got.SavedAt = v.SavedAt
	if !reflect.DeepEqual(got, v) {
		t.Fatalf("expected %+v, got %+v", v, got)
	}
}

func TestSaveRequiresName(t *testing.T) {
	if err := Save(t.TempDir(), View{Source: "ds1", Table: "users"}); err == nil {
		t.Fatal("expected an error for a nameless view")
	}
}

func TestLoadMissingView(t *testing.T) {
	if _, err := Load(t.TempDir(), "nope"); err == nil {
		t.Fatal("expected an error for a missing view")
	}
}

func TestListSortsByName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zebra", "alpha", "middle"} {
		if err := Save(dir, View{Name: name, Source: "ds1", Table: "t"}); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	got, err := List(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	names := make([]string, len(got))
	for i, v := range got {
		names[i] = v.Name
	}
	want := []string{"alpha", "middle", "zebra"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}

func TestListMissingDirIsEmpty(t *testing.T) {
	got, err := List(t.TempDir() + "/never-created")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no views, got %d", len(got))
	}
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, View{Name: "gone", Source: "ds1", Table: "t"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := Delete(dir, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := Load(dir, "gone"); err == nil {
		t.Fatal("expected view to be gone")
	}
	if err := Delete(dir, "gone"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestViewKeyMatchesContext(t *testing.T) {
	v := View{Name: "n", Source: "ds1", Table: "users"}
	if v.Key() != layout.NewKey("ds1", "users") {
		t.Fatal("view key must match the context key for its source and table")
	}
}
