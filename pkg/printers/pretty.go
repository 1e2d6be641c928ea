package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/views"
)

type PrettyPrint struct {
	ShowHidden bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Layout renders one context's column layout as a table: display
// position, pin marker, and visibility for every known field.
func (pp *PrettyPrint) Layout(fields []string, e layout.Entry) {
	if len(fields) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no known fields\n\n")
		return
	}

	position := make(map[string]int, len(fields))
	for i, c := range layout.DisplayOrder(fields, e) {
		position[c] = i + 1
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("POS"), bold("COLUMN"), bold("PINNED"), bold("VISIBLE"))
	for _, f := range fields {
		if !e.IsVisible(f) && !pp.ShowHidden {
			continue
		}
		pos := "-"
		if p, ok := position[f]; ok {
			pos = fmt.Sprintf("%d", p)
		}
		tbl.AddRow(pos, f, marker(e.IsPinned(f)), marker(e.IsVisible(f)))
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Views renders the saved view catalog.
func (pp *PrettyPrint) Views(all []views.View) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("NAME"), bold("SOURCE"), bold("TABLE"), bold("FILTERS"), bold("SAVED"))
	for _, v := range all {
		saved := ""
		if !v.SavedAt.IsZero() {
			saved = v.SavedAt.Local().Format("2006-01-02 15:04")
		}
		tbl.AddRow(v.Name, v.Source, v.Table, fmt.Sprintf("%d", len(v.Filters)), saved)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Contexts renders the set of cached context keys.
func (pp *PrettyPrint) Contexts(keys []layout.Key) {
	if len(keys) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	t := color.New()
	for _, key := range keys {
		_, _ = t.Printf("  %s\n", key)
	}
	_, _ = t.Println("")
}

// Filters renders the active filter list inline.
func (pp *PrettyPrint) Filters(filters []layout.Filter) {
	if len(filters) == 0 {
		return
	}
	f := color.New(color.Faint)
	parts := make([]string, len(filters))
	for i, flt := range filters {
		parts[i] = fmt.Sprintf("%s %s %s", flt.Field, flt.Operator, flt.Value)
	}
	_, _ = f.Printf("filters: %s\n\n", strings.Join(parts, ", "))
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func marker(on bool) string {
	if on {
		return "✓"
	}
	return "-"
}
