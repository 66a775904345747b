// Package testutil provides shared helpers for springboard tests.
package testutil

import (
	"testing"

	"github.com/gridhome/springboard/internal/home"
	"github.com/gridhome/springboard/internal/screen"
	"github.com/gridhome/springboard/internal/shared/errs"
)

// SmallOptions is a compact layout that makes paging and capacity
// edges easy to reach in tests: 2x2 pages, three pages max, a two-slot
// dock, 2x1 folder pages.
func SmallOptions() home.Options {
	return home.Options{
		Columns:        2,
		Rows:           2,
		MaxPages:       3,
		DockCapacity:   2,
		FolderColumns:  2,
		FolderRows:     1,
		FolderMaxPages: 2,
	}
}

// NewSmall creates an empty manager with the compact layout.
func NewSmall(t *testing.T) *home.Manager {
	t.Helper()
	return home.New(SmallOptions())
}

// NewSmallWith creates a compact manager pre-loaded with apps.
func NewSmallWith(t *testing.T, apps ...string) *home.Manager {
	t.Helper()
	m := NewSmall(t)
	InstallApps(t, m, apps...)
	return m
}

// InstallApps adds apps in order, failing the test on any error.
func InstallApps(t *testing.T, m *home.Manager, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := m.AddApp(name); err != nil {
			t.Fatalf("AddApp(%s): %v", name, err)
		}
	}
}

// PageNames returns the item names of every home page in order.
func PageNames(m *home.Manager) [][]string {
	pages := m.Pages()
	out := make([][]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.Names())
	}
	return out
}

// FolderPageNames returns the item names of every page inside a folder.
func FolderPageNames(f *screen.Folder) [][]string {
	out := make([][]string, 0, f.Grid().PageCount())
	for _, p := range f.Grid().Pages() {
		out = append(out, p.Names())
	}
	return out
}

// RequireErrType fails the test unless err carries the given type.
func RequireErrType(t *testing.T, err error, want errs.Type) {
	t.Helper()
	if !errs.IsType(err, want) {
		t.Fatalf("expected %s error, got %v", want, err)
	}
}
