package screen

import (
	"github.com/gridhome/springboard/internal/shared/errs"
)

// Folder is a named item that displays as an icon on a page while
// owning its own nested grid of pages. Identity and containment are
// composed: the item half lives on some page of the outer container,
// the grid half holds the folder's contents.
type Folder struct {
	itemBase
	grid *Grid
}

// NewFolder creates an empty folder with the given nested geometry.
func NewFolder(name string, cols, rows, maxPages int) *Folder {
	return &Folder{
		itemBase: itemBase{name: name},
		grid:     NewGrid(cols, rows, maxPages),
	}
}

// Grid returns the folder's nested multi-page container.
func (f *Folder) Grid() *Grid { return f.grid }

// Empty reports whether the folder holds no items.
func (f *Folder) Empty() bool { return f.grid.Empty() }

// ItemCount returns the number of items inside the folder.
func (f *Folder) ItemCount() int { return f.grid.ItemCount() }

// Contains reports whether it currently sits on one of the folder's
// pages.
func (f *Folder) Contains(it Item) bool {
	return it.Parent() != nil && it.Parent().Owner() == f.grid
}

// MoveToPage relocates an item already inside the folder to the page
// at pageIdx, inserting at pos (AtEnd appends). pageIdx equal to the
// current page count creates a new trailing page holding only the
// item; anything beyond fails with InvalidIndex.
func (f *Folder) MoveToPage(it Item, pageIdx, pos int) error {
	if !f.Contains(it) {
		return errs.InvalidContainer("%q is not in folder %q", it.Name(), f.name)
	}

	n := f.grid.PageCount()
	switch {
	case pageIdx >= 0 && pageIdx < n:
		return f.grid.Move(it, f.grid.PageAt(pageIdx), pos)
	case pageIdx == n:
		if f.grid.MaxPages() > 0 && n >= f.grid.MaxPages() {
			return errs.CapacityExceeded("page limit (%d) reached", f.grid.MaxPages())
		}
		if _, err := f.grid.Remove(it); err != nil {
			return err
		}
		_, err := f.grid.AppendPage(it)
		return err
	default:
		return errs.InvalidIndex("page index %d out of range [0, %d]", pageIdx, n)
	}
}
