package screen

import (
	"github.com/gridhome/springboard/internal/list"
	"github.com/gridhome/springboard/internal/shared/errs"
)

// Grid is a multi-page container: an ordered, capacity-bounded list of
// pages with automatic page creation, overflow splitting, and empty
// page pruning. Home and every folder each own one.
type Grid struct {
	cols, rows int
	pageCap    int
	maxPages   int // <= 0 means unbounded
	pages      *list.List
}

// NewGrid creates a grid of cols x rows pages, holding at most
// maxPages pages (<= 0 for unbounded).
func NewGrid(cols, rows, maxPages int) *Grid {
	return &Grid{
		cols:     cols,
		rows:     rows,
		pageCap:  cols * rows,
		maxPages: maxPages,
		pages:    list.New(maxPages),
	}
}

// Columns returns the page column count.
func (g *Grid) Columns() int { return g.cols }

// Rows returns the page row count.
func (g *Grid) Rows() int { return g.rows }

// PageCapacity returns the per-page item capacity.
func (g *Grid) PageCapacity() int { return g.pageCap }

// MaxPages returns the page limit, 0 for unbounded.
func (g *Grid) MaxPages() int {
	if g.maxPages <= 0 {
		return 0
	}
	return g.maxPages
}

// MaxItems returns the total item limit, 0 for unbounded.
func (g *Grid) MaxItems() int {
	if g.maxPages <= 0 {
		return 0
	}
	return g.pageCap * g.maxPages
}

// PageCount returns the current number of pages.
func (g *Grid) PageCount() int { return g.pages.Len() }

// Pages returns the pages in display order.
func (g *Grid) Pages() []*Page {
	out := make([]*Page, 0, g.pages.Len())
	for e := g.pages.Front(); e != nil; e = list.Next(e) {
		out = append(out, e.(*Page))
	}
	return out
}

// PageAt returns the page at ordinal position i, nil out of range.
func (g *Grid) PageAt(i int) *Page {
	e := g.pages.At(i)
	if e == nil {
		return nil
	}
	return e.(*Page)
}

// ItemCount returns the total number of items across all pages.
func (g *Grid) ItemCount() int {
	n := 0
	for e := g.pages.Front(); e != nil; e = list.Next(e) {
		n += e.(*Page).Len()
	}
	return n
}

// Empty reports whether the grid holds no items. Because empty pages
// are pruned, this is equivalent to holding no pages.
func (g *Grid) Empty() bool { return g.pages.Len() == 0 }

// CanPlace reports whether an item could be inserted with the given
// target page (nil for an untargeted add).
func (g *Grid) CanPlace(target *Page) bool {
	return g.ValidatePlacement(target, AtEnd) == nil
}

// ValidatePlacement checks whether an item could be inserted targeting
// page (nil for an untargeted add) at pos, without mutating anything.
// Callers moving an item in from another container run this before
// detaching it from its source, so a rejected move never strands the
// item.
func (g *Grid) ValidatePlacement(target *Page, pos int) error {
	if target == nil {
		if g.maxPages <= 0 || g.pages.Len() < g.maxPages {
			return nil
		}
		for e := g.pages.Back(); e != nil; e = list.Prev(e) {
			if !e.(*Page).Full() {
				return nil
			}
		}
		return errs.CapacityExceeded("no open slot on any of the %d pages", g.pages.Len())
	}

	if target.owner != g {
		return errs.InvalidContainer("page does not belong to this container")
	}
	splitting := target.Full()
	if splitting && g.maxPages > 0 && g.pages.Len() >= g.maxPages {
		return errs.CapacityExceeded("page is full and the page limit (%d) is reached", g.maxPages)
	}

	// Position bounds against the page as it will look after the split.
	room := target.Len()
	if splitting {
		room--
	}
	if pos != AtEnd && (pos < 0 || pos > room) {
		return errs.InvalidIndex("position %d out of range [0, %d]", pos, room)
	}
	return nil
}

// Add places it on the last open page, creating a new page when the
// last one is full and the page limit allows. At the page limit it
// scans tail to head for any opening, favoring recently created pages
// so long-lived layouts stay put. Fails with CapacityExceeded when no
// slot exists.
func (g *Grid) Add(it Item) error {
	last, _ := g.pages.Back().(*Page)
	if last != nil && !last.Full() {
		return last.Add(it)
	}

	if g.maxPages <= 0 || g.pages.Len() < g.maxPages {
		return g.pushNewPage(it)
	}

	for e := g.pages.Back(); e != nil; e = list.Prev(e) {
		if p := e.(*Page); !p.Full() {
			return p.Add(it)
		}
	}
	return errs.CapacityExceeded("no open slot on any of the %d pages", g.pages.Len())
}

// AddToPage places it on page at ordinal position pos (AtEnd appends).
// A full page is relieved by an overflow split: its last item moves
// alone onto a brand-new page inserted immediately after. Fails with
// InvalidContainer when the page belongs to another grid, and with
// CapacityExceeded when the page is full and the page limit leaves no
// room to split; nothing is mutated on failure.
func (g *Grid) AddToPage(it Item, page *Page, pos int) error {
	if page == nil {
		return errs.InvalidContainer("page does not belong to this container")
	}
	if err := g.ValidatePlacement(page, pos); err != nil {
		return err
	}

	if page.Full() {
		if err := g.splitAfter(page); err != nil {
			return err
		}
	}
	return page.AddAt(it, pos)
}

// AppendPage creates a new page at the end of the grid holding only
// it. Fails with CapacityExceeded at the page limit.
func (g *Grid) AppendPage(it Item) (*Page, error) {
	if g.maxPages > 0 && g.pages.Len() >= g.maxPages {
		return nil, errs.CapacityExceeded("page limit (%d) reached", g.maxPages)
	}
	if err := g.pushNewPage(it); err != nil {
		return nil, err
	}
	return g.pages.Back().(*Page), nil
}

// Remove detaches it from its page and prunes the page if it became
// empty. Fails with InvalidContainer when it is not held by this grid.
func (g *Grid) Remove(it Item) (Item, error) {
	page := it.Parent()
	if page == nil || page.owner != g {
		return nil, errs.InvalidContainer("%q is not in this container", it.Name())
	}

	removed, err := page.Remove(it)
	if err != nil {
		return nil, err
	}
	g.prune(page)
	return removed, nil
}

// Move relocates it to dest at pos. A same-page move is a local
// reorder. A cross-page move validates that dest can accept the item
// (directly or via an overflow split) before detaching it from its
// source, so a failed move leaves the grid untouched; the emptied
// source page is pruned afterwards.
func (g *Grid) Move(it Item, dest *Page, pos int) error {
	src := it.Parent()
	if src == nil || src.owner != g {
		return errs.InvalidContainer("%q is not in this container", it.Name())
	}
	if dest == nil || dest.owner != g {
		return errs.InvalidContainer("destination page does not belong to this container")
	}

	if src == dest {
		return dest.MoveWithin(it, pos)
	}

	if err := g.ValidatePlacement(dest, pos); err != nil {
		return err
	}
	splitting := dest.Full()

	removed, err := src.Remove(it)
	if err != nil {
		return err
	}
	if splitting {
		if err := g.splitAfter(dest); err != nil {
			return err
		}
	}
	if err := dest.AddAt(removed, pos); err != nil {
		return err
	}
	g.prune(src)
	return nil
}

// RemovePage detaches an empty page from the grid. Pages holding items
// are never removed.
func (g *Grid) RemovePage(page *Page) error {
	if page == nil || page.owner != g {
		return errs.InvalidContainer("page does not belong to this container")
	}
	if page.Len() > 0 {
		return errs.Conflict("page still holds %d item(s)", page.Len())
	}
	g.pages.Remove(page)
	page.owner = nil
	return nil
}

// splitAfter relieves a full page: its last item moves alone onto a
// new page inserted immediately after it. Callers check the page limit
// first.
func (g *Grid) splitAfter(page *Page) error {
	np := newPage(g, g.pageCap)
	if err := g.pages.InsertAfter(page, np); err != nil {
		return err
	}
	return np.Add(page.RemoveLast())
}

func (g *Grid) pushNewPage(it Item) error {
	np := newPage(g, g.pageCap)
	if err := g.pages.PushBack(np); err != nil {
		return err
	}
	return np.Add(it)
}

// prune drops page from the grid once it is empty.
func (g *Grid) prune(page *Page) {
	if page.owner == g && page.Len() == 0 {
		g.pages.Remove(page)
		page.owner = nil
	}
}
