package screen

import (
	"github.com/gridhome/springboard/internal/list"
	"github.com/gridhome/springboard/internal/shared/errs"
	"github.com/gridhome/springboard/internal/shared/id"
)

// AtEnd is the position sentinel meaning "append".
const AtEnd = -1

// Kind discriminates page-like containers.
type Kind string

const (
	// KindPage is a regular page inside a grid.
	KindPage Kind = "page"
	// KindDock is the dock: page-like, fixed, never part of a pages list.
	KindDock Kind = "dock"
)

// Page is a fixed-capacity ordered holder of items: one visible screen
// of the grid, or the dock. A grid page is itself a list element inside
// its grid's pages list.
type Page struct {
	list.Links
	id    id.PageID
	kind  Kind
	items *list.List
	owner *Grid
}

func newPage(owner *Grid, capacity int) *Page {
	return &Page{
		id:    id.NewPageID(),
		kind:  KindPage,
		items: list.New(capacity),
		owner: owner,
	}
}

// NewDock creates the dock. It has no owning grid and is never pruned.
func NewDock(capacity int) *Page {
	return &Page{
		id:    id.NewPageID(),
		kind:  KindDock,
		items: list.New(capacity),
	}
}

// Key returns the page's stable key within its grid's pages list.
func (p *Page) Key() string { return p.id.String() }

// ID returns the page ID.
func (p *Page) ID() id.PageID { return p.id }

// Kind returns whether this is a grid page or the dock.
func (p *Page) Kind() Kind { return p.kind }

// Owner returns the grid holding this page, nil for the dock and for
// pages that have been pruned.
func (p *Page) Owner() *Grid { return p.owner }

// Len returns the number of items on the page.
func (p *Page) Len() int { return p.items.Len() }

// Cap returns the page capacity.
func (p *Page) Cap() int { return p.items.Cap() }

// Full reports whether the page has no open slot.
func (p *Page) Full() bool { return p.items.Full() }

// Items returns the page's items in display order.
func (p *Page) Items() []Item {
	out := make([]Item, 0, p.items.Len())
	for e := p.items.Front(); e != nil; e = list.Next(e) {
		out = append(out, e.(Item))
	}
	return out
}

// Names returns the item names in display order.
func (p *Page) Names() []string { return p.items.Keys() }

// Find returns the item with the given name, nil when absent.
func (p *Page) Find(name string) Item {
	e := p.items.Find(name)
	if e == nil {
		return nil
	}
	return e.(Item)
}

// Index returns the ordinal position of the named item, -1 when absent.
func (p *Page) Index(name string) int { return p.items.Index(name) }

// At returns the item at ordinal position i, nil out of range.
func (p *Page) At(i int) Item {
	e := p.items.At(i)
	if e == nil {
		return nil
	}
	return e.(Item)
}

// Contains reports whether it currently sits on this page.
func (p *Page) Contains(it Item) bool { return p.items.Contains(it) }

// Add appends it to the page and reparents it. Fails with
// CapacityExceeded when the page is full, leaving it detached.
func (p *Page) Add(it Item) error {
	return p.AddAt(it, AtEnd)
}

// AddAt inserts it at ordinal position pos (AtEnd appends) and
// reparents it on success.
func (p *Page) AddAt(it Item, pos int) error {
	var err error
	if pos == AtEnd {
		err = p.items.PushBack(it)
	} else {
		err = p.items.InsertAt(pos, it)
	}
	if err != nil {
		return err
	}
	it.setParent(p)
	return nil
}

// Remove unlinks it from the page and clears its parent. Fails with
// InvalidContainer when it is not on this page.
func (p *Page) Remove(it Item) (Item, error) {
	if _, err := p.items.Remove(it); err != nil {
		return nil, err
	}
	it.setParent(nil)
	return it, nil
}

// RemoveLast detaches and returns the last item, nil when empty.
func (p *Page) RemoveLast() Item {
	e := p.items.PopBack()
	if e == nil {
		return nil
	}
	it := e.(Item)
	it.setParent(nil)
	return it
}

// MoveWithin reorders it inside the page: detach and reinsert at pos,
// appending when pos is AtEnd. The item must already be on this page.
func (p *Page) MoveWithin(it Item, pos int) error {
	if !p.items.Contains(it) {
		return errs.InvalidContainer("%q is not on this page", it.Name())
	}
	if pos != AtEnd && (pos < 0 || pos >= p.items.Len()) {
		return errs.InvalidIndex("position %d out of range [0, %d)", pos, p.items.Len())
	}

	// A same-page move frees the slot it consumes, so the reinsert
	// cannot fail once the bounds are checked.
	p.items.Remove(it)
	if pos == AtEnd {
		return p.items.PushBack(it)
	}
	return p.items.InsertAt(pos, it)
}
