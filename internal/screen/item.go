package screen

import (
	"github.com/gridhome/springboard/internal/list"
)

// Item is a named entity occupying a slot in exactly one page at a
// time: an App or a Folder. The parent back-reference is weak; the
// holding page owns placement.
type Item interface {
	list.Element

	// Name returns the item's unique name. It doubles as the list key.
	Name() string
	// Parent returns the page currently holding the item, nil when detached.
	Parent() *Page

	setParent(*Page)
}

// itemBase carries the link hooks, name, and parent back-reference
// shared by App and Folder.
type itemBase struct {
	list.Links
	name   string
	parent *Page
}

func (b *itemBase) Key() string        { return b.name }
func (b *itemBase) Name() string       { return b.name }
func (b *itemBase) Parent() *Page      { return b.parent }
func (b *itemBase) setParent(p *Page)  { b.parent = p }
