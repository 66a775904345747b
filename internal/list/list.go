// Package list implements the intrusive, capacity-bounded doubly
// linked list underlying every springboard container.
//
// Elements embed Links and are owned by at most one List at a time;
// neighbor references are weak and only the owning list may relink
// them. Reordering and removal are O(1) given an element, which is
// what makes arbitrary-position moves cheap at the container level.
// Ordinal and key lookups are O(n).
package list

import (
	"github.com/gridhome/springboard/internal/shared/errs"
)

// Element is anything that can live in a List. Embedding Links
// provides the linkable implementation, so concrete types only supply
// a Key.
type Element interface {
	// Key returns the element's lookup key, unique within its list.
	Key() string

	linkable() *Links
}

// Links carries the intrusive link state. Embed it in any struct that
// should be storable in a List. The zero value is detached.
type Links struct {
	prev, next Element
	owner      *List
}

func (l *Links) linkable() *Links { return l }

// List is an ordered sequence of Elements with an optional capacity.
type List struct {
	head, tail Element
	size       int
	capacity   int // <= 0 means unbounded
}

// New creates a list bounded to capacity elements. A capacity <= 0
// means unbounded.
func New(capacity int) *List {
	return &List{capacity: capacity}
}

// Len returns the number of elements in the list.
func (l *List) Len() int { return l.size }

// Cap returns the list capacity, 0 for unbounded.
func (l *List) Cap() int {
	if l.capacity <= 0 {
		return 0
	}
	return l.capacity
}

// Full reports whether the list has reached its capacity.
func (l *List) Full() bool {
	return l.capacity > 0 && l.size >= l.capacity
}

// Front returns the first element, nil when empty.
func (l *List) Front() Element { return l.head }

// Back returns the last element, nil when empty.
func (l *List) Back() Element { return l.tail }

// Contains reports whether e currently belongs to this list.
func (l *List) Contains(e Element) bool {
	return e != nil && e.linkable().owner == l
}

// Next returns the element after e, nil at the end. e must belong to
// some list; the relation is only meaningful within it.
func Next(e Element) Element { return e.linkable().next }

// Prev returns the element before e, nil at the front.
func Prev(e Element) Element { return e.linkable().prev }

// PushBack appends e. Fails with CapacityExceeded when full; the list
// is unchanged on failure.
func (l *List) PushBack(e Element) error {
	if l.Full() {
		return errs.CapacityExceeded("list is full (capacity %d)", l.capacity)
	}

	lk := claim(l, e)
	lk.prev = l.tail
	if l.tail != nil {
		l.tail.linkable().next = e
	} else {
		l.head = e
	}
	l.tail = e
	l.size++
	return nil
}

// PushFront prepends e, with the same capacity behavior as PushBack.
func (l *List) PushFront(e Element) error {
	if l.Full() {
		return errs.CapacityExceeded("list is full (capacity %d)", l.capacity)
	}

	lk := claim(l, e)
	lk.next = l.head
	if l.head != nil {
		l.head.linkable().prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.size++
	return nil
}

// PopBack detaches and returns the last element, nil when empty.
func (l *List) PopBack() Element {
	if l.tail == nil {
		return nil
	}
	e, _ := l.Remove(l.tail)
	return e
}

// PopFront detaches and returns the first element, nil when empty.
func (l *List) PopFront() Element {
	if l.head == nil {
		return nil
	}
	e, _ := l.Remove(l.head)
	return e
}

// Remove detaches e from the list, relinking its neighbors, and
// returns it with cleared links. Fails with InvalidContainer when e
// does not belong to this list.
func (l *List) Remove(e Element) (Element, error) {
	lk := e.linkable()
	if lk.owner != l {
		return nil, errs.InvalidContainer("element %q does not belong to this list", e.Key())
	}

	if lk.prev != nil {
		lk.prev.linkable().next = lk.next
	} else {
		l.head = lk.next
	}
	if lk.next != nil {
		lk.next.linkable().prev = lk.prev
	} else {
		l.tail = lk.prev
	}

	lk.prev, lk.next, lk.owner = nil, nil, nil
	l.size--
	return e, nil
}

// InsertBefore links e immediately before anchor.
func (l *List) InsertBefore(anchor, e Element) error {
	if err := l.checkInsert(anchor); err != nil {
		return err
	}

	alk := anchor.linkable()
	lk := claim(l, e)
	lk.next = anchor
	lk.prev = alk.prev
	if alk.prev != nil {
		alk.prev.linkable().next = e
	} else {
		l.head = e
	}
	alk.prev = e
	l.size++
	return nil
}

// InsertAfter links e immediately after anchor.
func (l *List) InsertAfter(anchor, e Element) error {
	if err := l.checkInsert(anchor); err != nil {
		return err
	}

	alk := anchor.linkable()
	lk := claim(l, e)
	lk.prev = anchor
	lk.next = alk.next
	if alk.next != nil {
		alk.next.linkable().prev = e
	} else {
		l.tail = e
	}
	alk.next = e
	l.size++
	return nil
}

// InsertBeforeKey resolves the anchor by key, failing with NotFound
// when it is absent.
func (l *List) InsertBeforeKey(key string, e Element) error {
	anchor := l.Find(key)
	if anchor == nil {
		return errs.NotFound("%q is not in the list", key)
	}
	return l.InsertBefore(anchor, e)
}

// InsertAfterKey resolves the anchor by key, failing with NotFound
// when it is absent.
func (l *List) InsertAfterKey(key string, e Element) error {
	anchor := l.Find(key)
	if anchor == nil {
		return errs.NotFound("%q is not in the list", key)
	}
	return l.InsertAfter(anchor, e)
}

// InsertAt links e at ordinal position i; i == Len() appends.
func (l *List) InsertAt(i int, e Element) error {
	if i < 0 || i > l.size {
		return errs.InvalidIndex("index %d out of range [0, %d]", i, l.size)
	}

	switch {
	case i == l.size:
		return l.PushBack(e)
	case i == 0:
		return l.PushFront(e)
	default:
		return l.InsertBefore(l.At(i), e)
	}
}

// At returns the element at ordinal position i, nil out of range.
func (l *List) At(i int) Element {
	if i < 0 || i >= l.size {
		return nil
	}

	e := l.head
	for ; i > 0; i-- {
		e = e.linkable().next
	}
	return e
}

// Index returns the ordinal position of the element with the given
// key, -1 when absent.
func (l *List) Index(key string) int {
	i := 0
	for e := l.head; e != nil; e = e.linkable().next {
		if e.Key() == key {
			return i
		}
		i++
	}
	return -1
}

// Find returns the first element with the given key, nil when absent.
func (l *List) Find(key string) Element {
	for e := l.head; e != nil; e = e.linkable().next {
		if e.Key() == key {
			return e
		}
	}
	return nil
}

// Keys returns the element keys in list order.
func (l *List) Keys() []string {
	keys := make([]string, 0, l.size)
	for e := l.head; e != nil; e = e.linkable().next {
		keys = append(keys, e.Key())
	}
	return keys
}

func (l *List) checkInsert(anchor Element) error {
	if l.Full() {
		return errs.CapacityExceeded("list is full (capacity %d)", l.capacity)
	}
	if anchor == nil || anchor.linkable().owner != l {
		return errs.InvalidContainer("anchor does not belong to this list")
	}
	return nil
}

// claim clears stale links and marks e as owned by l. Moving an
// element between lists is always remove-then-insert; by the time an
// element is claimed any leftover links are stale.
func claim(l *List, e Element) *Links {
	lk := e.linkable()
	lk.prev, lk.next = nil, nil
	lk.owner = l
	return lk
}
