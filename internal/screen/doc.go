// Package screen models the springboard layout containers: named
// items (apps and folders), fixed-capacity pages holding items, and
// multi-page grids holding pages.
//
// Ownership rules mirror the underlying list package: an item belongs
// to exactly one page at a time and carries a weak back-reference to
// it; a page belongs to at most one grid. Cross-container relocation
// is always remove-then-insert, and every mutation pre-validates the
// destination so a failed operation leaves the layout untouched.
package screen
