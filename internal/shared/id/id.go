// Package id provides prefixed ULID generation for springboard.
//
// Pages are identity-less in the UI but need stable keys inside the
// page list; prefixed ULIDs keep those keys unique, lexicographically
// sortable by creation time, and readable in logs (page_01J...).
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// PageID identifies a page within a multi-page container.
type PageID string

// PagePrefix marks page IDs in logs.
const PagePrefix = "page"

// Generator generates ULIDs with optional prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator with secure entropy.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with custom entropy.
// Useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewPageID generates a new page ID.
func NewPageID() PageID {
	return PageID(Default().GenerateWithPrefix(PagePrefix))
}

// Valid reports whether the ID carries the page prefix and a parseable ULID.
func (p PageID) Valid() bool {
	raw, ok := strings.CutPrefix(string(p), PagePrefix+"_")
	if !ok {
		return false
	}
	_, err := ulid.Parse(raw)
	return err == nil
}

func (p PageID) String() string { return string(p) }
