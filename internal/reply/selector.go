// Package reply picks canned replies for classified user input.
package reply

import (
	"github.com/comigor/portfolio-bot/internal/catalog"
	"github.com/comigor/portfolio-bot/internal/intent"
)

// Selector draws replies uniformly from a catalog.
type Selector struct {
	catalog *catalog.Catalog
	source  Source
}

// NewSelector builds a selector over cat. A nil source is seeded from the clock.
func NewSelector(cat *catalog.Catalog, source Source) *Selector {
	if source == nil {
		source = NewSource(0)
	}
	return &Selector{catalog: cat, source: source}
}

// Select returns one of the catalog's replies for c.
func (s *Selector) Select(c catalog.Category) string {
	n := s.catalog.Len(c)
	return s.catalog.Reply(c, s.source.IntN(n))
}

// Respond classifies input and selects a reply for the resulting category.
func (s *Selector) Respond(input string) (catalog.Category, string) {
	c := intent.Classify(input)
	return c, s.Select(c)
}

// Catalog returns the catalog replies are drawn from.
func (s *Selector) Catalog() *catalog.Catalog {
	return s.catalog
}

// Source exposes the random source so callers can share it for jitter.
func (s *Selector) Source() Source {
	return s.source
}
