// Package catalog holds the canned replies the portfolio bot can give, grouped by
// conversational category.
package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCategory = errors.New("category has no replies")
	ErrEmptyGreeting   = errors.New("greeting must not be empty")
)

// Catalog is an immutable mapping from Category to its candidate replies, plus the
// greeting that opens every session. Build one with New or Default.
type Catalog struct {
	greeting string
	replies  map[Category][]string
}

// New validates and copies the given replies. Every category must have at least one
// non-empty reply.
func New(greeting string, replies map[Category][]string) (*Catalog, error) {
	if greeting == "" {
		return nil, ErrEmptyGreeting
	}

	c := &Catalog{
		greeting: greeting,
		replies:  make(map[Category][]string, len(categories)),
	}
	for _, cat := range categories {
		var list []string
		for _, r := range replies[cat] {
			if r != "" {
				list = append(list, r)
			}
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%s: %w", cat, ErrMissingCategory)
		}
		c.replies[cat] = list
	}
	return c, nil
}

// WithOverrides returns a new catalog where the given categories (and greeting, when
// non-empty) replace the receiver's entries.
func (c *Catalog) WithOverrides(greeting string, replies map[Category][]string) (*Catalog, error) {
	if greeting == "" {
		greeting = c.greeting
	}
	merged := make(map[Category][]string, len(categories))
	for _, cat := range categories {
		merged[cat] = c.replies[cat]
		if override, ok := replies[cat]; ok && len(override) > 0 {
			merged[cat] = override
		}
	}
	return New(greeting, merged)
}

// Greeting is the first bot message of every session.
func (c *Catalog) Greeting() string {
	return c.greeting
}

// Replies returns a copy of the candidate replies for cat. Unknown categories resolve to
// the fallback list.
func (c *Catalog) Replies(cat Category) []string {
	list, ok := c.replies[cat]
	if !ok {
		list = c.replies[Fallback]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Len reports how many replies cat has.
func (c *Catalog) Len(cat Category) int {
	list, ok := c.replies[cat]
	if !ok {
		return len(c.replies[Fallback])
	}
	return len(list)
}

// Reply returns the i-th candidate for cat.
func (c *Catalog) Reply(cat Category, i int) string {
	list, ok := c.replies[cat]
	if !ok {
		list = c.replies[Fallback]
	}
	return list[i]
}
