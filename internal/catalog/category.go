package catalog

import (
	"fmt"
	"strings"
)

// Category is a conversational topic used to pick a canned reply.
type Category string

const (
	Greeting     Category = "greeting"
	Projects     Category = "projects"
	Skills       Category = "skills"
	Contact      Category = "contact"
	Availability Category = "availability"
	Fallback     Category = "fallback"
)

var categories = []Category{Greeting, Projects, Skills, Contact, Availability, Fallback}

// Categories returns every category in classifier precedence order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a case-insensitive category name. "default" is accepted as an
// alias for fallback.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "default" {
		return Fallback, nil
	}
	for _, c := range categories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) String() string {
	return string(c)
}
