// Package intent maps free text to a catalog category by keyword precedence.
package intent

import (
	"regexp"
	"strings"

	"github.com/comigor/portfolio-bot/internal/catalog"
)

// keyword is a substring to look for, or a whole word when pattern is set.
type keyword struct {
	word    string
	pattern *regexp.Regexp
}

func substr(word string) keyword {
	return keyword{word: word}
}

func wholeWord(word string) keyword {
	return keyword{word: word, pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)}
}

func (k keyword) in(text string) bool {
	if k.pattern != nil {
		return k.pattern.MatchString(text)
	}
	return strings.Contains(text, k.word)
}

// rule binds a category to the keywords that select it.
type rule struct {
	category catalog.Category
	keywords []keyword
}

// rules are tested in order; the first rule with a matching keyword wins.
// "work" appears under both projects and availability, so availability never sees it.
// "hi" must be a whole word, otherwise "hire" and "which" would read as greetings.
var rules = []rule{
	{catalog.Greeting, []keyword{substr("hello"), wholeWord("hi"), substr("hey")}},
	{catalog.Projects, []keyword{substr("project"), substr("work"), substr("temp box"), substr("tele drive")}},
	{catalog.Skills, []keyword{substr("skill"), substr("tech"), substr("stack"), substr("technology")}},
	{catalog.Contact, []keyword{substr("contact"), substr("reach"), substr("email"), substr("telegram")}},
	{catalog.Availability, []keyword{substr("available"), substr("hire"), substr("work"), substr("job")}},
}

func (r rule) match(text string) (string, bool) {
	for _, kw := range r.keywords {
		if kw.in(text) {
			return kw.word, true
		}
	}
	return "", false
}

// Classify returns the category for input. It never fails: text that matches no rule
// is catalog.Fallback.
func Classify(input string) catalog.Category {
	c, _ := Match(input)
	return c
}

// Match is Classify that also reports which keyword decided the category. The keyword
// is empty for catalog.Fallback.
func Match(input string) (catalog.Category, string) {
	text := strings.ToLower(input)
	for _, r := range rules {
		if kw, ok := r.match(text); ok {
			return r.category, kw
		}
	}
	return catalog.Fallback, ""
}

// Keywords returns the keyword set for c, or nil for catalog.Fallback.
func Keywords(c catalog.Category) []string {
	for _, r := range rules {
		if r.category == c {
			out := make([]string, len(r.keywords))
			for i, kw := range r.keywords {
				out[i] = kw.word
			}
			return out
		}
	}
	return nil
}
