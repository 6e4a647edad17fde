package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCoversEveryCategory(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.Greeting())
	for _, cat := range Categories() {
		require.GreaterOrEqual(t, c.Len(cat), 2, "category %s", cat)
	}
}

func TestNewRejectsMissingFallback(t *testing.T) {
	replies := map[Category][]string{
		Greeting:     {"hi"},
		Projects:     {"p"},
		Skills:       {"s"},
		Contact:      {"c"},
		Availability: {"a"},
		Fallback:     {""},
	}
	_, err := New("hello", replies)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingCategory))
	require.Contains(t, err.Error(), "fallback")
}

func TestNewRejectsEmptyGreeting(t *testing.T) {
	_, err := New("", defaultReplies)
	require.ErrorIs(t, err, ErrEmptyGreeting)
}

func TestRepliesReturnsCopy(t *testing.T) {
	c := Default()
	list := c.Replies(Projects)
	list[0] = "mutated"
	require.NotEqual(t, "mutated", c.Replies(Projects)[0])
}

func TestWithOverrides(t *testing.T) {
	base := Default()
	c, err := base.WithOverrides("", map[Category][]string{Skills: {"Go, mostly."}})
	require.NoError(t, err)

	require.Equal(t, base.Greeting(), c.Greeting())
	require.Equal(t, []string{"Go, mostly."}, c.Replies(Skills))
	require.Equal(t, base.Replies(Projects), c.Replies(Projects))
	// base is untouched
	require.Equal(t, 2, base.Len(Skills))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Projects ")
	require.NoError(t, err)
	require.Equal(t, Projects, c)

	c, err = ParseCategory("default")
	require.NoError(t, err)
	require.Equal(t, Fallback, c)

	_, err = ParseCategory("weather")
	require.Error(t, err)
}
