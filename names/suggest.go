package names

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type suggestion struct {
	name     string
	prefix   bool
	distance int
}

type suggestionSort []suggestion

func (s suggestionSort) Len() int      { return len(s) }
func (s suggestionSort) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s suggestionSort) Less(i, j int) bool {
	left, right := s[i], s[j]
	if left.prefix != right.prefix {
		return left.prefix
	}

	if left.distance != right.distance {
		return left.distance < right.distance
	}

	return left.name < right.name
}

// Suggest returns at most limit listed names closest to input, e.g. to complete or correct what the user
// typed. Names starting with the input come first, then the rest by edit distance. When limit is not
// positive, every name is returned, ordered.
func (c *Cache) Suggest(input string, limit int) []string {
	s := make(suggestionSort, len(c.names))
	for i, n := range c.names {
		s[i] = suggestion{
			name:     n,
			prefix:   strings.HasPrefix(n, input),
			distance: levenshtein.ComputeDistance(input, n),
		}
	}

	sort.Sort(s)
	if limit > 0 && len(s) > limit {
		s = s[:limit]
	}

	r := make([]string, len(s))
	for i, si := range s {
		r[i] = si.name
	}

	return r
}
