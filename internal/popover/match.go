package popover

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher is the local search predicate: a case-insensitive ordered
// subsequence match. The query's characters must appear in the label in
// order, with arbitrary gaps between them. Regex metacharacters in the query
// are escaped and matched literally.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles a matcher for the given query. An empty (or all
// whitespace) query matches everything.
func NewMatcher(query string) Matcher {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Matcher{}
	}
	var pattern strings.Builder
	pattern.WriteString("(?i)")
	for i, r := range []rune(trimmed) {
		if i > 0 {
			pattern.WriteString(".*")
		}
		pattern.WriteString(regexp.QuoteMeta(string(r)))
	}
	return Matcher{re: regexp.MustCompile(pattern.String())}
}

// Match reports whether label satisfies the subsequence predicate.
func (m Matcher) Match(label string) bool {
	if m.re == nil {
		return true
	}
	return m.re.MatchString(label)
}

// FilterItems returns the items whose labels match the query, preserving the
// source order. An empty query yields a copy of the whole list.
func FilterItems(items []Item, query string) []Item {
	matcher := NewMatcher(query)
	if matcher.re == nil {
		return CloneItems(items)
	}
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if matcher.Match(item.Label) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the row the cursor should land on for a query:
// exact label match first, then prefix, then substring, then the closest
// fuzzy rank. Returns -1 only when there are no items.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
