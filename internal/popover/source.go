package popover

import (
	"context"
	"time"
)

// Source supplies candidate items for a query. The menu supports two
// policies behind this one interface: a synchronous local filter and a
// debounced remote lookup, chosen at construction time by the host.
type Source interface {
	// Items returns the ordered candidate list for the query.
	Items(ctx context.Context, query string) ([]Item, error)
	// Debounce is the quiet period required before Items is consulted.
	// Zero means the source is synchronous and is queried on every
	// keystroke.
	Debounce() time.Duration
}

// LocalSource filters a fixed item list with the subsequence Matcher. It
// never fails and needs no debouncing.
type LocalSource struct {
	full []Item
}

// NewLocalSource wraps the host's full item list.
func NewLocalSource(items []Item) *LocalSource {
	return &LocalSource{full: items}
}

// Items filters the original full list; the query never narrows a previous
// result set.
func (s *LocalSource) Items(_ context.Context, query string) ([]Item, error) {
	return FilterItems(s.full, query), nil
}

// Debounce is zero: local filtering re-renders synchronously per keystroke.
func (s *LocalSource) Debounce() time.Duration {
	return 0
}
