package catalog

import (
	"context"
	"time"

	"github.com/tablekit/popover/internal/popover"
)

// maxHeadItems caps the number of host-owned static rows prepended to the
// fetched results.
const maxHeadItems = 2

// Source adapts the catalog client to the popover's item-source contract:
// debounced, asynchronous, and failure-tolerant (the caller logs and keeps
// the previous rows when a fetch fails).
type Source struct {
	client   *Client
	head     []popover.Item
	onPick   func(Product)
	debounce time.Duration
}

// NewSource builds a remote item source. head rows (at most two are kept)
// stay pinned above the fetched results; onPick runs when a fetched row is
// clicked.
func NewSource(client *Client, head []popover.Item, onPick func(Product), debounce time.Duration) *Source {
	if len(head) > maxHeadItems {
		head = head[:maxHeadItems]
	}
	if debounce < 500*time.Millisecond {
		debounce = 500 * time.Millisecond
	}
	return &Source{
		client:   client,
		head:     popover.CloneItems(head),
		onPick:   onPick,
		debounce: debounce,
	}
}

// Items fetches the catalog and wraps each product into a popover item whose
// click hands the product back to the host.
func (s *Source) Items(ctx context.Context, query string) ([]popover.Item, error) {
	products, err := s.client.Products(ctx, query)
	if err != nil {
		return nil, err
	}
	items := make([]popover.Item, 0, len(s.head)+len(products))
	items = append(items, s.head...)
	for _, product := range products {
		product := product
		items = append(items, popover.Item{
			Label: product.Title,
			Icon:  categoryIcon(product.Category),
			OnClick: func() {
				if s.onPick != nil {
					s.onPick(product)
				}
			},
		})
	}
	return items, nil
}

// Debounce reports the quiet period required before a fetch.
func (s *Source) Debounce() time.Duration {
	return s.debounce
}

func categoryIcon(category string) string {
	switch category {
	case "hardware":
		return "⚙"
	case "software":
		return "▣"
	default:
		return "·"
	}
}
