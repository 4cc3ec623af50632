package popover

// Item is a single actionable menu entry supplied by the host.
type Item struct {
	// Label is the display text and the default search target.
	Label string
	// Icon is an opaque markup blob rendered in front of the label. It may
	// contain ANSI escape sequences and is never parsed or restyled.
	Icon string
	// Content, when non-empty, replaces the icon+label rendering for the
	// whole row. Like Icon it is passed through untouched.
	Content string
	// ConfirmationRequired makes the first click arm the row instead of
	// firing the action; the second click fires it.
	ConfirmationRequired bool
	// HideIf hides the row while the menu is open. It is re-evaluated on
	// every Open call, never cached.
	HideIf func() bool
	// OnClick runs on a confirmed (or confirmation-free) click. A nil
	// OnClick on a clicked row is a host contract violation and panics.
	OnClick func()
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
