package popover

import (
	"errors"
	"fmt"
)

// ErrAlreadyRendered is returned when Render is called a second time on the
// same menu instance.
var ErrAlreadyRendered = errors.New("popover: menu already rendered")

// ClickResult describes the outcome of resolving a click against a row.
type ClickResult int

const (
	// ClickIgnored means the click landed outside any row.
	ClickIgnored ClickResult = iota
	// ClickArmed means the row now awaits a confirming second click.
	ClickArmed
	// ClickFired means the item's OnClick callback was invoked.
	ClickFired
)

// rowState carries the transient view flags for one rendered row. The zero
// value is an unarmed, visible row; rebuilding rows resets both flags.
type rowState struct {
	armed  bool
	hidden bool
}

// Menu owns the popover's item view and its open/confirmation state machine.
// The item list passed to New is referenced, not copied; it remains owned by
// the host. Rows are rebuilt wholesale on every RenderItems call and their
// identity is purely positional, so armed flags never outlive a re-render.
type Menu struct {
	full  []Item
	items []Item
	rows  []rowState

	open     bool
	rendered bool

	// Filter holds the raw search text; FilterCursor is a rune offset into
	// it. Both are edited through the methods in filter.go.
	Filter       string
	FilterCursor int

	// Cursor is the index of the keyboard-selected row within the current
	// item view. LastCursor remembers the pre-filter position so clearing
	// the filter can restore it.
	Cursor         int
	LastCursor     int
	ViewportOffset int

	restoreCursor bool
}

// New constructs a menu around the host's initial item list.
func New(items []Item) *Menu {
	return &Menu{full: items, LastCursor: -1}
}

// Render performs the one-time initial build: the full item set becomes the
// current view. Calling it twice is a caller error.
func (m *Menu) Render() error {
	if m.rendered {
		return ErrAlreadyRendered
	}
	m.rendered = true
	m.RenderItems(m.full)
	return nil
}

// RenderItems replaces the current item view. Every row is rebuilt, which
// drops all armed flags; hidden flags are re-derived when the menu is open.
// After this call the row list and item list are index-aligned and equal in
// length.
func (m *Menu) RenderItems(items []Item) {
	m.items = items
	m.rows = make([]rowState, len(items))
	if m.open {
		m.applyHideIf()
	}
	if len(items) == 0 {
		m.Cursor = 0
		m.ViewportOffset = 0
		return
	}
	if m.restoreCursor {
		m.restoreCursor = false
		if m.LastCursor >= 0 && m.LastCursor < len(items) {
			m.Cursor = m.LastCursor
		} else {
			m.Cursor = len(items) - 1
		}
		m.LastCursor = -1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(items) {
		m.Cursor = len(items) - 1
	}
	if m.ViewportOffset > len(items)-1 {
		m.ViewportOffset = 0
	}
}

// Click resolves a positional row index produced by the delegation layer.
// Indices outside the current view (clicks on the prompt, padding, or gaps)
// are silently ignored. Rows requiring confirmation arm on the first click
// and fire on any later click; a second click never un-arms.
func (m *Menu) Click(index int) ClickResult {
	if index < 0 || index >= len(m.items) {
		return ClickIgnored
	}
	item := m.items[index]
	if item.ConfirmationRequired && !m.rows[index].armed {
		m.rows[index].armed = true
		return ClickArmed
	}
	if item.OnClick == nil {
		panic(fmt.Sprintf("popover: item %q has no OnClick handler", item.Label))
	}
	item.OnClick()
	return ClickFired
}

// Open marks the menu open, first re-evaluating every HideIf predicate so
// row visibility reflects the host's current state. Idempotent.
func (m *Menu) Open() {
	m.applyHideIf()
	m.open = true
}

// Close unmarks the open flag and disarms every row, whichever was armed.
func (m *Menu) Close() {
	m.open = false
	for i := range m.rows {
		m.rows[i].armed = false
	}
}

// Opened reports whether the menu currently carries the open flag.
func (m *Menu) Opened() bool {
	return m.open
}

func (m *Menu) applyHideIf() {
	for i, item := range m.items {
		if item.HideIf != nil {
			m.rows[i].hidden = item.HideIf()
		}
	}
}

// Items returns the current (possibly filtered) item view.
func (m *Menu) Items() []Item {
	return m.items
}

// Full returns the host's original, unfiltered item list.
func (m *Menu) Full() []Item {
	return m.full
}

// Len reports the number of rows in the current view.
func (m *Menu) Len() int {
	return len(m.items)
}

// Armed reports whether the row at index awaits a confirming click.
func (m *Menu) Armed(index int) bool {
	return index >= 0 && index < len(m.rows) && m.rows[index].armed
}

// Hidden reports whether the row at index is hidden.
func (m *Menu) Hidden(index int) bool {
	return index >= 0 && index < len(m.rows) && m.rows[index].hidden
}

// VisibleRows returns the indices of rows not currently hidden, in order.
func (m *Menu) VisibleRows() []int {
	visible := make([]int, 0, len(m.rows))
	for i := range m.rows {
		if !m.rows[i].hidden {
			visible = append(visible, i)
		}
	}
	return visible
}

func (m *Menu) visiblePos(index int) int {
	for pos, idx := range m.VisibleRows() {
		if idx == index {
			return pos
		}
	}
	return -1
}

// MoveUp moves the cursor to the previous visible row, wrapping at the top.
func (m *Menu) MoveUp() bool {
	return m.moveWrapped(-1)
}

// MoveDown moves the cursor to the next visible row, wrapping at the bottom.
func (m *Menu) MoveDown() bool {
	return m.moveWrapped(1)
}

func (m *Menu) moveWrapped(step int) bool {
	visible := m.VisibleRows()
	n := len(visible)
	if n == 0 {
		return false
	}
	pos := m.visiblePos(m.Cursor)
	if pos < 0 {
		pos = 0
	} else {
		pos = (pos + step + n) % n
	}
	old := m.Cursor
	m.Cursor = visible[pos]
	return m.Cursor != old
}

// MoveHome moves the cursor to the first visible row.
func (m *Menu) MoveHome() bool {
	visible := m.VisibleRows()
	if len(visible) == 0 {
		return false
	}
	old := m.Cursor
	m.Cursor = visible[0]
	return m.Cursor != old
}

// MoveEnd moves the cursor to the last visible row.
func (m *Menu) MoveEnd() bool {
	visible := m.VisibleRows()
	if len(visible) == 0 {
		return false
	}
	old := m.Cursor
	m.Cursor = visible[len(visible)-1]
	return m.Cursor != old
}

// MovePageUp moves the cursor up by one page of visible rows.
func (m *Menu) MovePageUp(maxVisible int) bool {
	return m.moveByPage(-1, maxVisible)
}

// MovePageDown moves the cursor down by one page of visible rows.
func (m *Menu) MovePageDown(maxVisible int) bool {
	return m.moveByPage(1, maxVisible)
}

func (m *Menu) moveByPage(dir, maxVisible int) bool {
	visible := m.VisibleRows()
	n := len(visible)
	if n == 0 {
		return false
	}
	page := maxVisible
	if page <= 0 || page > n {
		page = n
	}
	pos := m.visiblePos(m.Cursor)
	if pos < 0 {
		pos = 0
	}
	pos += dir * page
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		pos = n - 1
	}
	old := m.Cursor
	m.Cursor = visible[pos]
	return m.Cursor != old
}

// EnsureCursorVisible adjusts the viewport offset (in visible-row positions)
// so the cursor row stays on screen.
func (m *Menu) EnsureCursorVisible(maxVisible int) {
	visible := m.VisibleRows()
	n := len(visible)
	if n == 0 {
		m.ViewportOffset = 0
		return
	}
	pos := m.visiblePos(m.Cursor)
	if pos < 0 {
		pos = 0
		m.Cursor = visible[0]
	}
	if maxVisible <= 0 {
		m.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.ViewportOffset > maxOffset {
		m.ViewportOffset = maxOffset
	}
	if m.ViewportOffset < 0 {
		m.ViewportOffset = 0
	}
	if pos < m.ViewportOffset {
		m.ViewportOffset = pos
	}
	if upper := m.ViewportOffset + maxVisible - 1; pos > upper {
		m.ViewportOffset = pos - maxVisible + 1
		if m.ViewportOffset > maxOffset {
			m.ViewportOffset = maxOffset
		}
		if m.ViewportOffset < 0 {
			m.ViewportOffset = 0
		}
	}
}

// SnapToBestMatch places the cursor on the best match for the active filter.
func (m *Menu) SnapToBestMatch() {
	if len(m.items) == 0 {
		return
	}
	if idx := BestMatchIndex(m.items, m.Filter); idx >= 0 {
		m.Cursor = idx
	}
}
