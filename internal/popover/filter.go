package popover

import (
	"strings"
	"unicode"
)

// SetFilter updates the search text and caret position. Entering a filter
// remembers the cursor row so clearing the filter later can restore it; the
// actual item refresh is driven by the menu's Source through RenderItems.
func (m *Menu) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(m.Filter)
	m.Filter = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	m.FilterCursor = cursor
	switch {
	case trimmed != "" && prevTrimmed == "":
		m.LastCursor = m.Cursor
		m.Cursor = 0
	case trimmed != "":
		m.Cursor = 0
	case prevTrimmed != "":
		m.restoreCursor = true
	}
}

// FilterCursorPos returns the rune offset of the caret, clamped to the text.
func (m *Menu) FilterCursorPos() int {
	runes := []rune(m.Filter)
	if m.FilterCursor < 0 {
		return 0
	}
	if m.FilterCursor > len(runes) {
		return len(runes)
	}
	return m.FilterCursor
}

// InsertFilterText inserts text at the caret.
func (m *Menu) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(m.Filter)
	pos := m.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	m.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward removes the rune before the caret.
func (m *Menu) DeleteFilterRuneBackward() bool {
	runes := []rune(m.Filter)
	pos := m.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	m.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward removes the word preceding the caret.
func (m *Menu) DeleteFilterWordBackward() bool {
	runes := []rune(m.Filter)
	pos := m.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	start := prevWordStart(runes, pos)
	updated := append(runes[:start:start], runes[pos:]...)
	m.SetFilter(string(updated), start)
	return true
}

// ClearFilter drops the search text entirely.
func (m *Menu) ClearFilter() bool {
	if m.Filter == "" {
		return false
	}
	m.SetFilter("", 0)
	return true
}

// MoveFilterCursorStart moves the caret to the start of the text.
func (m *Menu) MoveFilterCursorStart() bool {
	if m.FilterCursorPos() == 0 {
		return false
	}
	m.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the caret to the end of the text.
func (m *Menu) MoveFilterCursorEnd() bool {
	end := len([]rune(m.Filter))
	if m.FilterCursorPos() == end {
		return false
	}
	m.FilterCursor = end
	return true
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (m *Menu) MoveFilterCursorRuneBackward() bool {
	pos := m.FilterCursorPos()
	if pos == 0 {
		return false
	}
	m.FilterCursor = pos - 1
	return true
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (m *Menu) MoveFilterCursorRuneForward() bool {
	pos := m.FilterCursorPos()
	if pos >= len([]rune(m.Filter)) {
		return false
	}
	m.FilterCursor = pos + 1
	return true
}

// MoveFilterCursorWordBackward moves the caret to the previous word start.
func (m *Menu) MoveFilterCursorWordBackward() bool {
	runes := []rune(m.Filter)
	pos := m.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	start := prevWordStart(runes, pos)
	if start == pos {
		return false
	}
	m.FilterCursor = start
	return true
}

// MoveFilterCursorWordForward moves the caret past the next word.
func (m *Menu) MoveFilterCursorWordForward() bool {
	runes := []rune(m.Filter)
	pos := m.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	m.FilterCursor = i
	return true
}

// prevWordStart scans left from pos across trailing spaces and then the word
// itself, returning the word's starting offset.
func prevWordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
