package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tablekit/popover/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.menu.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput routes a keystroke into the filter field. handled reports
// whether the key was consumed; changed reports whether the filter text was
// edited (as opposed to caret movement), which is what triggers an item
// refresh.
func (m *Model) handleTextInput(msg tea.KeyMsg) (handled, changed bool) {
	menu := m.menu
	switch msg.String() {
	case "ctrl+u":
		before := menu.FilterCursorPos()
		if !menu.ClearFilter() {
			return false, false
		}
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		events.Filter.Cleared()
		return true, true
	case "ctrl+w":
		before := menu.FilterCursorPos()
		if !menu.DeleteFilterWordBackward() {
			return false, false
		}
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		events.Filter.WordBackspace(menu.Filter)
		return true, true
	case "ctrl+a":
		before := menu.FilterCursorPos()
		if !menu.MoveFilterCursorStart() {
			return false, false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(menu.FilterCursor)
		return true, false
	case "ctrl+e":
		before := menu.FilterCursorPos()
		if !menu.MoveFilterCursorEnd() {
			return false, false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(menu.FilterCursor)
		return true, false
	case "alt+b":
		before := menu.FilterCursorPos()
		if !menu.MoveFilterCursorWordBackward() {
			return false, false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(menu.FilterCursor)
		return true, false
	case "alt+f":
		before := menu.FilterCursorPos()
		if !menu.MoveFilterCursorWordForward() {
			return false, false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(menu.FilterCursor)
		return true, false
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		before := menu.FilterCursorPos()
		if !menu.MoveFilterCursorRuneBackward() {
			return false, false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(menu.FilterCursor)
		return true, false
	case tea.KeyRight:
		before := menu.FilterCursorPos()
		if !menu.MoveFilterCursorRuneForward() {
			return false, false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(menu.FilterCursor)
		return true, false
	}
	return false, false
}

func (m *Model) appendToFilter(text string) (bool, bool) {
	before := m.menu.FilterCursorPos()
	if !m.menu.InsertFilterText(text) {
		return false, false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	events.Filter.Append(m.menu.Filter)
	return true, true
}

func (m *Model) removeFilterRune() (bool, bool) {
	before := m.menu.FilterCursorPos()
	if !m.menu.DeleteFilterRuneBackward() {
		return false, false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	events.Filter.Backspace(m.menu.Filter)
	return true, true
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.menu.Filter
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		return prompt + m.renderFilterCursor(caretRune) + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.menu.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
