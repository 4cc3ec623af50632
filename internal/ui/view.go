package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. While the popover is open it renders the menu
// panel; otherwise the host backdrop. Rendering the panel also rebuilds the
// line-to-row mapping that mouse delegation resolves clicks through.
func (m *Model) View() string {
	m.rowLines = map[int]int{}
	if !m.menu.Opened() {
		return m.viewBackdrop()
	}
	return m.viewMenu()
}

func (m *Model) viewBackdrop() string {
	lines := make([]styledLine, 0, len(m.backdrop)+4)
	for _, row := range m.backdrop {
		lines = append(lines, styledLine{text: row, style: styles.Backdrop})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: "ctrl+p menu  q quit", style: styles.Footer})
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) viewMenu() string {
	m.menu.EnsureCursorVisible(m.maxVisibleRows())

	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.title, style: styles.Header})

	visible := m.menu.VisibleRows()
	if len(visible) == 0 {
		msg := "(no entries)"
		if m.menu.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.menu.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		start := 0
		display := visible
		if maxRows := m.maxVisibleRows(); maxRows > 0 && len(display) > maxRows {
			start = m.menu.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxRows > len(display) {
				start = len(display) - maxRows
			}
			display = display[start : start+maxRows]
		}
		for _, index := range display {
			m.rowLines[len(lines)] = index
			lines = append(lines, m.buildRowLine(index))
		}
	}

	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  esc close  ctrl+c quit", style: styles.Footer})
	}

	// Reserve the bottom row for the filter prompt.
	lines = limitHeight(lines, m.height-1, m.width)
	for line := range m.rowLines {
		if line >= len(lines) {
			delete(m.rowLines, line)
		}
	}
	lines = applyWidth(lines, m.width)

	return renderLines(lines) + "\n" + m.filterPrompt()
}

// buildRowLine renders one item row. Icons take the theme's icon style;
// rows carrying pre-built content bypass styling, the markup owns its look.
func (m *Model) buildRowLine(index int) styledLine {
	item := m.menu.Items()[index]
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if m.menu.Armed(index) {
		lineStyle = styles.ArmedItem
		indicatorStyle = styles.ArmedItemIndicator
	}
	if index == m.menu.Cursor {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}

	body := item.Content
	raw := item.Content != ""
	if body == "" {
		if item.Icon != "" {
			icon := item.Icon
			if styles.Icon != nil {
				icon = styles.Icon.Render(icon)
			}
			body = icon + " " + item.Label
			raw = true
		} else {
			body = item.Label
		}
	}
	if m.menu.Armed(index) {
		body += " (confirm?)"
	}

	fullText := indicator + " " + body
	if raw {
		return styledLine{text: fullText, raw: true}
	}
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// maxVisibleRows reports how many item rows fit in the current viewport.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header + filter prompt
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
