package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tablekit/popover/internal/logging"
	"github.com/tablekit/popover/internal/logging/events"
	"github.com/tablekit/popover/internal/popover"
)

const fetchTimeout = 5 * time.Second

// filterDebouncedMsg fires when a debounce tick elapses. seq identifies the
// keystroke generation that scheduled it.
type filterDebouncedMsg struct {
	seq int
}

// itemsLoadedMsg carries an item-source response back into the update loop.
type itemsLoadedMsg struct {
	seq   int
	items []popover.Item
	err   error
}

// debounceFilter schedules a tick after the source's quiet period. A later
// keystroke does not cancel the tick; it bumps the generation so the tick is
// recognised as stale when it lands.
func debounceFilter(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return filterDebouncedMsg{seq: seq}
	})
}

func (m *Model) fetchItemsCmd(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		items, err := m.source.Items(ctx, query)
		return itemsLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m *Model) handleFilterDebouncedMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(filterDebouncedMsg)
	if !ok {
		return nil
	}
	if tick.seq != m.searchSeq {
		// Superseded by a later keystroke.
		return nil
	}
	events.Fetch.Start(tick.seq, m.menu.Filter)
	return m.fetchItemsCmd(tick.seq, m.menu.Filter)
}

func (m *Model) handleItemsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(itemsLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.seq != m.searchSeq {
		// An older fetch resolved after a newer one was scheduled; its
		// result must not replace the newer keystroke's view.
		events.Fetch.Stale(loaded.seq, m.searchSeq)
		return nil
	}
	if loaded.err != nil {
		logging.Error(loaded.err)
		events.Fetch.Error(loaded.err)
		return nil
	}
	events.Fetch.Result(loaded.seq, len(loaded.items))
	m.applyItems(loaded.items)
	return nil
}
