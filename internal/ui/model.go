package ui

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tablekit/popover/internal/logging"
	"github.com/tablekit/popover/internal/logging/events"
	"github.com/tablekit/popover/internal/popover"
	"github.com/tablekit/popover/internal/theme"
)

const defaultTitle = "actions"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model that embeds a popover menu over a
// host backdrop.
type Model struct {
	menu   *popover.Menu
	source popover.Source
	title  string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	backdrop []string

	infoMsg    string
	infoExpire time.Time

	filterCursor      cursor.Model
	filterCursorDirty bool

	// searchSeq is the generation counter for debounced lookups; stale
	// ticks and stale fetch results carry an older value and are dropped.
	searchSeq int

	// rowLines maps a rendered screen line to the row index it displays.
	// It is rebuilt on every View call and is what the single mouse
	// handler resolves clicks through.
	rowLines map[int]int

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around the host's item list. A nil source
// falls back to the synchronous local filter over those items.
func NewModel(items []popover.Item, source popover.Source, title string, width, height int, showFooter, verbose bool) *Model {
	if source == nil {
		source = popover.NewLocalSource(items)
	}
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}
	menu := popover.New(items)
	// First Render on a freshly constructed menu cannot return
	// ErrAlreadyRendered.
	_ = menu.Render()
	m := &Model{
		menu:       menu,
		source:     source,
		title:      title,
		showFooter: showFooter,
		verbose:    verbose,
		rowLines:   map[int]int{},
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Menu exposes the underlying popover state.
func (m *Model) Menu() *popover.Menu {
	return m.menu
}

// SetBackdrop supplies the host's own screen content, shown while the
// popover is closed.
func (m *Model) SetBackdrop(lines []string) {
	m.backdrop = append([]string(nil), lines...)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(filterDebouncedMsg{}): m.handleFilterDebouncedMsg,
		reflect.TypeOf(itemsLoadedMsg{}):     m.handleItemsLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if !m.menu.Opened() {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			return tea.Quit
		case "ctrl+p":
			m.openMenu()
		}
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "ctrl+p":
		m.closeMenu()
		return nil
	case "enter":
		m.clickRow(m.menu.Cursor)
		return nil
	case "up":
		m.moveCursor(m.menu.MoveUp)
		return nil
	case "down":
		m.moveCursor(m.menu.MoveDown)
		return nil
	case "pgup":
		m.moveCursor(func() bool { return m.menu.MovePageUp(m.maxVisibleRows()) })
		return nil
	case "pgdown":
		m.moveCursor(func() bool { return m.menu.MovePageDown(m.maxVisibleRows()) })
		return nil
	case "home":
		m.moveCursor(m.menu.MoveHome)
		return nil
	case "end":
		m.moveCursor(m.menu.MoveEnd)
		return nil
	}
	// While the popover is open every remaining keystroke belongs to the
	// filter; nothing bubbles through to the host editor's key handling.
	if handled, changed := m.handleTextInput(keyMsg); handled && changed {
		return m.refreshItems()
	}
	return nil
}

func (m *Model) openMenu() {
	m.menu.Open()
	m.menu.EnsureCursorVisible(m.maxVisibleRows())
	hidden := m.menu.Len() - len(m.menu.VisibleRows())
	events.Popover.Opened(m.menu.Len(), hidden)
}

func (m *Model) closeMenu() {
	m.menu.Close()
	events.Popover.Closed()
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.Popover.Cursor(m.menu.Cursor)
	}
	m.menu.EnsureCursorVisible(m.maxVisibleRows())
}

// clickRow feeds a resolved row index through the menu's confirmation state
// machine. Keyboard and mouse paths share this single entry point.
func (m *Model) clickRow(index int) {
	items := m.menu.Items()
	switch m.menu.Click(index) {
	case popover.ClickArmed:
		events.Popover.Armed(index, items[index].Label)
	case popover.ClickFired:
		events.Popover.Fired(index, items[index].Label)
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	if !m.menu.Opened() {
		return nil
	}
	index, ok := m.rowLines[ev.Y]
	if !ok {
		// Click on the prompt, padding, or a gap between rows.
		events.Popover.Ignored(ev.Y)
		return nil
	}
	m.clickRow(index)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.menu.EnsureCursorVisible(m.maxVisibleRows())
	return nil
}

// refreshItems asks the item source for rows matching the current filter.
// Synchronous sources render immediately; debounced sources get a tick
// stamped with the current generation.
func (m *Model) refreshItems() tea.Cmd {
	if delay := m.source.Debounce(); delay > 0 {
		m.searchSeq++
		events.Filter.Debounced(m.searchSeq, m.menu.Filter)
		return debounceFilter(m.searchSeq, delay)
	}
	items, err := m.source.Items(context.Background(), m.menu.Filter)
	if err != nil {
		logging.Error(err)
		events.Fetch.Error(err)
		return nil
	}
	m.applyItems(items)
	return nil
}

func (m *Model) applyItems(items []popover.Item) {
	m.menu.RenderItems(items)
	if strings.TrimSpace(m.menu.Filter) != "" {
		m.menu.SnapToBestMatch()
	}
	m.menu.EnsureCursorVisible(m.maxVisibleRows())
}

// SetInfo shows a transient status message on the host's screen. Messages
// are dropped unless verbose mode is on.
func (m *Model) SetInfo(message string) {
	if !m.verbose {
		return
	}
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
