// Package ui contains the Bubble Tea program that hosts the popover menu.
// The Model focuses on message orchestration: each tea.Msg is routed through
// a typed handler registry so keyboard, mouse, resize, and asynchronous
// item-source messages are handled by focused functions.
//
// Message flow:
//   - Keystrokes are offered to the filter-editing helpers first
//     (internal/ui/input.go) so typing never leaks into the host editor's own
//     key handling while the popover is open.
//   - A text change asks the item source for fresh rows. Synchronous sources
//     re-render immediately; debounced sources schedule a tick stamped with a
//     generation counter, and both the tick and the eventual fetch result are
//     dropped when a newer keystroke has bumped the counter. An in-flight
//     fetch therefore can never clobber a newer render.
//   - Mouse clicks resolve through a single handler: the view records which
//     screen line belongs to which row index while rendering, and the handler
//     looks the clicked line up in that mapping. Lines outside any row (the
//     filter prompt, padding, gaps) fall through to a no-op.
//
// State ownership:
//   - Item, row, confirmation, and filter-text state live on popover.Menu;
//     the model only adds terminal concerns (viewport size, caret blink,
//     transient info messages) on top.
package ui
