package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tablekit/popover/internal/catalog"
	"github.com/tablekit/popover/internal/popover"
	"github.com/tablekit/popover/internal/ui"
)

// Run bootstraps and executes the Bubble Tea program. The demo host is a
// mock table editor; ctrl+p opens its column-actions popover.
func Run(cfg Config) error {
	editor := &editorState{}

	var source popover.Source
	var items []popover.Item
	switch cfg.Source {
	case "catalog":
		client := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Token)
		head := headItems(editor)
		source = catalog.NewSource(client, head, editor.insertProduct, cfg.Catalog.Debounce)
		items = head
	case "local", "":
		items = columnItems(editor)
	default:
		return fmt.Errorf("unknown item source %q", cfg.Source)
	}

	model := ui.NewModel(items, source, "column actions", cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	model.SetBackdrop(backdropSheet())
	editor.notify = model.SetInfo

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
