package app

import (
	"fmt"

	"github.com/tablekit/popover/internal/catalog"
	"github.com/tablekit/popover/internal/popover"
)

// editorState is the mock table-editor host. Item callbacks close over it,
// which is all the popover knows about the embedding application.
type editorState struct {
	sorted bool
	notify func(string)
}

func (e *editorState) info(message string) {
	if e.notify != nil {
		e.notify(message)
	}
}

func (e *editorState) insertProduct(p catalog.Product) {
	e.info(fmt.Sprintf("Inserted %q (%s)", p.Title, p.Category))
}

// columnItems is the local demo item set: ordinary actions, a destructive
// one gated behind confirmation, and one row hidden until a sort exists.
func columnItems(e *editorState) []popover.Item {
	return []popover.Item{
		{
			Label:   "Insert column left",
			Icon:    "◧",
			OnClick: func() { e.info("Inserted column to the left") },
		},
		{
			Label:   "Insert column right",
			Icon:    "◨",
			OnClick: func() { e.info("Inserted column to the right") },
		},
		{
			Label:   "Rename column",
			OnClick: func() { e.info("Renamed column") },
		},
		{
			Label: "Sort ascending",
			OnClick: func() {
				e.sorted = true
				e.info("Sorted ascending")
			},
		},
		{
			Label:  "Clear sort",
			HideIf: func() bool { return !e.sorted },
			OnClick: func() {
				e.sorted = false
				e.info("Cleared sort")
			},
		},
		{
			Label:                "Delete column",
			Icon:                 "✕",
			ConfirmationRequired: true,
			OnClick:              func() { e.info("Deleted column") },
		},
	}
}

// headItems are the host-owned rows pinned above catalog results.
func headItems(e *editorState) []popover.Item {
	return []popover.Item{
		{
			Label:   "Insert empty row",
			OnClick: func() { e.info("Inserted empty row") },
		},
		{
			Label:                "Clear sheet",
			ConfirmationRequired: true,
			OnClick:              func() { e.info("Cleared sheet") },
		},
	}
}

func backdropSheet() []string {
	return []string{
		"orders.csv",
		"",
		"  id   product        qty   total",
		"  ──   ───────        ───   ─────",
		"  17   widget         3     12.60",
		"  18   grommet        12    8.04",
		"  19   flange         1     22.50",
	}
}
