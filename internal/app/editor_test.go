package app

import (
	"testing"

	"github.com/tablekit/popover/internal/catalog"
	"github.com/tablekit/popover/internal/popover"
)

func findItem(t *testing.T, items []popover.Item, label string) popover.Item {
	t.Helper()
	for _, item := range items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("no item labelled %q", label)
	return popover.Item{}
}

func TestColumnItemsClearSortVisibility(t *testing.T) {
	editor := &editorState{}
	items := columnItems(editor)

	clearSort := findItem(t, items, "Clear sort")
	if !clearSort.HideIf() {
		t.Fatal("expected Clear sort hidden before sorting")
	}

	findItem(t, items, "Sort ascending").OnClick()
	if clearSort.HideIf() {
		t.Fatal("expected Clear sort visible after sorting")
	}

	clearSort.OnClick()
	if !clearSort.HideIf() {
		t.Fatal("expected Clear sort hidden again after clearing")
	}
}

func TestColumnItemsDeleteRequiresConfirmation(t *testing.T) {
	editor := &editorState{}
	if item := findItem(t, columnItems(editor), "Delete column"); !item.ConfirmationRequired {
		t.Fatal("expected Delete column to require confirmation")
	}
	if item := findItem(t, columnItems(editor), "Rename column"); item.ConfirmationRequired {
		t.Fatal("expected Rename column to fire on the first click")
	}
}

func TestEditorNotifiesOnActions(t *testing.T) {
	var messages []string
	editor := &editorState{notify: func(msg string) { messages = append(messages, msg) }}

	findItem(t, columnItems(editor), "Rename column").OnClick()
	editor.insertProduct(catalog.Product{Title: "Grommet", Category: "hardware"})

	if len(messages) != 2 {
		t.Fatalf("expected 2 notifications, got %v", messages)
	}
	if messages[0] != "Renamed column" {
		t.Fatalf("unexpected notification %q", messages[0])
	}
	if messages[1] != `Inserted "Grommet" (hardware)` {
		t.Fatalf("unexpected notification %q", messages[1])
	}
}

func TestHeadItemsArePinnedHostRows(t *testing.T) {
	editor := &editorState{}
	head := headItems(editor)
	if len(head) != 2 {
		t.Fatalf("expected 2 head rows, got %d", len(head))
	}
	if !findItem(t, head, "Clear sheet").ConfirmationRequired {
		t.Fatal("expected Clear sheet to require confirmation")
	}
}

func TestRunRejectsUnknownSource(t *testing.T) {
	err := Run(Config{Source: "ldap"})
	if err == nil {
		t.Fatal("expected error for unknown source")
	}
}
