package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "popover-test.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestErrorAppendsToLog(t *testing.T) {
	path := useTempLog(t)

	Error(errors.New("catalog down"))
	Error(nil) // must be a no-op

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if !strings.Contains(string(data), "catalog down") {
		t.Fatalf("expected error in log, got %q", data)
	}
}

func TestTraceRespectsToggle(t *testing.T) {
	path := useTempLog(t)

	Trace("popover_opened", map[string]int{"rows": 3})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected no log writes while tracing is disabled")
	}

	SetTraceEnabled(true)
	Trace("popover_opened", map[string]int{"rows": 3})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	var entry struct {
		Event   string         `json:"event"`
		Payload map[string]int `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected a JSON entry, got %q: %v", data, err)
	}
	if entry.Event != "popover_opened" || entry.Payload["rows"] != 3 {
		t.Fatalf("unexpected entry %+v", entry)
	}
}
