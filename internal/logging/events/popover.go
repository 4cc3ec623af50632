package events

import "github.com/tablekit/popover/internal/logging"

type PopoverTracer struct{}

type FilterTracer struct{}

type FetchTracer struct{}

var (
	Popover = PopoverTracer{}
	Filter  = FilterTracer{}
	Fetch   = FetchTracer{}
)

func (PopoverTracer) Opened(rows, hidden int) {
	logging.Trace("popover.open", map[string]interface{}{"rows": rows, "hidden": hidden})
}

func (PopoverTracer) Closed() {
	logging.Trace("popover.close", nil)
}

func (PopoverTracer) Armed(index int, label string) {
	logging.Trace("popover.arm", map[string]interface{}{"row": index, "label": label})
}

func (PopoverTracer) Fired(index int, label string) {
	logging.Trace("popover.fire", map[string]interface{}{"row": index, "label": label})
}

func (PopoverTracer) Ignored(line int) {
	logging.Trace("popover.click-ignored", map[string]interface{}{"line": line})
}

func (PopoverTracer) Cursor(index int) {
	logging.Trace("popover.cursor", map[string]interface{}{"row": index})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Debounced(seq int, filter string) {
	logging.Trace("filter.debounce", map[string]interface{}{"seq": seq, "filter": filter})
}

func (FetchTracer) Start(seq int, query string) {
	logging.Trace("fetch.start", map[string]interface{}{"seq": seq, "query": query})
}

func (FetchTracer) Result(seq, count int) {
	logging.Trace("fetch.result", map[string]interface{}{"seq": seq, "items": count})
}

func (FetchTracer) Stale(seq, latest int) {
	logging.Trace("fetch.stale", map[string]interface{}{"seq": seq, "latest": latest})
}

func (FetchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("fetch.error", map[string]interface{}{"error": err.Error()})
}
