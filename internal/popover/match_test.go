package popover

import (
	"reflect"
	"testing"
)

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func namedItems(names ...string) []Item {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Label: name}
	}
	return items
}

func TestFilterItemsEmptyQueryKeepsEverything(t *testing.T) {
	items := namedItems("Delete", "Rename", "Copy")
	got := FilterItems(items, "")
	if !reflect.DeepEqual(labels(got), []string{"Delete", "Rename", "Copy"}) {
		t.Fatalf("expected all items in order, got %v", labels(got))
	}
	got = FilterItems(items, "   ")
	if len(got) != 3 {
		t.Fatalf("expected whitespace query to match everything, got %v", labels(got))
	}
	got[0].Label = "changed"
	if items[0].Label != "Delete" {
		t.Fatal("expected filtered slice to be a copy")
	}
}

func TestFilterItemsSubsequenceMatch(t *testing.T) {
	items := namedItems("Delete column", "Rename column", "Copy")

	got := FilterItems(items, "del")
	if !reflect.DeepEqual(labels(got), []string{"Delete column"}) {
		t.Fatalf("expected subsequence match for 'del', got %v", labels(got))
	}

	// Characters may be separated by arbitrary gaps.
	got = FilterItems(items, "dcol")
	if !reflect.DeepEqual(labels(got), []string{"Delete column"}) {
		t.Fatalf("expected gapped match for 'dcol', got %v", labels(got))
	}

	// "nme" appears in order in both Rename and... only Rename.
	got = FilterItems(items, "nme")
	if !reflect.DeepEqual(labels(got), []string{"Rename column"}) {
		t.Fatalf("expected 'nme' to match Rename column, got %v", labels(got))
	}
}

func TestFilterItemsNoMatchYieldsEmpty(t *testing.T) {
	items := namedItems("Rename", "Copy")
	if got := FilterItems(items, "z"); len(got) != 0 {
		t.Fatalf("expected no matches for 'z', got %v", labels(got))
	}
}

func TestFilterItemsCaseInsensitive(t *testing.T) {
	items := namedItems("delete")
	if got := FilterItems(items, "DEL"); len(got) != 1 {
		t.Fatalf("expected case-insensitive match, got %v", labels(got))
	}
}

func TestFilterItemsPreservesSourceOrder(t *testing.T) {
	items := namedItems("beta", "alpha", "banana")
	got := FilterItems(items, "ba")
	if !reflect.DeepEqual(labels(got), []string{"beta", "banana"}) {
		t.Fatalf("expected source order preserved, got %v", labels(got))
	}
}

func TestFilterItemsEscapesRegexMetacharacters(t *testing.T) {
	items := namedItems("sum (total)", "a.b", "abc", "col[0]")

	got := FilterItems(items, "(")
	if !reflect.DeepEqual(labels(got), []string{"sum (total)"}) {
		t.Fatalf("expected literal paren match, got %v", labels(got))
	}

	// A literal dot must not act as a wildcard: "abc" contains no '.'.
	got = FilterItems(items, ".")
	if !reflect.DeepEqual(labels(got), []string{"a.b"}) {
		t.Fatalf("expected literal dot match only, got %v", labels(got))
	}

	got = FilterItems(items, "[0]")
	if !reflect.DeepEqual(labels(got), []string{"col[0]"}) {
		t.Fatalf("expected literal bracket match, got %v", labels(got))
	}

	// Unbalanced metacharacters must not panic the matcher.
	if got := FilterItems(items, "(["); len(got) != 0 {
		t.Fatalf("expected no matches for '([', got %v", labels(got))
	}
}

func TestMatcherEmptyMatchesEverything(t *testing.T) {
	m := NewMatcher("")
	if !m.Match("anything") || !m.Match("") {
		t.Fatal("expected empty matcher to match everything")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := namedItems("First", "Second", "Third")

	if idx := BestMatchIndex(items, "Second"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "ir"); idx != 0 {
		t.Fatalf("expected substring match index 0, got %d", idx)
	}
	if idx := BestMatchIndex(items, ""); idx != 0 {
		t.Fatalf("expected empty query fallback 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
