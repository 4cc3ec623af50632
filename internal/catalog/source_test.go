package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablekit/popover/internal/popover"
)

func productServer(t *testing.T, payload string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "")
}

func TestSourcePrependsHeadItems(t *testing.T) {
	client := productServer(t, `{"products":[{"title":"Grommet","category":"hardware"}]}`)
	head := []popover.Item{
		{Label: "Insert empty row", OnClick: func() {}},
		{Label: "Clear sheet", OnClick: func() {}},
	}
	src := NewSource(client, head, nil, time.Second)

	items, err := src.Items(context.Background(), "gro")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Insert empty row", items[0].Label)
	assert.Equal(t, "Clear sheet", items[1].Label)
	assert.Equal(t, "Grommet", items[2].Label)
	assert.Equal(t, "⚙", items[2].Icon)
}

func TestSourceCapsHeadItemsAtTwo(t *testing.T) {
	client := productServer(t, `{"products":[]}`)
	head := []popover.Item{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	src := NewSource(client, head, nil, time.Second)

	items, err := src.Items(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Label)
	assert.Equal(t, "b", items[1].Label)
}

func TestSourceClickHandsProductToHost(t *testing.T) {
	client := productServer(t, `{"products":[{"title":"Grommet","category":"hardware"},{"title":"Ledger Pro","category":"software"}]}`)
	var picked []Product
	src := NewSource(client, nil, func(p Product) { picked = append(picked, p) }, time.Second)

	items, err := src.Items(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	items[1].OnClick()
	items[0].OnClick()
	require.Len(t, picked, 2)
	assert.Equal(t, "Ledger Pro", picked[0].Title)
	assert.Equal(t, "Grommet", picked[1].Title)
}

func TestSourceFloorsDebounce(t *testing.T) {
	client := productServer(t, `{"products":[]}`)

	src := NewSource(client, nil, nil, 0)
	assert.Equal(t, 500*time.Millisecond, src.Debounce())

	src = NewSource(client, nil, nil, 100*time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, src.Debounce())

	src = NewSource(client, nil, nil, 750*time.Millisecond)
	assert.Equal(t, 750*time.Millisecond, src.Debounce())
}
