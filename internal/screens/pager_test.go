package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omdehgostar/portal/internal/api"
)

func TestPagerLoadReplacesItems(t *testing.T) {
	pages := map[int]api.List[string]{
		1: {Items: []string{"a", "b"}, Total: 41},
		2: {Items: []string{"c"}, Total: 41},
	}
	pager := NewPager(func(_ context.Context, page int) (api.List[string], error) {
		return pages[page], nil
	})

	require.NoError(t, pager.Load(context.Background(), 1))
	require.Equal(t, []string{"a", "b"}, pager.Items)
	require.Equal(t, 3, pager.Pages()) // 41 items at 20 per page

	require.NoError(t, pager.Load(context.Background(), 2))
	require.Equal(t, []string{"c"}, pager.Items)
	require.Equal(t, 2, pager.Page)
}

func TestPagerClampsPage(t *testing.T) {
	var gotPage int
	pager := NewPager(func(_ context.Context, page int) (api.List[int], error) {
		gotPage = page
		return api.List[int]{}, nil
	})

	require.NoError(t, pager.Load(context.Background(), 0))
	require.Equal(t, 1, gotPage)
	require.Equal(t, 1, pager.Pages())
}
