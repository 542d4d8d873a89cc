package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestPageToPosition(t *testing.T) {
	st := State[int, string]{Pages: []Page[int, string]{
		{Items: []string{"a", "b"}, NextKey: intPtr(2)},
		{Items: []string{"c", "d", "e"}, NextKey: intPtr(3)},
	}}

	cases := map[int]int{-1: 2, 0: 2, 1: 2, 2: 3, 4: 3, 40: 3}
	for pos, wantNext := range cases {
		page, ok := st.ClosestPageToPosition(pos)
		assert.True(t, ok)
		assert.Equal(t, wantNext, *page.NextKey, "pos %d", pos)
	}
	assert.Equal(t, 5, st.ItemCount())

	_, ok := State[int, string]{}.ClosestPageToPosition(0)
	assert.False(t, ok)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "loaded", StatusLoaded.String())
	assert.Equal(t, "error", StatusError.String())
}
