package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Window(1, 10))
	assert.Equal(t, 10, Window(2, 10))
	assert.Equal(t, 45, Window(10, 5))
	// Page numbers below 1 clamp to the first page
	assert.Equal(t, 0, Window(0, 10))
	assert.Equal(t, 0, Window(-3, 10))
	// Non-positive page size falls back to the default
	assert.Equal(t, DefaultPageSize, Window(2, 0))
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	t.Run("middle page has both markers", func(t *testing.T) {
		t.Parallel()
		p := NewPage([]int{11, 12, 13}, 9, 2, 3)
		assert.Equal(t, int64(9), p.Count)
		require.NotNil(t, p.Next)
		assert.Equal(t, 3, *p.Next)
		require.NotNil(t, p.Previous)
		assert.Equal(t, 1, *p.Previous)
	})

	t.Run("first page has no previous", func(t *testing.T) {
		t.Parallel()
		p := NewPage([]int{1, 2, 3}, 9, 1, 3)
		assert.Nil(t, p.Previous)
		require.NotNil(t, p.Next)
		assert.Equal(t, 2, *p.Next)
	})

	t.Run("last page has no next", func(t *testing.T) {
		t.Parallel()
		p := NewPage([]int{7, 8, 9}, 9, 3, 3)
		assert.Nil(t, p.Next)
		require.NotNil(t, p.Previous)
		assert.Equal(t, 2, *p.Previous)
	})

	t.Run("out-of-range page yields empty results, not an error", func(t *testing.T) {
		t.Parallel()
		p := NewPage([]int{}, 9, 50, 3)
		assert.Empty(t, p.Results)
		assert.Equal(t, int64(9), p.Count)
		assert.Nil(t, p.Next)
	})

	t.Run("nil results serialize as an empty list", func(t *testing.T) {
		t.Parallel()
		p := NewPage[int](nil, 0, 1, 3)
		assert.NotNil(t, p.Results)
		assert.Empty(t, p.Results)
	})
}
