package window_test

import (
	"testing"

	"github.com/linernotes/credits/window"
	"github.com/stretchr/testify/assert"
)

func TestRanges(t *testing.T) {
	vp := window.Viewport{ScrollTop: 6400, Height: 640, RowHeight: 64}

	assert.Equal(t, window.Range{Start: 100, End: 110}, window.Visible(vp, 10000))
	assert.Equal(t, window.Range{Start: 95, End: 115}, window.Rendered(vp, 10000, 5))
}

func TestPartialRows(t *testing.T) {
	// a row partially inside the viewport is visible
	vp := window.Viewport{ScrollTop: 10, Height: 100, RowHeight: 64}
	assert.Equal(t, window.Range{Start: 0, End: 2}, window.Visible(vp, 100))
}

func TestClipping(t *testing.T) {
	// overscan never reaches past either end of the list
	top := window.Viewport{ScrollTop: 0, Height: 640, RowHeight: 64}
	assert.Equal(t, window.Range{Start: 0, End: 15}, window.Rendered(top, 10000, 5))

	bottom := window.Viewport{ScrollTop: 640000 - 640, Height: 640, RowHeight: 64}
	assert.Equal(t, window.Range{Start: 9985, End: 10000}, window.Rendered(bottom, 10000, 5))

	// a list shorter than the viewport renders whole
	assert.Equal(t, window.Range{Start: 0, End: 3}, window.Rendered(top, 3, 5))
}

func TestEmptyList(t *testing.T) {
	vp := window.Viewport{ScrollTop: 0, Height: 640, RowHeight: 64}

	assert.Zero(t, window.Visible(vp, 0).Len())
	assert.Zero(t, window.Rendered(vp, 0, 5).Len())
	assert.Zero(t, window.SpacerHeight(0, 64))
}

func TestSpacerAndOffsets(t *testing.T) {
	assert.Equal(t, 640000, window.SpacerHeight(10000, 64))
	assert.Equal(t, 6080, window.RowOffset(95, 64))
}

func TestSkeleton(t *testing.T) {
	assert.Equal(t, window.Range{Start: 0, End: 8}, window.Skeleton(8))
	assert.Zero(t, window.Skeleton(0).Len())
}

func TestRangeHelpers(t *testing.T) {
	r := window.Range{Start: 95, End: 115}
	assert.Equal(t, 20, r.Len())
	assert.True(t, r.Contains(95))
	assert.True(t, r.Contains(114))
	assert.False(t, r.Contains(115))
}
