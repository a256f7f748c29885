// Package window computes which rows of an arbitrarily long list need
// to exist at all, given a viewport and a scroll position. The math is
// a handful of integer operations per call, so it can run on every
// scroll tick.
package window

// Viewport describes the scrollable area in the same units as
// RowHeight, whatever those are (pixels, terminal rows).
type Viewport struct {
	ScrollTop int
	Height    int
	RowHeight int
}

// Range is a half-open row index range [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Visible returns the rows at least partially inside the viewport,
// clipped to [0, count).
func Visible(vp Viewport, count int) Range {
	if count <= 0 || vp.RowHeight <= 0 {
		return Range{}
	}

	start := vp.ScrollTop / vp.RowHeight
	end := ceilDiv(vp.ScrollTop+vp.Height, vp.RowHeight)
	return clip(Range{Start: start, End: end}, count)
}

// Rendered widens the visible range by overscan rows on each edge, so
// scrolling doesn't pop blank rows in before the next recompute.
func Rendered(vp Viewport, count, overscan int) Range {
	if count <= 0 || vp.RowHeight <= 0 {
		return Range{}
	}

	visible := Visible(vp, count)
	return clip(Range{
		Start: visible.Start - overscan,
		End:   visible.End + overscan,
	}, count)
}

// SpacerHeight is the height of the single spacer element that stands
// in for the full list, keeping scrollbar proportions honest.
func SpacerHeight(count, rowHeight int) int {
	if count <= 0 || rowHeight <= 0 {
		return 0
	}
	return count * rowHeight
}

// RowOffset is the offset of row i within the spacer.
func RowOffset(i, rowHeight int) int {
	return i * rowHeight
}

// Skeleton is the fixed-size placeholder range shown during a loading
// transition, independent of the (not yet known) item count.
func Skeleton(rows int) Range {
	if rows <= 0 {
		return Range{}
	}
	return Range{Start: 0, End: rows}
}

func clip(r Range, count int) Range {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > count {
		r.End = count
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
