package data

import "sort"

// FoldProducers collapses one row per credit into one entry per
// distinct producer, counting how many credits contributed. Rows that
// didn't resolve to a producer (dangling credits arrive as nil) are
// skipped rather than counted. The result is sorted by TrackCount
// descending; ties keep first-seen order.
//
// This is a pure function of its input: callers hand it whatever
// window of join rows they fetched, and the counts describe that
// window only.
func FoldProducers(rows []*Producer) []Producer {
	var (
		order []string
		seen  = map[string]*Producer{}
	)
	for _, row := range rows {
		if row == nil || row.ID == "" {
			continue
		}
		if p, ok := seen[row.ID]; ok {
			p.TrackCount++
			continue
		}
		p := *row
		p.TrackCount = 1
		seen[p.ID] = &p
		order = append(order, p.ID)
	}

	out := make([]Producer, len(order))
	for i, id := range order {
		out[i] = *seen[id]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrackCount > out[j].TrackCount
	})
	return out
}

// FoldArtists is FoldProducers for artist-anchored aggregations, used
// when a producer's connection view lists the artists they've worked
// with.
func FoldArtists(rows []*Artist) []Artist {
	var (
		order []string
		seen  = map[string]*Artist{}
	)
	for _, row := range rows {
		if row == nil || row.ID == "" {
			continue
		}
		if a, ok := seen[row.ID]; ok {
			a.TrackCount++
			continue
		}
		a := *row
		a.TrackCount = 1
		seen[a.ID] = &a
		order = append(order, a.ID)
	}

	out := make([]Artist, len(order))
	for i, id := range order {
		out[i] = *seen[id]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrackCount > out[j].TrackCount
	})
	return out
}
