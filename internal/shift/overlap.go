package shift

// FindOverlaps compares every pair of shifts and returns the IDs of all
// shifts that overlap at least one other shift. IDs appear once, in the
// order they were first found.
//
// Callers pass the shifts of a single employee and pay week; the pairwise
// scan is quadratic.
func FindOverlaps(shifts []*Shift) []int64 {
	invalid := []int64{}
	seen := make(map[int64]struct{})
	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		invalid = append(invalid, id)
	}

	for i := 0; i < len(shifts); i++ {
		for j := i + 1; j < len(shifts); j++ {
			if shifts[i].OverlapsWith(shifts[j]) {
				add(shifts[i].ID)
				add(shifts[j].ID)
			}
		}
	}
	return invalid
}

// Without returns the shifts whose IDs are not in ids, preserving order.
func Without(shifts []*Shift, ids []int64) []*Shift {
	if len(ids) == 0 {
		return shifts
	}
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := make([]*Shift, 0, len(shifts))
	for _, s := range shifts {
		if _, ok := drop[s.ID]; !ok {
			kept = append(kept, s)
		}
	}
	return kept
}
