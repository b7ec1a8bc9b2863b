// Package pricing computes priced quotes for travel packages. All functions
// are pure: they take already-fetched documents and never touch I/O. Missing
// or malformed data degrades to zero contributions instead of erroring, so a
// displayable price always comes back.
package pricing

import "time"

// InSeason reports whether travelDate falls inside any of the paired
// [starts[i], ends[i]] windows, both ends inclusive. A zero travel date or an
// empty window set is never in season. Mismatched array lengths are tolerated
// by only walking the shared prefix, and windows with a zero start or end are
// skipped as non-matches.
func InSeason(travelDate time.Time, starts, ends []time.Time) bool {
	if travelDate.IsZero() || len(starts) == 0 || len(ends) == 0 {
		return false
	}

	n := len(starts)
	if len(ends) < n {
		n = len(ends)
	}

	for i := 0; i < n; i++ {
		if starts[i].IsZero() || ends[i].IsZero() {
			continue
		}
		if !travelDate.Before(starts[i]) && !travelDate.After(ends[i]) {
			return true
		}
	}
	return false
}
