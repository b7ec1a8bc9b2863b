package pricing

import (
	"time"

	"github.com/tripxplo/booking-api/internal/domain"
)

// Available reports whether a package can be booked for travelDate given its
// optional valid-period list. The filter is deliberately permissive: no date
// requested, no periods defined, or no period with a usable date pair all mean
// "show the package". Only a valid date that misses every valid window hides it.
func Available(travelDate time.Time, periods []domain.ValidPeriod) bool {
	if travelDate.IsZero() || len(periods) == 0 {
		return true
	}

	sawValid := false
	for _, p := range periods {
		if p.StartDate.IsZero() || p.EndDate.IsZero() {
			continue
		}
		sawValid = true
		if !travelDate.Before(p.StartDate) && !travelDate.After(p.EndDate) {
			return true
		}
	}

	return !sawValid
}
