package pricing

import (
	"strings"
	"time"

	"github.com/tripxplo/booking-api/internal/domain"
)

// SelectMealPlan picks the priced meal-plan variant for a room. Matching on
// the requested code is case-insensitive. Selection order, first match wins:
//
//  1. variant with the requested code that is in season for travelDate
//  2. variant with the requested code, ignoring season
//  3. the room's first variant, whatever its code
//
// Returns nil only when the room has no variants at all; callers skip the
// slot in that case rather than failing the quote.
func SelectMealPlan(room *domain.HotelRoom, requested string, travelDate time.Time) *domain.MealPlanPrice {
	if room == nil || len(room.MealPlans) == 0 {
		return nil
	}

	code := strings.ToLower(strings.TrimSpace(requested))

	for i := range room.MealPlans {
		mp := &room.MealPlans[i]
		if strings.ToLower(mp.MealPlan) == code && InSeason(travelDate, mp.StartDates, mp.EndDates) {
			return mp
		}
	}

	for i := range room.MealPlans {
		mp := &room.MealPlans[i]
		if strings.ToLower(mp.MealPlan) == code {
			return mp
		}
	}

	return &room.MealPlans[0]
}
