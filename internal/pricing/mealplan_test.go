package pricing

import (
	"testing"
	"time"

	"github.com/tripxplo/booking-api/internal/domain"
)

func TestSelectMealPlan(t *testing.T) {
	seasonStarts := []time.Time{date(2024, 12, 1)}
	seasonEnds := []time.Time{date(2024, 12, 31)}

	room := &domain.HotelRoom{
		ID:       "room-1",
		RoomType: "Deluxe",
		MealPlans: []domain.MealPlanPrice{
			{MealPlan: "cp", RoomPrice: 1000, SeasonType: "offSeason"},
			{MealPlan: "map", RoomPrice: 1500, SeasonType: "peakSeason", StartDates: seasonStarts, EndDates: seasonEnds},
			{MealPlan: "map", RoomPrice: 1200, SeasonType: "offSeason"},
		},
	}

	t.Run("in-season match wins", func(t *testing.T) {
		mp := SelectMealPlan(room, "map", date(2024, 12, 15))
		if mp == nil || mp.RoomPrice != 1500 {
			t.Fatalf("expected in-season map plan (1500), got %+v", mp)
		}
	})

	t.Run("out of season falls back to code match", func(t *testing.T) {
		mp := SelectMealPlan(room, "map", date(2025, 3, 1))
		if mp == nil || mp.RoomPrice != 1500 {
			t.Fatalf("expected first map plan regardless of season (1500), got %+v", mp)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		mp := SelectMealPlan(room, "MAP", date(2024, 12, 15))
		if mp == nil || mp.RoomPrice != 1500 {
			t.Fatalf("expected map plan for uppercase request, got %+v", mp)
		}
	})

	t.Run("unknown code falls back to first variant", func(t *testing.T) {
		onlyCP := &domain.HotelRoom{
			MealPlans: []domain.MealPlanPrice{{MealPlan: "cp", RoomPrice: 800}},
		}
		mp := SelectMealPlan(onlyCP, "map", date(2025, 3, 1))
		if mp == nil || mp.MealPlan != "cp" {
			t.Fatalf("expected last-resort fallback to the cp plan, got %+v", mp)
		}
	})

	t.Run("nil room yields nil", func(t *testing.T) {
		if mp := SelectMealPlan(nil, "cp", date(2024, 12, 15)); mp != nil {
			t.Fatalf("expected nil for nil room, got %+v", mp)
		}
	})

	t.Run("room without variants yields nil", func(t *testing.T) {
		if mp := SelectMealPlan(&domain.HotelRoom{}, "cp", date(2024, 12, 15)); mp != nil {
			t.Fatalf("expected nil for empty meal plan list, got %+v", mp)
		}
	})
}
