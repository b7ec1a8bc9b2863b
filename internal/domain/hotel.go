package domain

import (
	"context"
	"time"
)

// HotelRoom is a bookable room type at a hotel, carrying the meal-plan price
// variants used by the quote calculation.
type HotelRoom struct {
	ID           string          `json:"id" bson:"_id,omitempty"`
	HotelName    string          `json:"hotelName" bson:"hotelName"`
	RoomType     string          `json:"roomType" bson:"roomType"`
	MaxAdult     int             `json:"maxAdult" bson:"maxAdult"`
	MaxChild     int             `json:"maxChild" bson:"maxChild"`
	MaxInfant    int             `json:"maxInfant" bson:"maxInfant"`
	RoomCapacity int             `json:"roomCapacity" bson:"roomCapacity"`
	IsAC         bool            `json:"isAc" bson:"isAc"`
	MealPlans    []MealPlanPrice `json:"mealPlans" bson:"mealPlans"`
}

// MealPlanPrice is one priced meal-plan variant of a room. StartDates and
// EndDates are parallel arrays: the variant is in season when the travel date
// falls inside any [StartDates[i], EndDates[i]] window, both ends inclusive.
type MealPlanPrice struct {
	MealPlan   string      `json:"mealPlan" bson:"mealPlan"`
	RoomPrice  float64     `json:"roomPrice" bson:"roomPrice"` // covers base occupancy, per room per night
	GstPer     float64     `json:"gstPer" bson:"gstPer"`
	ExtraAdult float64     `json:"extraAdult" bson:"extraAdult"` // per person per night
	ChildPrice float64     `json:"childPrice" bson:"childPrice"` // per person per night
	SeasonType string      `json:"seasonType" bson:"seasonType"`
	StartDates []time.Time `json:"startDate" bson:"startDate"`
	EndDates   []time.Time `json:"endDate" bson:"endDate"`
}

// HotelRoomRepository provides key-set lookups of room documents
type HotelRoomRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*HotelRoom, error)
}
