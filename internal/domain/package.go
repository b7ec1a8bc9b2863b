package domain

import (
	"context"
	"time"
)

// Meal plan codes (EP = room only, CP = breakfast, MAP = breakfast + dinner, AP = all meals)
const (
	MealPlanEP  = "ep"
	MealPlanCP  = "cp"
	MealPlanMAP = "map"
	MealPlanAP  = "ap"
)

// Package is a sellable itinerary template. It is authored by the admin system
// and read-only here; the pricing engine must tolerate partially filled or
// inconsistent documents (e.g. NoOfNight disagreeing with the per-destination
// night sum) without erroring.
type Package struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	Name            string            `json:"packageName" bson:"packageName"`
	Images          []string          `json:"images" bson:"images"`
	NoOfDays        int               `json:"noOfDays" bson:"noOfDays"`
	NoOfNight       int               `json:"noOfNight" bson:"noOfNight"`
	Destinations    []DestinationStay `json:"destinationId" bson:"destinationId"`
	HotelDetails    []HotelStaySlot   `json:"hotelDetails" bson:"hotelDetails"`
	VehicleIDs      []string          `json:"vehicleId" bson:"vehicleId"`
	DayActivities   []DayActivity     `json:"dayActivities" bson:"dayActivities"`
	AdditionalFee   float64           `json:"additionalFee" bson:"additionalFee"`
	MarketingFee    float64           `json:"marketingFee" bson:"marketingFee"`
	AgentCommission float64           `json:"agentCommission" bson:"agentCommission"`
	GstPer          float64           `json:"gstPer" bson:"gstPer"`
	TransportFee    float64           `json:"transportFee" bson:"transportFee"`
	ValidPeriods    []ValidPeriod     `json:"validPeriods" bson:"validPeriods"`
	ActivityPrice   float64           `json:"activityPrice" bson:"activityPrice"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}

// DestinationStay references a destination with the nights spent there.
type DestinationStay struct {
	DestinationID string `json:"destinationId" bson:"destinationId"`
	NoOfNight     int    `json:"noOfNight" bson:"noOfNight"`
}

// HotelStaySlot is one leg of a multi-hotel itinerary: a specific room with a
// requested meal plan for a contiguous night range.
type HotelStaySlot struct {
	HotelID   string `json:"hotelId" bson:"hotelId"` // references a HotelRoom document
	MealPlan  string `json:"mealPlan" bson:"mealPlan"`
	NoOfNight int    `json:"noOfNight" bson:"noOfNight"`
	StartDay  int    `json:"startDay" bson:"startDay"` // day offset from trip start
	EndDay    int    `json:"endDay" bson:"endDay"`
	SortOrder int    `json:"sortOrder" bson:"sortOrder"`
	IsAddOn   bool   `json:"isAddOn" bson:"isAddOn"`
}

// DayActivity groups the activity events planned for one day of the itinerary.
type DayActivity struct {
	Day    int             `json:"day" bson:"day"`
	Events []ActivityEvent `json:"events" bson:"events"`
}

// ActivityEvent is a single priced activity within a day.
type ActivityEvent struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

// ValidPeriod is a bookable window for a package. A package with no periods is
// always bookable.
type ValidPeriod struct {
	StartDate time.Time `json:"startDate" bson:"startDate"`
	EndDate   time.Time `json:"endDate" bson:"endDate"`
}

// PackageRepository provides read access to package documents
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*Package, error)
	List(ctx context.Context) ([]*Package, error)
}
