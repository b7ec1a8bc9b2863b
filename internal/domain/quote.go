package domain

import "time"

// Party is the traveller composition a quote is priced for.
type Party struct {
	Adults     int `json:"noAdult"`
	ExtraAdult int `json:"noExtraAdult"`
	Children   int `json:"noChild"`
	RoomCount  int `json:"noRoomCount"`
}

// DefaultParty mirrors the request defaults: 2 adults, 1 room.
func DefaultParty() Party {
	return Party{Adults: 2, ExtraAdult: 0, Children: 0, RoomCount: 1}
}

// HotelMealLine is one priced hotel-stay slot of a quote: the selected meal
// plan variant plus its computed per-slot totals.
type HotelMealLine struct {
	HotelID         string    `json:"hotelId"`
	HotelName       string    `json:"hotelName"`
	RoomType        string    `json:"roomType"`
	MealPlan        string    `json:"mealPlan"`
	SeasonType      string    `json:"seasonType"`
	NoOfNight       int       `json:"noOfNight"`
	StartDay        int       `json:"startDay"`
	EndDay          int       `json:"endDay"`
	IsAddOn         bool      `json:"isAddOn"`
	RoomPrice       float64   `json:"roomPrice"`
	ExtraAdultPrice float64   `json:"extraAdultPrice"`
	ChildPrice      float64   `json:"childPrice"`
	GstPer          float64   `json:"gstPer"`
	TotalAdultPrice float64   `json:"totalAdultPrice"`
	GstAdultPrice   float64   `json:"gstAdultPrice"`
	TotalChildPrice float64   `json:"totalChildPrice"`
	GstChildPrice   float64   `json:"gstChildPrice"`
	TotalExtraAdult float64   `json:"totalExtraAdultPrice"`
	GstExtraAdult   float64   `json:"gstExtraAdultPrice"`
	SubTotal        float64   `json:"subTotal"`
	TravelDate      time.Time `json:"travelDate"`
}

// Quote is the fully priced, per-request output of the pricing engine. It is
// never persisted as-is; bookings copy the totals they need.
type Quote struct {
	PackageID          string          `json:"packageId"`
	PackageName        string          `json:"packageName"`
	TravelDate         time.Time       `json:"travelDate"`
	Party              Party           `json:"party"`
	HotelMealLines     []HotelMealLine `json:"hotelMealLines"`
	Vehicles           []*Vehicle      `json:"vehicleDetails"`
	HotelCount         int             `json:"hotelCount"`
	VehicleCount       int             `json:"vehicleCount"`
	ActivityCount      int             `json:"activityCount"`
	TotalRoomPrice     float64         `json:"totalRoomPrice"`
	TotalAdditionalFee float64         `json:"totalAdditionalFee"`
	TotalTransportFee  float64         `json:"totalTransportFee"`
	TotalVehiclePrice  float64         `json:"totalVehiclePrice"`
	TotalActivityPrice float64         `json:"totalActivityPrice"`
	MarketingFee       float64         `json:"marketingFee"`
	TotalCalculation   float64         `json:"totalCalculationPrice"`
	AgentAmount        float64         `json:"agentAmount"`
	TotalPackagePrice  float64         `json:"totalPackagePrice"`
	GstPrice           float64         `json:"gstPrice"`
	FinalPackagePrice  float64         `json:"finalPackagePrice"`
	PerPersonPrice     float64         `json:"perPersonPrice"`
}
