package pricing

import (
	"reflect"
	"testing"

	"github.com/tripxplo/booking-api/internal/domain"
)

func testPackage() *domain.Package {
	return &domain.Package{
		ID:        "pkg-1",
		Name:      "Munnar Getaway",
		NoOfDays:  3,
		NoOfNight: 2,
		HotelDetails: []domain.HotelStaySlot{
			{HotelID: "room-1", MealPlan: "cp", NoOfNight: 2, StartDay: 0, EndDay: 2},
		},
		VehicleIDs: []string{"veh-1"},
	}
}

func testRooms() []*domain.HotelRoom {
	return []*domain.HotelRoom{
		{
			ID:        "room-1",
			HotelName: "Tea Valley Resort",
			RoomType:  "Deluxe",
			MealPlans: []domain.MealPlanPrice{
				{MealPlan: "cp", RoomPrice: 1000, GstPer: 5, ExtraAdult: 300, ChildPrice: 200},
			},
		},
	}
}

func TestCalculateSlotTotals(t *testing.T) {
	pkg := testPackage()
	party := domain.Party{Adults: 2, RoomCount: 1}

	quote := Calculate(pkg, testRooms(), nil, party, date(2025, 1, 10))

	if len(quote.HotelMealLines) != 1 {
		t.Fatalf("expected 1 meal line, got %d", len(quote.HotelMealLines))
	}

	line := quote.HotelMealLines[0]
	if line.TotalAdultPrice != 2000 {
		t.Errorf("TotalAdultPrice = %v, want 2000", line.TotalAdultPrice)
	}
	if line.GstAdultPrice != 100 {
		t.Errorf("GstAdultPrice = %v, want 100", line.GstAdultPrice)
	}
	if line.SubTotal != 2100 {
		t.Errorf("SubTotal = %v, want 2100", line.SubTotal)
	}
	if quote.TotalRoomPrice != 2100 {
		t.Errorf("TotalRoomPrice = %v, want 2100", quote.TotalRoomPrice)
	}
}

func TestCalculateChildAndExtraAdult(t *testing.T) {
	pkg := testPackage()
	party := domain.Party{Adults: 2, ExtraAdult: 1, Children: 2, RoomCount: 1}

	quote := Calculate(pkg, testRooms(), nil, party, date(2025, 1, 10))

	line := quote.HotelMealLines[0]
	// children: 200 * 2 * 2 nights = 800, gst 40; extra adult: 300 * 1 * 2 = 600, gst 30
	if line.TotalChildPrice != 800 || line.GstChildPrice != 40 {
		t.Errorf("child price = %v gst %v, want 800/40", line.TotalChildPrice, line.GstChildPrice)
	}
	if line.TotalExtraAdult != 600 || line.GstExtraAdult != 30 {
		t.Errorf("extra adult = %v gst %v, want 600/30", line.TotalExtraAdult, line.GstExtraAdult)
	}
	if line.SubTotal != 2100+840+630 {
		t.Errorf("SubTotal = %v, want %v", line.SubTotal, 2100+840+630)
	}
}

func TestCalculatePackageTotals(t *testing.T) {
	pkg := testPackage()
	pkg.AdditionalFee = 50
	pkg.TransportFee = 100
	pkg.MarketingFee = 500
	pkg.AgentCommission = 10
	pkg.GstPer = 5

	vehicles := []*domain.Vehicle{{ID: "veh-1", Name: "Innova", Price: 3000}}
	party := domain.Party{Adults: 2, RoomCount: 1}

	quote := Calculate(pkg, testRooms(), vehicles, party, date(2025, 1, 10))

	// room 2100 + additional 2*1*50 + transport 100*2 + marketing 500 + vehicle 3000
	wantCalc := 2100.0 + 100 + 200 + 500 + 3000
	if quote.TotalCalculation != wantCalc {
		t.Fatalf("TotalCalculation = %v, want %v", quote.TotalCalculation, wantCalc)
	}
	if quote.AgentAmount != 590 { // round(5900 * 10%)
		t.Errorf("AgentAmount = %v, want 590", quote.AgentAmount)
	}
	if quote.TotalPackagePrice != 6490 {
		t.Errorf("TotalPackagePrice = %v, want 6490", quote.TotalPackagePrice)
	}
	if quote.GstPrice != 325 { // round(6490 * 5%) = round(324.5)
		t.Errorf("GstPrice = %v, want 325", quote.GstPrice)
	}
	if quote.FinalPackagePrice != 6815 {
		t.Errorf("FinalPackagePrice = %v, want 6815", quote.FinalPackagePrice)
	}
	if quote.PerPersonPrice != 3245 { // round(6490 / 2)
		t.Errorf("PerPersonPrice = %v, want 3245", quote.PerPersonPrice)
	}
}

func TestCalculateGstDefaultsToFive(t *testing.T) {
	pkg := testPackage()
	pkg.GstPer = 0

	quote := Calculate(pkg, testRooms(), nil, domain.Party{Adults: 2, RoomCount: 1}, date(2025, 1, 10))

	if quote.GstPrice != 105 { // round(2100 * 5%)
		t.Errorf("GstPrice = %v, want 105 with default 5%% GST", quote.GstPrice)
	}
}

func TestCalculateActivityOverrideAndFallbackSum(t *testing.T) {
	pkg := testPackage()
	pkg.DayActivities = []domain.DayActivity{
		{Day: 1, Events: []domain.ActivityEvent{{Name: "Trek", Price: 250}, {Name: "Boating", Price: 150}}},
		{Day: 2, Events: []domain.ActivityEvent{{Name: "Museum", Price: 100}}},
	}

	quote := Calculate(pkg, testRooms(), nil, domain.Party{Adults: 2, RoomCount: 1}, date(2025, 1, 10))
	if quote.TotalActivityPrice != 500 {
		t.Errorf("TotalActivityPrice = %v, want sum of events 500", quote.TotalActivityPrice)
	}
	if quote.ActivityCount != 2 {
		t.Errorf("ActivityCount = %v, want 2 day entries", quote.ActivityCount)
	}

	pkg.ActivityPrice = 900
	quote = Calculate(pkg, testRooms(), nil, domain.Party{Adults: 2, RoomCount: 1}, date(2025, 1, 10))
	if quote.TotalActivityPrice != 900 {
		t.Errorf("TotalActivityPrice = %v, want override 900", quote.TotalActivityPrice)
	}
}

func TestCalculatePerPersonFallbackToActivityPrice(t *testing.T) {
	// A negative marketing adjustment can zero out the package price; the
	// per-person figure must then fall back to the activity override.
	pkg := &domain.Package{
		ID:            "pkg-zero",
		ActivityPrice: 500,
		MarketingFee:  -500,
	}

	quote := Calculate(pkg, nil, nil, domain.Party{Adults: 2, RoomCount: 1}, date(2025, 1, 10))

	if quote.TotalPackagePrice != 0 {
		t.Fatalf("TotalPackagePrice = %v, want 0", quote.TotalPackagePrice)
	}
	if quote.PerPersonPrice != 500 {
		t.Errorf("PerPersonPrice = %v, want activity fallback 500", quote.PerPersonPrice)
	}
}

func TestCalculateZeroDegradation(t *testing.T) {
	// No resolvable stay slots: the quote must still be complete and priced
	// from the remaining components only.
	pkg := &domain.Package{
		ID:           "pkg-empty",
		NoOfNight:    2,
		TransportFee: 100,
		MarketingFee: 500,
	}

	quote := Calculate(pkg, nil, nil, domain.Party{Adults: 2, RoomCount: 1}, date(2025, 1, 10))

	if quote.TotalRoomPrice != 0 {
		t.Errorf("TotalRoomPrice = %v, want 0", quote.TotalRoomPrice)
	}
	if quote.HotelCount != 0 {
		t.Errorf("HotelCount = %v, want 0", quote.HotelCount)
	}
	wantTotal := 200.0 + 500 // transport + marketing
	if quote.TotalPackagePrice != wantTotal {
		t.Errorf("TotalPackagePrice = %v, want %v", quote.TotalPackagePrice, wantTotal)
	}
	if quote.FinalPackagePrice != wantTotal+35 { // round(700 * 5%)
		t.Errorf("FinalPackagePrice = %v, want %v", quote.FinalPackagePrice, wantTotal+35)
	}
}

func TestCalculateUnresolvedSlotCountFallback(t *testing.T) {
	// Slots exist but no room documents resolve: slots contribute zero and
	// the hotel count falls back to the raw slot-list length.
	pkg := testPackage()

	quote := Calculate(pkg, nil, nil, domain.Party{Adults: 2, RoomCount: 1}, date(2025, 1, 10))

	if quote.TotalRoomPrice != 0 {
		t.Errorf("TotalRoomPrice = %v, want 0", quote.TotalRoomPrice)
	}
	if quote.HotelCount != 1 {
		t.Errorf("HotelCount = %v, want raw slot count 1", quote.HotelCount)
	}
	if quote.VehicleCount != 1 {
		t.Errorf("VehicleCount = %v, want raw id count 1", quote.VehicleCount)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	pkg := testPackage()
	pkg.AdditionalFee = 50
	pkg.AgentCommission = 7
	vehicles := []*domain.Vehicle{{ID: "veh-1", Price: 2500}}
	party := domain.Party{Adults: 3, ExtraAdult: 1, Children: 1, RoomCount: 2}

	first := Calculate(pkg, testRooms(), vehicles, party, date(2025, 2, 1))
	second := Calculate(pkg, testRooms(), vehicles, party, date(2025, 2, 1))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different quotes:\n%+v\n%+v", first, second)
	}
}
