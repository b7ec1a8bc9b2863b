package pricing

import (
	"math"
	"time"

	"github.com/tripxplo/booking-api/internal/domain"
)

// defaultGstPer applies when a package document has no GST percentage set.
const defaultGstPer = 5

// Calculate produces the priced quote for a package: one meal line per
// resolvable hotel-stay slot, vehicle details, and the aggregate totals.
//
// Monetary math runs in float64 with rounding (half away from zero) applied
// at each GST step, at the agent commission, at the package GST, and at the
// per-person division. The rounding points are load-bearing: results must
// stay identical across recomputations of the same inputs.
//
// Calculate never fails. Slots whose room or meal plan cannot be resolved
// contribute zero, as do missing vehicles and empty activity lists.
func Calculate(pkg *domain.Package, rooms []*domain.HotelRoom, vehicles []*domain.Vehicle, party domain.Party, travelDate time.Time) *domain.Quote {
	quote := &domain.Quote{
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		TravelDate:  travelDate,
		Party:       party,
	}

	roomsByID := make(map[string]*domain.HotelRoom, len(rooms))
	for _, r := range rooms {
		roomsByID[r.ID] = r
	}

	roomCount := float64(party.RoomCount)
	children := float64(party.Children)
	extraAdults := float64(party.ExtraAdult)

	for _, slot := range pkg.HotelDetails {
		room := roomsByID[slot.HotelID]
		mp := SelectMealPlan(room, slot.MealPlan, travelDate)
		if mp == nil {
			continue
		}

		nights := float64(slot.NoOfNight)

		line := domain.HotelMealLine{
			HotelID:         slot.HotelID,
			HotelName:       room.HotelName,
			RoomType:        room.RoomType,
			MealPlan:        mp.MealPlan,
			SeasonType:      mp.SeasonType,
			NoOfNight:       slot.NoOfNight,
			StartDay:        slot.StartDay,
			EndDay:          slot.EndDay,
			IsAddOn:         slot.IsAddOn,
			RoomPrice:       mp.RoomPrice,
			ExtraAdultPrice: mp.ExtraAdult,
			ChildPrice:      mp.ChildPrice,
			GstPer:          mp.GstPer,
			TravelDate:      travelDate,
		}

		line.TotalAdultPrice = mp.RoomPrice * roomCount * nights
		line.GstAdultPrice = math.Round(line.TotalAdultPrice * mp.GstPer / 100)
		line.TotalChildPrice = mp.ChildPrice * children * nights
		line.GstChildPrice = math.Round(line.TotalChildPrice * mp.GstPer / 100)
		line.TotalExtraAdult = mp.ExtraAdult * extraAdults * nights
		line.GstExtraAdult = math.Round(line.TotalExtraAdult * mp.GstPer / 100)

		line.SubTotal = line.TotalAdultPrice + line.GstAdultPrice +
			line.TotalChildPrice + line.GstChildPrice +
			line.TotalExtraAdult + line.GstExtraAdult

		quote.HotelMealLines = append(quote.HotelMealLines, line)
		quote.TotalRoomPrice += line.SubTotal
	}

	quote.HotelCount = len(quote.HotelMealLines)
	if quote.HotelCount == 0 {
		quote.HotelCount = len(pkg.HotelDetails)
	}

	quote.Vehicles = vehicles
	for _, v := range vehicles {
		quote.TotalVehiclePrice += v.Price
	}
	quote.VehicleCount = len(vehicles)
	if quote.VehicleCount == 0 {
		quote.VehicleCount = len(pkg.VehicleIDs)
	}

	quote.ActivityCount = len(pkg.DayActivities)
	quote.TotalActivityPrice = pkg.ActivityPrice
	if quote.TotalActivityPrice == 0 {
		for _, day := range pkg.DayActivities {
			for _, event := range day.Events {
				quote.TotalActivityPrice += event.Price
			}
		}
	}

	quote.TotalAdditionalFee = float64(pkg.NoOfNight) * roomCount * pkg.AdditionalFee
	quote.TotalTransportFee = pkg.TransportFee * float64(party.Adults+party.ExtraAdult+party.Children)
	quote.MarketingFee = pkg.MarketingFee

	quote.TotalCalculation = quote.TotalRoomPrice + quote.TotalAdditionalFee +
		quote.TotalTransportFee + quote.MarketingFee +
		quote.TotalVehiclePrice + quote.TotalActivityPrice

	quote.AgentAmount = math.Round(quote.TotalCalculation * pkg.AgentCommission / 100)
	quote.TotalPackagePrice = quote.TotalCalculation + quote.AgentAmount

	gstPer := pkg.GstPer
	if gstPer == 0 {
		gstPer = defaultGstPer
	}
	quote.GstPrice = math.Round(quote.TotalPackagePrice * gstPer / 100)
	quote.FinalPackagePrice = quote.TotalPackagePrice + quote.GstPrice

	totalAdultCount := party.Adults + party.ExtraAdult
	if totalAdultCount > 0 {
		quote.PerPersonPrice = math.Round(quote.TotalPackagePrice / float64(totalAdultCount))
	} else {
		quote.PerPersonPrice = quote.TotalPackagePrice
	}
	if quote.PerPersonPrice <= 0 && pkg.ActivityPrice > 0 {
		quote.PerPersonPrice = pkg.ActivityPrice
	}

	return quote
}
