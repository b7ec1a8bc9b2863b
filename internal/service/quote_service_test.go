package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripxplo/booking-api/internal/domain"
	"github.com/tripxplo/booking-api/internal/repository"
)

type fakePackageRepo struct {
	pkg      *domain.Package
	packages []*domain.Package
	err      error
	calls    int
}

func (f *fakePackageRepo) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.pkg == nil || f.pkg.ID != id {
		return nil, domain.ErrPackageNotFound
	}
	return f.pkg, nil
}

func (f *fakePackageRepo) List(ctx context.Context) ([]*domain.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.packages, nil
}

type fakeRoomRepo struct {
	rooms []*domain.HotelRoom
	err   error
}

func (f *fakeRoomRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.HotelRoom, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rooms, nil
}

type fakeVehicleRepo struct {
	vehicles []*domain.Vehicle
	err      error
}

func (f *fakeVehicleRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vehicles, nil
}

func newTestCache(t *testing.T) *repository.RedisCacheRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return repository.NewRedisCacheRepository(client)
}

func quotePackage() *domain.Package {
	return &domain.Package{
		ID:        "pkg-1",
		Name:      "Alleppey Houseboat",
		NoOfNight: 2,
		HotelDetails: []domain.HotelStaySlot{
			{HotelID: "room-1", MealPlan: "cp", NoOfNight: 2},
		},
		VehicleIDs:   []string{"veh-1"},
		TransportFee: 100,
		GstPer:       5,
	}
}

func quoteRooms() []*domain.HotelRoom {
	return []*domain.HotelRoom{
		{
			ID:        "room-1",
			HotelName: "Backwater Inn",
			MealPlans: []domain.MealPlanPrice{
				{MealPlan: "cp", RoomPrice: 1000, GstPer: 5},
			},
		},
	}
}

func TestGetQuoteComputesAndCaches(t *testing.T) {
	pkgRepo := &fakePackageRepo{pkg: quotePackage()}
	roomRepo := &fakeRoomRepo{rooms: quoteRooms()}
	vehicleRepo := &fakeVehicleRepo{vehicles: []*domain.Vehicle{{ID: "veh-1", Price: 3000}}}

	svc := NewQuoteService(pkgRepo, roomRepo, vehicleRepo, newTestCache(t), time.Minute)

	party := domain.DefaultParty()
	travelDate := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	quote, err := svc.GetQuote(context.Background(), "pkg-1", party, travelDate)
	require.NoError(t, err)

	// room 1000*1*2=2000 +gst 100; transport 100*2; vehicle 3000
	assert.Equal(t, 2100.0, quote.TotalRoomPrice)
	assert.Equal(t, 200.0, quote.TotalTransportFee)
	assert.Equal(t, 3000.0, quote.TotalVehiclePrice)
	assert.Equal(t, 5300.0, quote.TotalPackagePrice)
	assert.Equal(t, 265.0, quote.GstPrice)
	assert.Equal(t, 5565.0, quote.FinalPackagePrice)

	// second call must be served from cache, not the repositories
	pkgRepo.err = errors.New("mongo down")
	cached, err := svc.GetQuote(context.Background(), "pkg-1", party, travelDate)
	require.NoError(t, err)
	assert.Equal(t, quote.FinalPackagePrice, cached.FinalPackagePrice)
	assert.Equal(t, 1, pkgRepo.calls)
}

func TestGetQuoteDifferentPartyMissesCache(t *testing.T) {
	pkgRepo := &fakePackageRepo{pkg: quotePackage()}
	svc := NewQuoteService(pkgRepo, &fakeRoomRepo{rooms: quoteRooms()}, &fakeVehicleRepo{}, newTestCache(t), time.Minute)

	travelDate := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetQuote(context.Background(), "pkg-1", domain.DefaultParty(), travelDate)
	require.NoError(t, err)

	bigger := domain.Party{Adults: 2, ExtraAdult: 1, RoomCount: 2}
	_, err = svc.GetQuote(context.Background(), "pkg-1", bigger, travelDate)
	require.NoError(t, err)

	assert.Equal(t, 2, pkgRepo.calls)
}

func TestGetQuoteTravelDateIsDayGranular(t *testing.T) {
	// Two cp variants: a windowless one and a peak one whose season ends at
	// midnight of the travel day. Any time of day on that date must price
	// with the peak variant, cached or not.
	room := &domain.HotelRoom{
		ID:        "room-1",
		HotelName: "Backwater Inn",
		MealPlans: []domain.MealPlanPrice{
			{MealPlan: "cp", RoomPrice: 1000, GstPer: 5},
			{
				MealPlan:   "cp",
				RoomPrice:  5000,
				GstPer:     5,
				SeasonType: "peakSeason",
				StartDates: []time.Time{time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
				EndDates:   []time.Time{time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
			},
		},
	}

	pkgRepo := &fakePackageRepo{pkg: quotePackage()}
	roomRepo := &fakeRoomRepo{rooms: []*domain.HotelRoom{room}}
	svc := NewQuoteService(pkgRepo, roomRepo, &fakeVehicleRepo{}, newTestCache(t), time.Minute)

	midnight := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC)

	first, err := svc.GetQuote(context.Background(), "pkg-1", domain.DefaultParty(), midnight)
	require.NoError(t, err)
	// peak room 5000*1*2 nights + 5% gst
	assert.Equal(t, 10500.0, first.TotalRoomPrice)

	second, err := svc.GetQuote(context.Background(), "pkg-1", domain.DefaultParty(), evening)
	require.NoError(t, err)
	assert.Equal(t, first.FinalPackagePrice, second.FinalPackagePrice)

	// uncached computation for the evening timestamp agrees with the cache
	fresh, err := NewQuoteService(pkgRepo, roomRepo, &fakeVehicleRepo{}, nil, time.Minute).
		GetQuote(context.Background(), "pkg-1", domain.DefaultParty(), evening)
	require.NoError(t, err)
	assert.Equal(t, second.FinalPackagePrice, fresh.FinalPackagePrice)
	assert.Equal(t, 10500.0, fresh.TotalRoomPrice)
}

func TestGetQuoteDegradesOnLookupFailure(t *testing.T) {
	pkgRepo := &fakePackageRepo{pkg: quotePackage()}
	roomRepo := &fakeRoomRepo{err: errors.New("rooms unavailable")}
	vehicleRepo := &fakeVehicleRepo{err: errors.New("vehicles unavailable")}

	svc := NewQuoteService(pkgRepo, roomRepo, vehicleRepo, nil, time.Minute)

	quote, err := svc.GetQuote(context.Background(), "pkg-1", domain.DefaultParty(), time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0.0, quote.TotalRoomPrice)
	assert.Equal(t, 0.0, quote.TotalVehiclePrice)
	// transport fee still applies: 100 * 2 adults
	assert.Equal(t, 200.0, quote.TotalPackagePrice)
	// raw counts are reported even when nothing resolved
	assert.Equal(t, 1, quote.HotelCount)
	assert.Equal(t, 1, quote.VehicleCount)
}

func TestGetQuotePackageNotFound(t *testing.T) {
	svc := NewQuoteService(&fakePackageRepo{}, &fakeRoomRepo{}, &fakeVehicleRepo{}, nil, time.Minute)

	_, err := svc.GetQuote(context.Background(), "missing", domain.DefaultParty(), time.Time{})
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}
