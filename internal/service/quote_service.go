package service

import (
	"context"
	"log"
	"time"

	"github.com/tripxplo/booking-api/internal/domain"
	"github.com/tripxplo/booking-api/internal/pricing"
	"github.com/tripxplo/booking-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// QuoteService prices a package for a party and travel date. It fetches the
// package and its referenced room/vehicle documents, runs the pricing
// calculation, and caches the result keyed on the full input tuple.
type QuoteService struct {
	pkgRepo     domain.PackageRepository
	roomRepo    domain.HotelRoomRepository
	vehicleRepo domain.VehicleRepository
	cache       *repository.RedisCacheRepository
	quoteTTL    time.Duration
}

// NewQuoteService creates a new QuoteService. cache may be nil to disable
// quote caching (used in unit tests).
func NewQuoteService(
	pkgRepo domain.PackageRepository,
	roomRepo domain.HotelRoomRepository,
	vehicleRepo domain.VehicleRepository,
	cache *repository.RedisCacheRepository,
	quoteTTL time.Duration,
) *QuoteService {
	return &QuoteService{
		pkgRepo:     pkgRepo,
		roomRepo:    roomRepo,
		vehicleRepo: vehicleRepo,
		cache:       cache,
		quoteTTL:    quoteTTL,
	}
}

// GetQuote computes the priced quote for a package. A missing package is the
// only error; room or vehicle lookup failures degrade to empty result sets so
// the caller always gets a displayable (possibly zero-valued) price.
func (s *QuoteService) GetQuote(ctx context.Context, packageID string, party domain.Party, travelDate time.Time) (*domain.Quote, error) {
	// travel dates are calendar days; drop any time of day so the season
	// comparison and the cache key agree on the same date
	if !travelDate.IsZero() {
		travelDate = travelDate.UTC().Truncate(24 * time.Hour)
	}

	key := repository.QuoteKey(packageID, travelDate, party)
	if s.cache != nil {
		if cached, err := s.cache.GetQuote(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	pkg, err := s.pkgRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	roomIDs := make([]string, 0, len(pkg.HotelDetails))
	seen := make(map[string]bool, len(pkg.HotelDetails))
	for _, slot := range pkg.HotelDetails {
		if slot.HotelID == "" || seen[slot.HotelID] {
			continue
		}
		seen[slot.HotelID] = true
		roomIDs = append(roomIDs, slot.HotelID)
	}

	var (
		rooms    []*domain.HotelRoom
		vehicles []*domain.Vehicle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.roomRepo.GetByIDs(gctx, roomIDs)
		if err != nil {
			// degrade to zero room contributions rather than failing the quote
			log.Printf("[Quote] hotel room lookup failed for package %s: %v", packageID, err)
			return nil
		}
		rooms = found
		return nil
	})
	g.Go(func() error {
		found, err := s.vehicleRepo.GetByIDs(gctx, pkg.VehicleIDs)
		if err != nil {
			log.Printf("[Quote] vehicle lookup failed for package %s: %v", packageID, err)
			return nil
		}
		vehicles = found
		return nil
	})
	_ = g.Wait()

	quote := pricing.Calculate(pkg, rooms, vehicles, party, travelDate)

	if s.cache != nil {
		if err := s.cache.SetQuote(ctx, key, quote, s.quoteTTL); err != nil {
			log.Printf("[Quote] failed to cache quote %s: %v", key, err)
		}
	}

	return quote, nil
}
