package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/tripxplo/booking-api/internal/domain"
	"github.com/tripxplo/booking-api/internal/pricing"
	"github.com/tripxplo/booking-api/internal/repository"
)

// PackageService lists packages for browsing, filtered by the availability of
// a requested travel date.
type PackageService struct {
	pkgRepo domain.PackageRepository
	cache   *repository.RedisCacheRepository
	listTTL time.Duration
}

// NewPackageService creates a new PackageService. cache may be nil.
func NewPackageService(pkgRepo domain.PackageRepository, cache *repository.RedisCacheRepository, listTTL time.Duration) *PackageService {
	return &PackageService{
		pkgRepo: pkgRepo,
		cache:   cache,
		listTTL: listTTL,
	}
}

// ListPackages returns packages bookable on travelDate (zero date means no
// filter), optionally narrowed by a case-insensitive name search. The raw
// list is cached; filtering runs per request.
func (s *PackageService) ListPackages(ctx context.Context, travelDate time.Time, search string) ([]*domain.Package, error) {
	var packages []*domain.Package

	if s.cache != nil {
		if cached, err := s.cache.GetPackageList(ctx); err == nil && cached != nil {
			packages = cached
		}
	}

	if packages == nil {
		fetched, err := s.pkgRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		packages = fetched

		if s.cache != nil && len(packages) > 0 {
			if err := s.cache.SetPackageList(ctx, packages, s.listTTL); err != nil {
				log.Printf("[Packages] failed to cache package list: %v", err)
			}
		}
	}

	search = strings.ToLower(strings.TrimSpace(search))

	result := make([]*domain.Package, 0, len(packages))
	for _, pkg := range packages {
		if !pricing.Available(travelDate, pkg.ValidPeriods) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(pkg.Name), search) {
			continue
		}
		result = append(result, pkg)
	}
	return result, nil
}
