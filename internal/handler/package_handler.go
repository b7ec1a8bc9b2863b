package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tripxplo/booking-api/internal/domain"
	"github.com/tripxplo/booking-api/internal/service"
)

// PackageHandler handles package browsing and quote endpoints
type PackageHandler struct {
	packageService *service.PackageService
	quoteService   *service.QuoteService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packageService *service.PackageService, quoteService *service.QuoteService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		quoteService:   quoteService,
	}
}

// parseTravelDate reads a date query parameter. Absent means "no filter"
// unless a default is supplied; an unparseable value maps to the zero time,
// which downstream treats as out-of-season everywhere but always available.
// Time-of-day is dropped: travel dates are calendar days.
func parseTravelDate(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Truncate(24 * time.Hour)
		}
	}
	return time.Time{}
}

// ListPackages handles GET /v1/packages
// Optional filters: startDate (only packages bookable on that date), search.
func (h *PackageHandler) ListPackages(c *fiber.Ctx) error {
	travelDate := parseTravelDate(c.Query("startDate"), time.Time{})

	packages, err := h.packageService.ListPackages(c.UserContext(), travelDate, c.Query("search"))
	if err != nil {
		log.Printf("[Packages] list failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to list packages",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    packages,
		"count":   len(packages),
	})
}

// GetPackageQuote handles GET /v1/packages/:id
// Query params: startDate (default today), noAdult (2), noChild (0),
// noRoomCount (1), noExtraAdult (0). Returns the priced quote.
func (h *PackageHandler) GetPackageQuote(c *fiber.Ctx) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	travelDate := parseTravelDate(c.Query("startDate"), today)

	party := domain.Party{
		Adults:     c.QueryInt("noAdult", 2),
		Children:   c.QueryInt("noChild", 0),
		RoomCount:  c.QueryInt("noRoomCount", 1),
		ExtraAdult: c.QueryInt("noExtraAdult", 0),
	}

	quote, err := h.quoteService.GetQuote(c.UserContext(), c.Params("id"), party, travelDate)
	if err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "package not found",
			})
		}
		log.Printf("[Packages] quote failed for %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to compute quote",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    quote,
	})
}
