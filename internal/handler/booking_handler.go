package handler

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tripxplo/booking-api/internal/domain"
	"github.com/tripxplo/booking-api/internal/middleware"
	"github.com/tripxplo/booking-api/internal/service"
)

// BookingHandler handles booking endpoints (JWT-guarded)
type BookingHandler struct {
	bookingService *service.BookingService
	validate       *validator.Validate
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validate:       validator.New(),
	}
}

// CreateBookingRequest is the request body for booking creation. Prices are
// never accepted from the client.
type CreateBookingRequest struct {
	PackageID    string `json:"packageId" validate:"required"`
	StartDate    string `json:"startDate" validate:"required"`
	NoAdult      int    `json:"noAdult" validate:"gte=1,lte=20"`
	NoExtraAdult int    `json:"noExtraAdult" validate:"gte=0,lte=10"`
	NoChild      int    `json:"noChild" validate:"gte=0,lte=10"`
	NoRoomCount  int    `json:"noRoomCount" validate:"gte=1,lte=10"`
	EMIMonths    int    `json:"emiMonths" validate:"gte=0,lte=24"`
	ContactName  string `json:"contactName" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone" validate:"required"`
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "unauthorized",
		})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	travelDate := parseTravelDate(req.StartDate, time.Time{})
	if travelDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "startDate must be a valid date (YYYY-MM-DD)",
		})
	}

	booking, err := h.bookingService.CreateBooking(c.UserContext(), userID, service.BookingInput{
		PackageID:  req.PackageID,
		TravelDate: travelDate,
		Party: domain.Party{
			Adults:     req.NoAdult,
			ExtraAdult: req.NoExtraAdult,
			Children:   req.NoChild,
			RoomCount:  req.NoRoomCount,
		},
		EMIMonths:    req.EMIMonths,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "package not found",
			})
		}
		log.Printf("[Bookings] create failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to create booking",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    booking,
	})
}

// ListBookings handles GET /v1/bookings
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "unauthorized",
		})
	}

	bookings, err := h.bookingService.ListBookings(c.UserContext(), userID)
	if err != nil {
		log.Printf("[Bookings] list failed for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to list bookings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bookings,
		"count":   len(bookings),
	})
}

// CancelBooking handles PATCH /v1/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "unauthorized",
		})
	}

	booking, err := h.bookingService.CancelBooking(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "booking not found",
			})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "forbidden",
			})
		}
		log.Printf("[Bookings] cancel failed for %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to cancel booking",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    booking,
	})
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "unauthorized",
		})
	}

	booking, err := h.bookingService.GetBooking(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "booking not found",
			})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "forbidden",
			})
		}
		log.Printf("[Bookings] get failed for %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to get booking",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    booking,
	})
}
