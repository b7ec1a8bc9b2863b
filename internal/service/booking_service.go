package service

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/tripxplo/booking-api/internal/domain"
)

// BookingInput carries the validated request data for a new booking. Prices
// are deliberately absent: the service reprices the package itself.
type BookingInput struct {
	PackageID    string
	TravelDate   time.Time
	Party        domain.Party
	EMIMonths    int
	ContactName  string
	ContactEmail string
	ContactPhone string
}

// BookingService creates and reads bookings. Creation recomputes the quote
// server-side and derives the EMI schedule from the final price.
type BookingService struct {
	quoteService *QuoteService
	bookingRepo  domain.BookingRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(quoteService *QuoteService, bookingRepo domain.BookingRepository) *BookingService {
	return &BookingService{
		quoteService: quoteService,
		bookingRepo:  bookingRepo,
	}
}

// CreateBooking prices the package for the requested party and date, builds
// the EMI schedule, and persists the booking in Pending state.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, input BookingInput) (*domain.Booking, error) {
	quote, err := s.quoteService.GetQuote(ctx, input.PackageID, input.Party, input.TravelDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:             ulid.Make().String(),
		UserID:         userID,
		PackageID:      quote.PackageID,
		PackageName:    quote.PackageName,
		TravelDate:     input.TravelDate,
		NoAdult:        input.Party.Adults,
		NoExtraAdult:   input.Party.ExtraAdult,
		NoChild:        input.Party.Children,
		NoRoomCount:    input.Party.RoomCount,
		ContactName:    input.ContactName,
		ContactEmail:   input.ContactEmail,
		ContactPhone:   input.ContactPhone,
		TotalPrice:     quote.TotalPackagePrice,
		GstPrice:       quote.GstPrice,
		FinalPrice:     quote.FinalPackagePrice,
		PerPersonPrice: quote.PerPersonPrice,
		EMIMonths:      input.EMIMonths,
		EMISchedule:    domain.BuildEMISchedule(quote.FinalPackagePrice, input.EMIMonths, now),
		Status:         domain.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBooking returns a booking if it belongs to the given user
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

// ListBookings returns the user's bookings, newest first
func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.GetByUser(ctx, userID)
}

// CancelBooking moves a user's booking to Cancelled. Cancelling an already
// cancelled booking is a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusCancelled {
		return booking, nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCancelled
	return booking, nil
}
