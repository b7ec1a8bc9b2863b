package domain

import (
	"context"
	"math"
	"time"
)

// Booking Status Constants
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// EMI Installment Status Constants
const (
	InstallmentStatusDue  = "Due"
	InstallmentStatusPaid = "Paid"
)

// Booking is a customer's purchase of a package for a travel date. Prices are
// always recomputed server-side at creation time; the client never supplies them.
type Booking struct {
	ID             string           `json:"id" bson:"_id,omitempty"`
	UserID         string           `json:"user_id" bson:"user_id"`
	PackageID      string           `json:"package_id" bson:"package_id"`
	PackageName    string           `json:"package_name" bson:"package_name"`
	TravelDate     time.Time        `json:"travel_date" bson:"travel_date"`
	NoAdult        int              `json:"no_adult" bson:"no_adult"`
	NoExtraAdult   int              `json:"no_extra_adult" bson:"no_extra_adult"`
	NoChild        int              `json:"no_child" bson:"no_child"`
	NoRoomCount    int              `json:"no_room_count" bson:"no_room_count"`
	ContactName    string           `json:"contact_name" bson:"contact_name"`
	ContactEmail   string           `json:"contact_email" bson:"contact_email"`
	ContactPhone   string           `json:"contact_phone" bson:"contact_phone"`
	TotalPrice     float64          `json:"total_price" bson:"total_price"`
	GstPrice       float64          `json:"gst_price" bson:"gst_price"`
	FinalPrice     float64          `json:"final_price" bson:"final_price"`
	PerPersonPrice float64          `json:"per_person_price" bson:"per_person_price"`
	EMIMonths      int              `json:"emi_months" bson:"emi_months"`
	EMISchedule    []EMIInstallment `json:"emi_schedule,omitempty" bson:"emi_schedule,omitempty"`
	Status         string           `json:"status" bson:"status"`
	CreatedAt      time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" bson:"updated_at"`
}

// EMIInstallment is one monthly payment of a booking's EMI plan.
type EMIInstallment struct {
	Sequence int       `json:"sequence" bson:"sequence"`
	Amount   float64   `json:"amount" bson:"amount"`
	DueDate  time.Time `json:"due_date" bson:"due_date"`
	Status   string    `json:"status" bson:"status"`
}

// BuildEMISchedule splits total into months equal monthly installments, due
// monthly starting at firstDue. Amounts are rounded to whole currency units;
// the last installment absorbs the rounding remainder so the schedule sums
// exactly to total. months <= 1 (or a non-positive total) yields a single
// installment of the full amount.
func BuildEMISchedule(total float64, months int, firstDue time.Time) []EMIInstallment {
	if months <= 1 || total <= 0 {
		return []EMIInstallment{{
			Sequence: 1,
			Amount:   total,
			DueDate:  firstDue,
			Status:   InstallmentStatusDue,
		}}
	}

	monthly := math.Round(total / float64(months))
	schedule := make([]EMIInstallment, 0, months)
	for i := 0; i < months; i++ {
		amount := monthly
		if i == months-1 {
			amount = total - monthly*float64(months-1)
		}
		schedule = append(schedule, EMIInstallment{
			Sequence: i + 1,
			Amount:   amount,
			DueDate:  firstDue.AddDate(0, i, 0),
			Status:   InstallmentStatusDue,
		})
	}
	return schedule
}

// BookingRepository persists bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByUser(ctx context.Context, userID string) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
