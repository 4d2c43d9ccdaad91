package service

import (
	"errors"
	"math"
	"time"

	"agrilink/entities"
	"agrilink/pkg/booking/repository"
)

var (
	// ErrInvalid wraps request validation failures; the detail is in the
	// wrapped message.
	ErrInvalid = errors.New("invalid booking request")
	// ErrEquipmentNotFound covers both an unknown id and a listing no
	// longer marked available.
	ErrEquipmentNotFound = errors.New("equipment not found or unavailable")
	// ErrOwnEquipment rejects a renter booking their own listing.
	ErrOwnEquipment = errors.New("cannot book your own equipment")
)

type CreateBookingInput struct {
	EquipmentID string `json:"equipment_id"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	Notes       string `json:"notes"`
}

type BookingService interface {
	Create(renterID string, in CreateBookingInput) (*entities.Booking, error)
	// UpdateStatus applies the owner-scoped status change. It reports
	// success even when the caller owns no such booking (legacy contract).
	UpdateStatus(ownerID, bookingID, status string) error
	ListAsRenter(renterID string, limit int) ([]repository.BookingView, error)
	ListAsOwner(ownerID string, limit int) ([]repository.BookingView, error)
}

// TotalDays counts rental days inclusive of both boundary dates: the same
// start and end date is one day.
func TotalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}
