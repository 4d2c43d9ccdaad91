package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/booking/repository"
	svc "agrilink/pkg/booking/service"
	equipRepo "agrilink/pkg/equipment/repository"
)

const dateLayout = "2006-01-02"

type service struct {
	bookings  repository.BookingRepository
	equipment equipRepo.EquipmentRepository
}

func New(bookings repository.BookingRepository, equipment equipRepo.EquipmentRepository) svc.BookingService {
	return &service{bookings: bookings, equipment: equipment}
}

func (s *service) Create(renterID string, in svc.CreateBookingInput) (*entities.Booking, error) {
	if in.EquipmentID == "" {
		return nil, fmt.Errorf("%w: equipment_id required", svc.ErrInvalid)
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", svc.ErrInvalid)
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", svc.ErrInvalid)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date before start_date", svc.ErrInvalid)
	}

	eq, err := s.equipment.FindAvailable(in.EquipmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.ErrEquipmentNotFound
	} else if err != nil {
		return nil, err
	}
	if eq.OwnerID == renterID {
		return nil, svc.ErrOwnEquipment
	}

	days := svc.TotalDays(start, end)
	b := &entities.Booking{
		EquipmentID: eq.ID,
		RenterID:    renterID,
		OwnerID:     eq.OwnerID, // snapshot, not re-resolved later
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TotalDays:   days,
		TotalAmount: float64(days) * eq.RentalPricePerDay,
		Status:      entities.BookingPending,
	}
	if n := in.Notes; n != "" {
		b.Notes = &n
	}
	if err := s.bookings.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateStatus(ownerID, bookingID, status string) error {
	if bookingID == "" {
		return fmt.Errorf("%w: bookingId required", svc.ErrInvalid)
	}
	if !entities.ValidBookingStatus(status) {
		return fmt.Errorf("%w: unknown status %q", svc.ErrInvalid, status)
	}
	// Deliberately no transition table: any valid status overwrites any
	// other, and a non-owner caller simply matches no rows.
	return s.bookings.UpdateStatusOwned(bookingID, ownerID, status)
}

func (s *service) ListAsRenter(renterID string, limit int) ([]repository.BookingView, error) {
	return s.bookings.ListByRenter(renterID, normLimit(limit))
}

func (s *service) ListAsOwner(ownerID string, limit int) ([]repository.BookingView, error) {
	return s.bookings.ListByOwner(ownerID, normLimit(limit))
}

func normLimit(n int) int {
	if n <= 0 || n > 100 {
		return 20
	}
	return n
}
