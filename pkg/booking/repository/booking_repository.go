package repository

import "agrilink/entities"

// BookingView is a dashboard row: the booking joined with equipment display
// fields and the counterpart farmer (owner for the renter view, renter for
// the owner view).
type BookingView struct {
	entities.Booking
	EquipmentName     string  `json:"equipment_name"`
	EquipmentType     string  `json:"equipment_type"`
	RentalPricePerDay float64 `json:"rental_price_per_day"`
	CounterpartName   string  `json:"counterpart_name"`
	CounterpartPhone  string  `json:"counterpart_phone"`
}

type BookingRepository interface {
	Create(b *entities.Booking) error
	// UpdateStatusOwned sets the status of a booking, scoped to rows whose
	// owner_id matches. A caller who is not the owner matches zero rows and
	// that is not reported as an error.
	UpdateStatusOwned(id, ownerID, status string) error
	FindByID(id string) (*entities.Booking, error)
	ListByRenter(renterID string, limit int) ([]BookingView, error)
	ListByOwner(ownerID string, limit int) ([]BookingView, error)
}
