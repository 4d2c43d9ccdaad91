package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingDeclined  = "declined"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingDeclined, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is a rental request against an Equipment listing. OwnerID is a
// snapshot of the equipment owner at creation time; TotalDays and TotalAmount
// are derived once at creation and never recomputed. Bookings are never
// deleted, only moved through the status strings above.
type Booking struct {
	ID          string  `gorm:"primaryKey;type:text" json:"id"`
	EquipmentID string  `gorm:"index;type:text" json:"equipment_id"`
	RenterID    string  `gorm:"index;type:text" json:"renter_id"`
	OwnerID     string  `gorm:"index;type:text" json:"owner_id"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`   // YYYY-MM-DD
	TotalDays   int     `json:"total_days"`
	TotalAmount float64 `json:"total_amount"`
	Notes       *string `json:"notes"`
	Status      string  `gorm:"index;size:16" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
