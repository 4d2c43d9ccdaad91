package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/booking/repository"
)

type bookingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BookingRepository { return &bookingRepo{db} }

func (r *bookingRepo) Create(b *entities.Booking) error { return r.db.Create(b).Error }

func (r *bookingRepo) UpdateStatusOwned(id, ownerID, status string) error {
	return r.db.Model(&entities.Booking{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("status", status).Error
}

func (r *bookingRepo) FindByID(id string) (*entities.Booking, error) {
	var b entities.Booking
	if err := r.db.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

const viewSelect = `bookings.*,
equipment.equipment_name AS equipment_name,
equipment.equipment_type AS equipment_type,
equipment.rental_price_per_day AS rental_price_per_day,
farmers.full_name AS counterpart_name,
farmers.phone AS counterpart_phone`

func (r *bookingRepo) ListByRenter(renterID string, limit int) ([]repository.BookingView, error) {
	var rows []repository.BookingView
	err := r.db.Table("bookings").
		Select(viewSelect).
		Joins("JOIN equipment ON equipment.id = bookings.equipment_id").
		Joins("JOIN farmers ON farmers.id = bookings.owner_id").
		Where("bookings.renter_id = ?", renterID).
		Order("bookings.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookingRepo) ListByOwner(ownerID string, limit int) ([]repository.BookingView, error) {
	var rows []repository.BookingView
	err := r.db.Table("bookings").
		Select(viewSelect).
		Joins("JOIN equipment ON equipment.id = bookings.equipment_id").
		Joins("JOIN farmers ON farmers.id = bookings.renter_id").
		Where("bookings.owner_id = ?", ownerID).
		Order("bookings.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
