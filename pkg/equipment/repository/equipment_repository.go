package repository

import "agrilink/entities"

type EquipmentRow struct {
	entities.Equipment
	OwnerName     string `json:"owner_name"`
	OwnerLocation string `json:"owner_location"`
}

type EquipmentRepository interface {
	Create(e *entities.Equipment) error
	List() ([]EquipmentRow, error)
	// FindAvailable returns the listing only while it is still offered,
	// matching the detail page query of the original system.
	FindAvailable(id string) (*entities.Equipment, error)
	ListByOwner(ownerID string) ([]entities.Equipment, error)
}
