package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/equipment/repository"
)

type equipmentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EquipmentRepository { return &equipmentRepo{db} }

func (r *equipmentRepo) Create(e *entities.Equipment) error { return r.db.Create(e).Error }

func (r *equipmentRepo) List() ([]repository.EquipmentRow, error) {
	var rows []repository.EquipmentRow
	err := r.db.Table("equipment").
		Select("equipment.*, farmers.full_name AS owner_name, farmers.location AS owner_location").
		Joins("JOIN farmers ON farmers.id = equipment.owner_id").
		Order("equipment.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *equipmentRepo) FindAvailable(id string) (*entities.Equipment, error) {
	var e entities.Equipment
	if err := r.db.Where("id = ? AND available = ?", id, true).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepo) ListByOwner(ownerID string) ([]entities.Equipment, error) {
	var out []entities.Equipment
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
