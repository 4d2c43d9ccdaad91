package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(cr *entities.Crop) error { return r.db.Create(cr).Error }

func (r *cropRepo) List() ([]repository.CropRow, error) {
	var rows []repository.CropRow
	err := r.db.Table("crops").
		Select("crops.*, farmers.full_name AS farmer_name, farmers.location AS farmer_location").
		Joins("JOIN farmers ON farmers.id = crops.farmer_id").
		Order("crops.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *cropRepo) FindByID(id string) (*entities.Crop, error) {
	var cr entities.Crop
	if err := r.db.Where("id = ?", id).First(&cr).Error; err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *cropRepo) ListByFarmer(farmerID string) ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Where("farmer_id = ?", farmerID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
