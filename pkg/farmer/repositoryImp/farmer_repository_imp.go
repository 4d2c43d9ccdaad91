package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) Create(f *entities.Farmer) error { return r.db.Create(f).Error }

func (r *farmerRepo) FindByID(id string) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.db.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) FindByEmail(email string) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.db.Where("email = ?", email).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) EmailTaken(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.Farmer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *farmerRepo) NamesByIDs(ids []string) (map[string]string, error) {
	out := map[string]string{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []entities.Farmer
	if err := r.db.Select("id", "full_name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, f := range rows {
		out[f.ID] = f.FullName
	}
	return out, nil
}

func (r *farmerRepo) Wishlist(id string) ([]string, error) {
	f, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	return f.Wishlist, nil
}

func (r *farmerRepo) SetWishlist(id string, wishlist []string) error {
	if wishlist == nil {
		wishlist = []string{}
	}
	// Empty slice must overwrite, so update the column explicitly instead of
	// relying on Updates' zero-value skipping.
	return r.db.Model(&entities.Farmer{}).Where("id = ?", id).
		Update("wishlist", wishlist).Error
}
