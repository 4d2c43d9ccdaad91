package repository

import "agrilink/entities"

type FarmerRepository interface {
	Create(f *entities.Farmer) error
	FindByID(id string) (*entities.Farmer, error)
	FindByEmail(email string) (*entities.Farmer, error)
	EmailTaken(email string) (bool, error)
	// NamesByIDs resolves display names for a batch of farmer ids.
	NamesByIDs(ids []string) (map[string]string, error)
	Wishlist(id string) ([]string, error)
	SetWishlist(id string, wishlist []string) error
}
