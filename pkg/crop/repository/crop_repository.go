package repository

import "agrilink/entities"

// CropRow is a browse row: the listing joined with the seller's display
// fields, matching what the marketplace cards render.
type CropRow struct {
	entities.Crop
	FarmerName     string `json:"farmer_name"`
	FarmerLocation string `json:"farmer_location"`
}

type CropRepository interface {
	Create(cr *entities.Crop) error
	// List returns all listings newest-first with the seller join.
	List() ([]CropRow, error)
	FindByID(id string) (*entities.Crop, error)
	ListByFarmer(farmerID string) ([]entities.Crop, error)
}
