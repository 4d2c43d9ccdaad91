package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UnitKg       = "kg"
	UnitQuintals = "quintals"
	UnitTons     = "tons"
)

const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
)

func ValidUnit(u string) bool {
	return u == UnitKg || u == UnitQuintals || u == UnitTons
}

func ValidQualityGrade(g string) bool {
	return g == GradeA || g == GradeB || g == GradeC
}

// Crop is a crop-for-sale listing. There is no update or delete path;
// listings are created once and browsed until the row is retired by hand.
type Crop struct {
	ID           string  `gorm:"primaryKey;type:text" json:"id"`
	FarmerID     string  `gorm:"index;type:text" json:"farmer_id"`
	CropName     string  `gorm:"size:120" json:"crop_name"`
	Variety      *string `gorm:"size:120" json:"variety"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `gorm:"size:16" json:"unit"` // kg|quintals|tons
	PricePerUnit float64 `json:"price_per_unit"`
	HarvestDate  *string `json:"harvest_date"` // YYYY-MM-DD
	ExpiryDate   *string `json:"expiry_date"`  // YYYY-MM-DD
	Location     string  `gorm:"size:120" json:"location"`
	Description  *string `json:"description"`
	QualityGrade string  `gorm:"size:4" json:"quality_grade"` // A|B|C
	Organic      bool    `json:"organic"`
	Available    bool    `gorm:"index" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Crop) TableName() string { return "crops" }

func (cr *Crop) BeforeCreate(*gorm.DB) error {
	if cr.ID == "" {
		cr.ID = uuid.NewString()
	}
	return nil
}
