package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EquipTractor   = "tractor"
	EquipHarvester = "harvester"
	EquipPlough    = "plough"
	EquipSeeder    = "seeder"
	EquipSprayer   = "sprayer"
	EquipOther     = "other"
)

const (
	CondExcellent = "excellent"
	CondGood      = "good"
	CondFair      = "fair"
	CondPoor      = "poor"
)

func ValidEquipmentType(t string) bool {
	switch t {
	case EquipTractor, EquipHarvester, EquipPlough, EquipSeeder, EquipSprayer, EquipOther:
		return true
	}
	return false
}

func ValidCondition(c string) bool {
	switch c {
	case CondExcellent, CondGood, CondFair, CondPoor:
		return true
	}
	return false
}

// Equipment is an equipment-for-rent listing.
type Equipment struct {
	ID                string  `gorm:"primaryKey;type:text" json:"id"`
	OwnerID           string  `gorm:"index;type:text" json:"owner_id"`
	EquipmentName     string  `gorm:"size:120" json:"equipment_name"`
	EquipmentType     string  `gorm:"size:32" json:"equipment_type"` // tractor|harvester|plough|seeder|sprayer|other
	Brand             *string `gorm:"size:120" json:"brand"`
	Model             *string `gorm:"size:120" json:"model"`
	YearManufactured  *int    `json:"year_manufactured"`
	Condition         string  `gorm:"size:16" json:"condition"` // excellent|good|fair|poor
	RentalPricePerDay float64 `json:"rental_price_per_day"`
	Location          string  `gorm:"size:120" json:"location"`
	Description       *string `json:"description"`
	MaintenanceDate   *string `json:"maintenance_date"` // YYYY-MM-DD
	Available         bool    `gorm:"index" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }

func (e *Equipment) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
