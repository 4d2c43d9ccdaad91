package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Farmer is the persisted auth identity plus marketplace profile.
// Controllers convert this to a lightweight DTO for the client.
type Farmer struct {
	ID                string   `gorm:"primaryKey;type:text" json:"id"`
	Email             string   `gorm:"uniqueIndex;size:320;not null" json:"email"`
	PasswordHash      string   `gorm:"size:255;not null" json:"-"`
	FullName          string   `gorm:"size:120" json:"full_name"`
	Phone             string   `gorm:"size:32" json:"phone"`
	Location          string   `gorm:"size:120" json:"location"`
	PreferredLanguage string   `gorm:"size:16" json:"preferred_language"`
	FarmingExperience int      `json:"farming_experience"`
	FarmSizeAcres     *float64 `json:"farm_size_acres,omitempty"`

	// Saved crop listing ids, in the order they were added. No duplicates
	// (enforced by check-before-append, not by the store).
	Wishlist []string `gorm:"serializer:json" json:"wishlist,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Farmer) TableName() string { return "farmers" }

func (f *Farmer) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
