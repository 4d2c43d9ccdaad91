package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is an append-only inquiry between two farmers, optionally tied to
// a crop listing. Read stays false until a future release wires up a
// mark-as-read flow.
type Message struct {
	ID          string  `gorm:"primaryKey;type:text" json:"id"`
	SenderID    string  `gorm:"index;type:text" json:"sender_id"`
	RecipientID string  `gorm:"index;type:text" json:"recipient_id"`
	CropID      *string `gorm:"type:text" json:"crop_id"`
	Subject     string  `gorm:"size:200" json:"subject"`
	Body        string  `json:"message"`
	Read        bool    `json:"read"`

	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string { return "messages" }

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
