package repositoryImp

import (
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/message/repository"
)

type messageRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MessageRepository { return &messageRepo{db} }

func (r *messageRepo) Create(m *entities.Message) error { return r.db.Create(m).Error }

func (r *messageRepo) ListForFarmer(farmerID string) ([]entities.Message, error) {
	var out []entities.Message
	err := r.db.
		Where("sender_id = ? OR recipient_id = ?", farmerID, farmerID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *messageRepo) ListConversation(farmerID, otherID string) ([]entities.Message, error) {
	var out []entities.Message
	err := r.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			farmerID, otherID, otherID, farmerID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
