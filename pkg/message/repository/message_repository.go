package repository

import "agrilink/entities"

type MessageRepository interface {
	Create(m *entities.Message) error
	// ListForFarmer returns every message the farmer sent or received,
	// ascending by creation time.
	ListForFarmer(farmerID string) ([]entities.Message, error)
	// ListConversation restricts to the symmetric pair (farmer, other).
	ListConversation(farmerID, otherID string) ([]entities.Message, error)
}
