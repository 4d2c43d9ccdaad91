package service

import (
	"errors"

	"agrilink/entities"
)

var ErrInvalid = errors.New("invalid message")

type SendMessageInput struct {
	RecipientID string `json:"recipientId"`
	CropID      string `json:"cropId"`
	Subject     string `json:"subject"`
	Body        string `json:"message"`
}

// MessageView decorates a message with display names for both parties.
type MessageView struct {
	entities.Message
	SenderName    string `json:"sender_name"`
	RecipientName string `json:"recipient_name"`
}

// Conversation is the derived per-counterpart grouping shown in the inbox.
type Conversation struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	LastMessage MessageView `json:"last_message"`
	UnreadCount int         `json:"unread_count"`
}

type MessageService interface {
	Send(senderID string, in SendMessageInput) (*entities.Message, error)
	// List returns the caller's messages ascending by time, optionally
	// restricted to the conversation with one counterpart.
	List(farmerID, conversationWith string) ([]MessageView, error)
	Conversations(farmerID string) ([]Conversation, error)
}

// GroupConversations reduces an ascending message list into one entry per
// counterpart, keeping the latest message and counting unread ones
// (messages addressed to the viewer that were never read). Conversations
// come back in first-contact order.
func GroupConversations(viewerID string, msgs []MessageView) []Conversation {
	idx := map[string]int{}
	out := []Conversation{}
	for _, m := range msgs {
		otherID, otherName := m.SenderID, m.SenderName
		if m.SenderID == viewerID {
			otherID, otherName = m.RecipientID, m.RecipientName
		}

		i, seen := idx[otherID]
		if !seen {
			i = len(out)
			idx[otherID] = i
			out = append(out, Conversation{ID: otherID, Name: otherName})
		}
		out[i].LastMessage = m
		if m.RecipientID == viewerID && !m.Read {
			out[i].UnreadCount++
		}
	}
	return out
}
