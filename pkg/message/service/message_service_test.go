package service

import (
	"testing"

	"agrilink/entities"
)

func view(sender, senderName, recipient, recipientName, body string, read bool) MessageView {
	return MessageView{
		Message: entities.Message{
			SenderID:    sender,
			RecipientID: recipient,
			Body:        body,
			Read:        read,
		},
		SenderName:    senderName,
		RecipientName: recipientName,
	}
}

func TestGroupConversationsByCounterpart(t *testing.T) {
	msgs := []MessageView{
		view("me", "Me", "asha", "Asha", "hello", false),
		view("asha", "Asha", "me", "Me", "hi back", false),
		view("bhaskar", "Bhaskar", "me", "Me", "tractor free?", false),
		view("me", "Me", "asha", "Asha", "any wheat left?", false),
	}

	got := GroupConversations("me", msgs)
	if len(got) != 2 {
		t.Fatalf("conversations = %d, want 2", len(got))
	}

	// First-contact order: Asha before Bhaskar.
	if got[0].ID != "asha" || got[0].Name != "Asha" {
		t.Errorf("first = %s/%s, want asha/Asha", got[0].ID, got[0].Name)
	}
	if got[1].ID != "bhaskar" {
		t.Errorf("second = %s, want bhaskar", got[1].ID)
	}

	if got[0].LastMessage.Body != "any wheat left?" {
		t.Errorf("last message = %q, want latest in thread", got[0].LastMessage.Body)
	}
}

func TestGroupConversationsUnreadCount(t *testing.T) {
	msgs := []MessageView{
		view("asha", "Asha", "me", "Me", "one", false),
		view("asha", "Asha", "me", "Me", "two", false),
		view("asha", "Asha", "me", "Me", "old", true),
		view("me", "Me", "asha", "Asha", "mine", false),
	}

	got := GroupConversations("me", msgs)
	if len(got) != 1 {
		t.Fatalf("conversations = %d, want 1", len(got))
	}
	// Only unread messages addressed to the viewer count. The viewer's own
	// outgoing messages never do, read or not.
	if got[0].UnreadCount != 2 {
		t.Errorf("unread = %d, want 2", got[0].UnreadCount)
	}
}

func TestGroupConversationsEmpty(t *testing.T) {
	got := GroupConversations("me", nil)
	if got == nil || len(got) != 0 {
		t.Errorf("GroupConversations(nil) = %v, want empty non-nil slice", got)
	}
}
