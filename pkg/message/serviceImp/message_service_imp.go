package serviceImp

import (
	"fmt"
	"strings"

	"agrilink/entities"
	farmerRepo "agrilink/pkg/farmer/repository"
	"agrilink/pkg/htmltext"
	"agrilink/pkg/message/repository"
	svc "agrilink/pkg/message/service"
)

type service struct {
	messages repository.MessageRepository
	farmers  farmerRepo.FarmerRepository
}

func New(messages repository.MessageRepository, farmers farmerRepo.FarmerRepository) svc.MessageService {
	return &service{messages: messages, farmers: farmers}
}

func (s *service) Send(senderID string, in svc.SendMessageInput) (*entities.Message, error) {
	if in.RecipientID == "" {
		return nil, fmt.Errorf("%w: recipientId required", svc.ErrInvalid)
	}
	subject := htmltext.Strip(in.Subject)
	body := htmltext.Strip(in.Body)
	if subject == "" || body == "" {
		return nil, fmt.Errorf("%w: subject and message required", svc.ErrInvalid)
	}

	// Recipient existence is not verified here; the original system inserts
	// blindly and only the contact-info lookup checks the farmer row.
	m := &entities.Message{
		SenderID:    senderID,
		RecipientID: in.RecipientID,
		Subject:     subject,
		Body:        body,
	}
	if id := strings.TrimSpace(in.CropID); id != "" {
		m.CropID = &id
	}
	if err := s.messages.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) List(farmerID, conversationWith string) ([]svc.MessageView, error) {
	var (
		msgs []entities.Message
		err  error
	)
	if conversationWith != "" {
		msgs, err = s.messages.ListConversation(farmerID, conversationWith)
	} else {
		msgs, err = s.messages.ListForFarmer(farmerID)
	}
	if err != nil {
		return nil, err
	}
	return s.decorate(msgs)
}

func (s *service) Conversations(farmerID string) ([]svc.Conversation, error) {
	views, err := s.List(farmerID, "")
	if err != nil {
		return nil, err
	}
	return svc.GroupConversations(farmerID, views), nil
}

// decorate resolves display names for every distinct participant in one
// batch lookup.
func (s *service) decorate(msgs []entities.Message) ([]svc.MessageView, error) {
	seen := map[string]struct{}{}
	ids := make([]string, 0, len(msgs)*2)
	for _, m := range msgs {
		for _, id := range []string{m.SenderID, m.RecipientID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	names, err := s.farmers.NamesByIDs(ids)
	if err != nil {
		return nil, err
	}

	out := make([]svc.MessageView, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, svc.MessageView{
			Message:       m,
			SenderName:    names[m.SenderID],
			RecipientName: names[m.RecipientID],
		})
	}
	return out, nil
}
