package state

import (
	"context"

	"github.com/pawhaven/pawdeck/internal/api"
)

// MessagesSlice caches the inbox. Unread is derived from the entries.
type MessagesSlice struct {
	Status   Status
	Messages []api.Message
	Unread   int
}

func (m MessagesSlice) clone() MessagesSlice {
	m.Messages = cloneList(m.Messages)
	return m
}

func (m *MessagesSlice) recountUnread() {
	m.Unread = 0
	for _, msg := range m.Messages {
		if !msg.Read {
			m.Unread++
		}
	}
}

// FetchMessages refreshes the inbox.
func (s *Store) FetchMessages(ctx context.Context) error {
	s.begin(SliceMessages)
	messages, err := s.api.FetchMessages(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.messages.Status.fail("fetch messages: " + api.ErrorMessage(err))
		return err
	}
	s.messages.Messages = messages
	s.messages.recountUnread()
	s.messages.Status.succeed("")
	return nil
}

// SendMessage delivers a message to another account.
func (s *Store) SendMessage(ctx context.Context, input api.MessageInput) error {
	s.begin(SliceMessages)
	_, err := s.api.SendMessage(ctx, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.messages.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.messages.Status.succeed("message sent")
	return nil
}

// MarkMessageRead flags an entry as read, applied in place.
func (s *Store) MarkMessageRead(ctx context.Context, id string) error {
	s.begin(SliceMessages)
	message, err := s.api.MarkMessageRead(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.messages.Status.fail(api.ErrorMessage(err))
		return err
	}
	for i := range s.messages.Messages {
		if s.messages.Messages[i].ID == message.ID {
			s.messages.Messages[i] = message
			break
		}
	}
	s.messages.recountUnread()
	s.messages.Status.succeed("")
	return nil
}
