package messaging

import (
	"context"
	"errors"
	"testing"

	"expertly/models"
)

type fakeConversationRepo struct {
	conversation *models.Conversation
	messages     []models.Message
	touched      []string
	createErr    error
	findErr      error
}

func (f *fakeConversationRepo) CreateConversation(ctx context.Context, c *models.Conversation) error {
	return nil
}

func (f *fakeConversationRepo) GetConversationByID(ctx context.Context, id string) (*models.Conversation, error) {
	if f.conversation == nil || f.conversation.ID != id {
		return nil, errors.New("conversation not found")
	}
	return f.conversation, nil
}

func (f *fakeConversationRepo) FindConversation(ctx context.Context, userID, expertID string) (*models.Conversation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.conversation == nil || f.conversation.UserID != userID || f.conversation.ExpertID != expertID {
		return nil, nil
	}
	return f.conversation, nil
}

func (f *fakeConversationRepo) ListConversationsByParticipant(ctx context.Context, profileID string) ([]models.Conversation, error) {
	if f.conversation == nil {
		return nil, nil
	}
	return []models.Conversation{*f.conversation}, nil
}

func (f *fakeConversationRepo) TouchConversation(ctx context.Context, id string) error {
	f.touched = append(f.touched, id)
	return nil
}

func (f *fakeConversationRepo) CreateMessage(ctx context.Context, m *models.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeConversationRepo) ListMessages(ctx context.Context, conversationID string, limit int64) ([]models.Message, error) {
	return f.messages, nil
}

func (f *fakeConversationRepo) CountConversationsForBooking(ctx context.Context, bookingID string) (int64, error) {
	return 0, nil
}

// fakeSessionService answers chat permission checks with a fixed verdict.
type fakeSessionService struct {
	canChat bool
}

func (f *fakeSessionService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.SessionInfo, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeSessionService) GetSession(ctx context.Context, bookingID, profileID string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeSessionService) CanUserChatWithExpert(ctx context.Context, userID, expertID string) bool {
	return f.canChat
}
func (f *fakeSessionService) CompleteSession(ctx context.Context, bookingID, expertID, expertNotes string) bool {
	return false
}
func (f *fakeSessionService) UserActiveSessions(ctx context.Context, userID string) []models.SessionSummary {
	return nil
}
func (f *fakeSessionService) ExpertActiveSessions(ctx context.Context, expertID string) []models.SessionSummary {
	return nil
}
func (f *fakeSessionService) SweepExpiredSessions(ctx context.Context) int64 { return 0 }

func newTestConversation() *models.Conversation {
	return &models.Conversation{
		ID:       "conv-1",
		UserID:   "user-1",
		ExpertID: "expert-1",
		Status:   models.ConversationActive,
	}
}

func TestSendMessageStoresAndTouches(t *testing.T) {
	repo := &fakeConversationRepo{conversation: newTestConversation()}
	svc := &DefaultMessagingService{
		Conversations: repo,
		Sessions:      &fakeSessionService{canChat: true},
	}

	msg, err := svc.SendMessage(context.Background(), "conv-1", "user-1", "hello")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if msg.MessageType != models.MessageTypeText {
		t.Errorf("message type = %q, want %q", msg.MessageType, models.MessageTypeText)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("stored messages = %d, want 1", len(repo.messages))
	}
	if len(repo.touched) != 1 || repo.touched[0] != "conv-1" {
		t.Errorf("touched conversations = %v, want [conv-1]", repo.touched)
	}
}

func TestSendMessageDeniedWhenChatClosed(t *testing.T) {
	repo := &fakeConversationRepo{conversation: newTestConversation()}
	svc := &DefaultMessagingService{
		Conversations: repo,
		Sessions:      &fakeSessionService{canChat: false},
	}

	_, err := svc.SendMessage(context.Background(), "conv-1", "user-1", "hello")
	if !errors.Is(err, ErrChatClosed) {
		t.Fatalf("SendMessage() error = %v, want ErrChatClosed", err)
	}
	if len(repo.messages) != 0 {
		t.Errorf("stored messages = %d, want 0", len(repo.messages))
	}
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	repo := &fakeConversationRepo{conversation: newTestConversation()}
	svc := &DefaultMessagingService{
		Conversations: repo,
		Sessions:      &fakeSessionService{canChat: true},
	}

	_, err := svc.SendMessage(context.Background(), "conv-1", "stranger", "hello")
	if !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("SendMessage() error = %v, want ErrNotParticipant", err)
	}
}

func TestSendMessageRequiresContent(t *testing.T) {
	svc := &DefaultMessagingService{
		Conversations: &fakeConversationRepo{conversation: newTestConversation()},
		Sessions:      &fakeSessionService{canChat: true},
	}

	if _, err := svc.SendMessage(context.Background(), "conv-1", "user-1", ""); err == nil {
		t.Fatal("SendMessage() with empty content should fail")
	}
}

func TestConversationWithExpert(t *testing.T) {
	repo := &fakeConversationRepo{conversation: newTestConversation()}
	svc := &DefaultMessagingService{
		Conversations: repo,
		Sessions:      &fakeSessionService{canChat: true},
	}

	conversation, err := svc.ConversationWithExpert(context.Background(), "user-1", "expert-1")
	if err != nil {
		t.Fatalf("ConversationWithExpert() error = %v", err)
	}
	if conversation == nil || conversation.ID != "conv-1" {
		t.Fatalf("conversation = %+v, want conv-1", conversation)
	}

	// A pair with no history yields nil without an error.
	conversation, err = svc.ConversationWithExpert(context.Background(), "user-1", "other-expert")
	if err != nil {
		t.Fatalf("ConversationWithExpert() error = %v", err)
	}
	if conversation != nil {
		t.Errorf("conversation = %+v, want nil", conversation)
	}

	repo.findErr = errors.New("db down")
	if _, err := svc.ConversationWithExpert(context.Background(), "user-1", "expert-1"); err == nil {
		t.Error("ConversationWithExpert() should surface lookup failures")
	}
}

func TestListMessagesRejectsNonParticipant(t *testing.T) {
	repo := &fakeConversationRepo{
		conversation: newTestConversation(),
		messages:     []models.Message{{ID: "m1", Content: "hi"}},
	}
	svc := &DefaultMessagingService{
		Conversations: repo,
		Sessions:      &fakeSessionService{canChat: true},
	}

	if _, err := svc.ListMessages(context.Background(), "conv-1", "stranger"); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("ListMessages() error = %v, want ErrNotParticipant", err)
	}

	messages, err := svc.ListMessages(context.Background(), "conv-1", "expert-1")
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(messages) != 1 {
		t.Errorf("messages = %d, want 1", len(messages))
	}
}
