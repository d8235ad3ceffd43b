package chatService

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Abdouldav-cyber/chat/internal/api/chat"
	chatRepository "github.com/Abdouldav-cyber/chat/internal/api/chat/repository"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/Abdouldav-cyber/chat/pkg/nlp"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type countingResolver struct {
	calls atomic.Int64
}

func (r *countingResolver) Resolve(context.Context, string) (string, float64, bool) {
	r.calls.Add(1)
	return "conge_solde", 0.8, true
}

type memorySink struct {
	mu      sync.Mutex
	records []nlp.ConversationRecord
}

func (s *memorySink) Append(_ context.Context, record nlp.ConversationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

func (s *memorySink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

type staticCatalogSource struct{}

func (staticCatalogSource) FetchActive(context.Context) ([]nlp.Intent, error) {
	return []nlp.Intent{
		{
			Name:     "conge_solde",
			Category: "conges",
			Response: "Consultez vos congés dans votre espace employé.",
			Keywords: []string{"congés", "solde"},
			Priority: 10,
			Active:   true,
		},
	}, nil
}

type stubConversations struct {
	feedbackErr error
}

func (s *stubConversations) CreateConversation(context.Context, entity.Conversation) error {
	return nil
}

func (s *stubConversations) GetConversationsBySession(context.Context, string, int, int) ([]entity.Conversation, int, error) {
	return nil, 0, nil
}

func (s *stubConversations) SetFeedback(context.Context, string, int) error {
	return s.feedbackErr
}

type stubRepository struct {
	conversations *stubConversations
}

func (r *stubRepository) NewClient(bool) (chatRepository.Client, error) {
	return chatRepository.Client{
		Conversations: r.conversations,
		Commit:        func() error { return nil },
		Rollback:      func() error { return nil },
	}, nil
}

func newTestService(t *testing.T, resolver nlp.Resolver, sink nlp.ConversationSink) IChatService {
	t.Helper()
	logger := testLogger()

	handle := nlp.NewHandle(staticCatalogSource{}, logger)
	if err := handle.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	engine := nlp.NewEngine(logger, handle, resolver, nlp.NewExtractor(nil), sink, nil)
	repo := &stubRepository{conversations: &stubConversations{}}

	return NewChatService(logger, repo, engine, handle, nil, nil)
}

func TestChatEmptyMessageRejectedBeforeResolution(t *testing.T) {
	resolver := &countingResolver{}
	sink := &memorySink{}
	service := newTestService(t, resolver, sink)

	for _, message := range []string{"", "   ", "\t\n"} {
		_, err := service.Chat(context.Background(), chat.ChatRequest{Message: message}, "")
		if err != chat.ErrEmptyMessage {
			t.Errorf("Chat(%q) error = %v, want ErrEmptyMessage", message, err)
		}
	}

	if calls := resolver.calls.Load(); calls != 0 {
		t.Errorf("resolver invoked %d times for empty messages, want 0", calls)
	}
	if sink.count() != 0 {
		t.Errorf("sink holds %d records for empty messages, want 0", sink.count())
	}
}

func TestChatGeneratesSessionID(t *testing.T) {
	service := newTestService(t, &countingResolver{}, &memorySink{})

	result, err := service.Chat(context.Background(), chat.ChatRequest{Message: "quel est mon solde de congés"}, "")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.SessionID == "" {
		t.Fatal("SessionID missing from response")
	}
	if _, err := uuid.Parse(result.SessionID); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", result.SessionID, err)
	}
}

func TestChatEchoesProvidedSessionID(t *testing.T) {
	sink := &memorySink{}
	service := newTestService(t, &countingResolver{}, sink)

	result, err := service.Chat(context.Background(), chat.ChatRequest{
		Message:   "quel est mon solde de congés",
		SessionID: "sess-keep",
	}, "emp-1")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.SessionID != "sess-keep" {
		t.Errorf("SessionID = %q, want the caller's value kept", result.SessionID)
	}
	if result.Intent != "conge_solde" {
		t.Errorf("Intent = %q", result.Intent)
	}
	if result.ConversationID == "" {
		t.Error("ConversationID missing")
	}
	if sink.count() != 1 {
		t.Errorf("sink holds %d records, want 1", sink.count())
	}
}

func TestSubmitFeedbackNotFound(t *testing.T) {
	logger := testLogger()
	repo := &stubRepository{conversations: &stubConversations{feedbackErr: chat.ErrConversationNotFound}}
	service := NewChatService(logger, repo, nil, nil, nil, nil)

	err := service.SubmitFeedback(context.Background(), chat.FeedbackRequest{
		ConversationID: "missing",
		Feedback:       1,
	})
	if err != chat.ErrConversationNotFound {
		t.Errorf("SubmitFeedback error = %v, want ErrConversationNotFound", err)
	}
}
