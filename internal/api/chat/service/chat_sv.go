package chatService

import (
	"errors"
	"strings"

	"github.com/Abdouldav-cyber/chat/internal/api/chat"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatService) Chat(ctx context.Context, req chat.ChatRequest, employeeID string) (*chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.Message) == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": req.SessionID,
		}).Warn("Rejected chat request with empty message")
		return nil, chat.ErrEmptyMessage
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result := s.engine.Resolve(ctx, req.Message, employeeID, sessionID)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"intent":     result.Intent,
		"confidence": result.Confidence,
	}).Info("Resolved chat message")

	return &chat.ChatResponse{
		Intent:         result.Intent,
		Response:       result.Answer,
		Confidence:     result.Confidence,
		Entities:       result.Entities,
		Suggestions:    result.Suggestions,
		SessionID:      result.SessionID,
		ConversationID: result.ConversationID,
	}, nil
}

func (s *chatService) SubmitFeedback(ctx context.Context, req chat.FeedbackRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Conversations.SetFeedback(ctx, req.ConversationID, req.Feedback); err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id":      requestID,
				"conversation_id": req.ConversationID,
			}).Warn("Conversation not found for feedback")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save feedback")
		return chat.ErrSaveFeedback
	}

	return nil
}

func (s *chatService) GetSessionHistory(ctx context.Context, sessionID string, page, limit int) (*chat.ConversationListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	conversations, total, err := repo.Conversations.GetConversationsBySession(ctx, sessionID, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to get session history")
		return nil, err
	}

	response := &chat.ConversationListResponse{
		Conversations: make([]chat.ConversationResponse, 0, len(conversations)),
		Total:         total,
	}

	for _, conversation := range conversations {
		item := chat.ConversationResponse{
			ID:         conversation.ID,
			SessionID:  conversation.SessionID,
			Message:    conversation.Message,
			Intent:     conversation.Intent,
			Response:   conversation.Response,
			Confidence: conversation.Confidence,
			CreatedAt:  conversation.CreatedAt,
		}
		if conversation.Feedback.Valid {
			feedback := int(conversation.Feedback.Int64)
			item.Feedback = &feedback
		}
		response.Conversations = append(response.Conversations, item)
	}

	return response, nil
}
