package chatService

import (
	"errors"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/chat"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	redisPkg "github.com/Abdouldav-cyber/chat/pkg/redis"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatService) GetAllIntents(ctx context.Context) (*chat.IntentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	intents, err := repo.Intents.GetAllIntents(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get intents")
		return nil, err
	}

	response := &chat.IntentListResponse{
		Intents: make([]chat.IntentResponse, 0, len(intents)),
		Total:   len(intents),
	}

	for _, intent := range intents {
		response.Intents = append(response.Intents, chat.IntentResponse{
			ID:        intent.ID,
			Name:      intent.Name,
			Category:  intent.Category,
			Response:  intent.Response,
			Keywords:  append([]string(nil), intent.Keywords...),
			Priority:  intent.Priority,
			IsActive:  intent.IsActive,
			CreatedAt: intent.CreatedAt,
			UpdatedAt: intent.UpdatedAt,
		})
	}

	return response, nil
}

func (s *chatService) CreateIntent(ctx context.Context, req chat.CreateIntentRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	intentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()

	intent := entity.Intent{
		ID:        intentID,
		Name:      req.Name,
		Category:  req.Category,
		Response:  req.Response,
		Keywords:  req.Keywords,
		Priority:  req.Priority,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Intents.CreateIntent(ctx, intent); err != nil {
		if errors.Is(err, chat.ErrIntentAlreadyExists) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create intent")
		return chat.ErrCreateIntent
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return chat.ErrCreateIntent
	}

	return s.reloadAndBroadcast(ctx, requestID)
}

func (s *chatService) UpdateIntent(ctx context.Context, name string, req chat.UpdateIntentRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Intents.GetIntentByName(ctx, name)
	if err != nil {
		if errors.Is(err, chat.ErrIntentNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       name,
			}).Warn("Intent not found")
		}
		return err
	}

	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.Response != "" {
		existing.Response = req.Response
	}
	if len(req.Keywords) > 0 {
		existing.Keywords = req.Keywords
	}
	if req.Priority != nil {
		existing.Priority = *req.Priority
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := repo.Intents.UpdateIntent(ctx, existing); err != nil {
		if errors.Is(err, chat.ErrIntentNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"error":      err.Error(),
		}).Error("Failed to update intent")
		return chat.ErrUpdateIntent
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return chat.ErrUpdateIntent
	}

	return s.reloadAndBroadcast(ctx, requestID)
}

func (s *chatService) DeleteIntent(ctx context.Context, name string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Intents.DeactivateIntent(ctx, name); err != nil {
		if errors.Is(err, chat.ErrIntentNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"error":      err.Error(),
		}).Error("Failed to deactivate intent")
		return chat.ErrDeleteIntent
	}

	return s.reloadAndBroadcast(ctx, requestID)
}

func (s *chatService) ReloadIntents(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)
	return s.reloadAndBroadcast(ctx, requestID)
}

// reloadAndBroadcast refreshes the local catalog snapshot, then tells the
// other instances to do the same. The broadcast is best effort.
func (s *chatService) reloadAndBroadcast(ctx context.Context, requestID string) error {
	if err := s.catalog.Reload(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to reload intent catalog")
		return chat.ErrReloadIntents
	}

	if s.redisServer != nil {
		if err := s.redisServer.Publish(ctx, redisPkg.ChannelIntentsReload, requestID); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to broadcast intent reload")
		}
	}

	return nil
}
