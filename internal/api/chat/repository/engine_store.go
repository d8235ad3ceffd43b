package chatRepository

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/Abdouldav-cyber/chat/pkg/nlp"
	redisPkg "github.com/Abdouldav-cyber/chat/pkg/redis"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const balanceCacheTTL = 5 * time.Minute

// EngineStore exposes the repository to the resolution engine as its
// catalog source, conversation sink and balance provider. Leave balances
// are cached in Redis when a client is configured.
type EngineStore struct {
	repo        Repository
	redisServer redisPkg.IRedis
	log         *logrus.Logger
}

func NewEngineStore(repo Repository, redisServer redisPkg.IRedis, log *logrus.Logger) *EngineStore {
	return &EngineStore{
		repo:        repo,
		redisServer: redisServer,
		log:         log,
	}
}

func (s *EngineStore) FetchActive(ctx context.Context) ([]nlp.Intent, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	rows, err := client.Intents.GetActiveIntents(ctx)
	if err != nil {
		return nil, err
	}

	intents := make([]nlp.Intent, 0, len(rows))
	for _, row := range rows {
		intents = append(intents, nlp.Intent{
			Name:     row.Name,
			Category: row.Category,
			Response: row.Response,
			Keywords: append([]string(nil), row.Keywords...),
			Priority: row.Priority,
			Active:   row.IsActive,
		})
	}

	return intents, nil
}

func (s *EngineStore) Append(ctx context.Context, record nlp.ConversationRecord) error {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	entities, err := json.Marshal(record.Entities)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"conversation_id": record.ID,
			"error":           err.Error(),
		}).Error("Failed to marshal conversation entities")
		entities = []byte("{}")
	}

	var employeeID sql.NullString
	if record.EmployeeID != "" {
		employeeID = sql.NullString{String: record.EmployeeID, Valid: true}
	}

	return client.Conversations.CreateConversation(ctx, entity.Conversation{
		ID:         record.ID,
		EmployeeID: employeeID,
		SessionID:  record.SessionID,
		Message:    record.Message,
		Intent:     record.Intent,
		Response:   record.Response,
		Confidence: record.Confidence,
		Entities:   entities,
		CreatedAt:  time.Now(),
	})
}

func (s *EngineStore) LeaveBalance(ctx context.Context, employeeID string) (float64, bool) {
	cacheKey := "leave_balance:" + employeeID

	if s.redisServer != nil {
		if cached, err := s.redisServer.Get(ctx, cacheKey); err == nil {
			if balance, err := strconv.ParseFloat(cached, 64); err == nil {
				return balance, true
			}
		}
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return 0, false
	}

	balance, err := client.Employees.GetLeaveBalance(ctx, employeeID)
	if err != nil {
		return 0, false
	}

	if s.redisServer != nil {
		value := strconv.FormatFloat(balance, 'f', -1, 64)
		if err := s.redisServer.Set(ctx, cacheKey, value, balanceCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"employee_id": employeeID,
				"error":       err.Error(),
			}).Warn("Failed to cache leave balance")
		}
	}

	return balance, true
}
