package chatService

import (
	"context"

	"github.com/Abdouldav-cyber/chat/internal/api/chat"
	chatRepository "github.com/Abdouldav-cyber/chat/internal/api/chat/repository"
	"github.com/Abdouldav-cyber/chat/pkg/nlp"
	redisPkg "github.com/Abdouldav-cyber/chat/pkg/redis"
	"github.com/Abdouldav-cyber/chat/pkg/utils"
	"github.com/sirupsen/logrus"
)

type IChatService interface {
	Chat(ctx context.Context, req chat.ChatRequest, employeeID string) (*chat.ChatResponse, error)
	SubmitFeedback(ctx context.Context, req chat.FeedbackRequest) error
	GetSessionHistory(ctx context.Context, sessionID string, page, limit int) (*chat.ConversationListResponse, error)
	GetAllIntents(ctx context.Context) (*chat.IntentListResponse, error)
	CreateIntent(ctx context.Context, req chat.CreateIntentRequest) error
	UpdateIntent(ctx context.Context, name string, req chat.UpdateIntentRequest) error
	DeleteIntent(ctx context.Context, name string) error
	ReloadIntents(ctx context.Context) error
}

type chatService struct {
	log         *logrus.Logger
	chatRepo    chatRepository.Repository
	engine      *nlp.Engine
	catalog     *nlp.Handle
	redisServer redisPkg.IRedis
	utils       utils.IUtils
}

func NewChatService(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	engine *nlp.Engine,
	catalog *nlp.Handle,
	redisServer redisPkg.IRedis,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:         log,
		chatRepo:    chatRepo,
		engine:      engine,
		catalog:     catalog,
		redisServer: redisServer,
		utils:       utils,
	}
}
