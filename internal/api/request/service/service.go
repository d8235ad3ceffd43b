package requestService

import (
	"context"

	authRepository "github.com/Abdouldav-cyber/chat/internal/api/auth/repository"
	notificationService "github.com/Abdouldav-cyber/chat/internal/api/notification/service"
	"github.com/Abdouldav-cyber/chat/internal/api/request"
	requestRepository "github.com/Abdouldav-cyber/chat/internal/api/request/repository"
	redisPkg "github.com/Abdouldav-cyber/chat/pkg/redis"
	"github.com/Abdouldav-cyber/chat/pkg/utils"
	"github.com/sirupsen/logrus"
)

type IRequestService interface {
	CreateRequest(ctx context.Context, employeeID string, req request.CreateRequestRequest) (*request.RequestResponse, error)
	GetMyRequests(ctx context.Context, employeeID string, page, limit int) (*request.RequestListResponse, error)
	GetPendingRequests(ctx context.Context, page, limit int) (*request.RequestListResponse, error)
	ProcessRequest(ctx context.Context, managerID string, requestID string, req request.ProcessRequestRequest) error
	CancelRequest(ctx context.Context, employeeID string, requestID string) error
}

type requestService struct {
	log           *logrus.Logger
	requestRepo   requestRepository.Repository
	authRepo      authRepository.Repository
	notifications notificationService.INotificationService
	redisServer   redisPkg.IRedis
	utils         utils.IUtils
}

func NewRequestService(
	log *logrus.Logger,
	requestRepo requestRepository.Repository,
	authRepo authRepository.Repository,
	notifications notificationService.INotificationService,
	redisServer redisPkg.IRedis,
	utils utils.IUtils,
) IRequestService {
	return &requestService{
		log:           log,
		requestRepo:   requestRepo,
		authRepo:      authRepo,
		notifications: notifications,
		redisServer:   redisServer,
		utils:         utils,
	}
}
