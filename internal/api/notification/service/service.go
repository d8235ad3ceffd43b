package notificationService

import (
	"context"

	"github.com/Abdouldav-cyber/chat/internal/api/notification"
	notificationRepository "github.com/Abdouldav-cyber/chat/internal/api/notification/repository"
	"github.com/Abdouldav-cyber/chat/pkg/smtp"
	"github.com/Abdouldav-cyber/chat/pkg/utils"
	"github.com/sirupsen/logrus"
)

type INotificationService interface {
	Notify(ctx context.Context, employeeID string, employeeEmail string, title string, body string) error
	GetNotifications(ctx context.Context, employeeID string, page, limit int) (*notification.NotificationListResponse, error)
	MarkRead(ctx context.Context, employeeID string, notificationID string) error
	MarkAllRead(ctx context.Context, employeeID string) error
	CreateDeadline(ctx context.Context, req notification.CreateDeadlineRequest) (*notification.DeadlineResponse, error)
	ListDeadlines(ctx context.Context, employeeID string, periodDays int) (*notification.DeadlineListResponse, error)
	CheckDeadlines(ctx context.Context) (*notification.CheckDeadlinesResponse, error)
}

type notificationService struct {
	log              *logrus.Logger
	notificationRepo notificationRepository.Repository
	smtpMailer       smtp.ItfSmtp
	utils            utils.IUtils
}

func NewNotificationService(
	log *logrus.Logger,
	notificationRepo notificationRepository.Repository,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils,
) INotificationService {
	return &notificationService{
		log:              log,
		notificationRepo: notificationRepo,
		smtpMailer:       smtpMailer,
		utils:            utils,
	}
}
