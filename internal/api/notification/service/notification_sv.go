package notificationService

import (
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/notification"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *notificationService) Notify(ctx context.Context, employeeID string, employeeEmail string, title string, body string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	notificationID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	notif := entity.Notification{
		ID:         notificationID,
		EmployeeID: employeeID,
		Title:      title,
		Body:       body,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}

	if err := repo.Notifications.CreateNotification(ctx, notif); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create notification")
		return notification.ErrCreateNotification
	}

	// Mail delivery is best effort and never blocks the caller.
	if s.smtpMailer != nil && employeeEmail != "" {
		go func() {
			if err := s.smtpMailer.SendMail(employeeEmail, title, body); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id":      requestID,
					"notification_id": notificationID,
					"error":           err.Error(),
				}).Warn("Failed to send notification mail")
			}
		}()
	}

	return nil
}

func (s *notificationService) GetNotifications(ctx context.Context, employeeID string, page, limit int) (*notification.NotificationListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepo.NewClient(false)
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

	notifications, total, unread, err := repo.Notifications.GetNotificationsByEmployee(ctx, employeeID, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get notifications")
		return nil, err
	}

	response := &notification.NotificationListResponse{
		Notifications: make([]notification.NotificationResponse, 0, len(notifications)),
		Total:         total,
		Unread:        unread,
	}

	for _, notif := range notifications {
		response.Notifications = append(response.Notifications, notification.NotificationResponse{
			ID:        notif.ID,
			Title:     notif.Title,
			Body:      notif.Body,
			IsRead:    notif.IsRead,
			CreatedAt: notif.CreatedAt,
		})
	}

	return response, nil
}

func (s *notificationService) MarkRead(ctx context.Context, employeeID string, notificationID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.Notifications.MarkRead(ctx, notificationID, employeeID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, employeeID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.Notifications.MarkAllRead(ctx, employeeID)
}
