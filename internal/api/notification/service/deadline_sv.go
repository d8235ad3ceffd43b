package notificationService

import (
	"fmt"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/notification"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	dateLayout = "2006-01-02"

	// The periodic check only looks this far ahead; a deadline's own
	// notify_days_before narrows the window further, never widens it.
	deadlineLookaheadDays = 7

	defaultNotifyDaysBefore = 7
	defaultListPeriodDays   = 30
)

func (s *notificationService) CreateDeadline(ctx context.Context, req notification.CreateDeadlineRequest) (*notification.DeadlineResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return nil, notification.ErrInvalidDueDate
	}

	notifyDays := defaultNotifyDaysBefore
	if req.NotifyDaysBefore != nil {
		notifyDays = *req.NotifyDaysBefore
	}

	deadlineID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	deadline := entity.Deadline{
		ID:               deadlineID,
		EmployeeID:       req.EmployeeID,
		Type:             req.Type,
		DueDate:          dueDate,
		Description:      req.Description,
		NotifyDaysBefore: notifyDays,
		Notified:         false,
		CreatedAt:        time.Now(),
	}

	if err := repo.Deadlines.CreateDeadline(ctx, deadline); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create deadline")
		return nil, notification.ErrCreateDeadline
	}

	return makeDeadlineResponse(deadline), nil
}

func (s *notificationService) ListDeadlines(ctx context.Context, employeeID string, periodDays int) (*notification.DeadlineListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if periodDays < 1 || periodDays > 365 {
		periodDays = defaultListPeriodDays
	}

	from := dateOf(time.Now())
	to := from.AddDate(0, 0, periodDays)

	deadlines, err := repo.Deadlines.GetDeadlinesBetween(ctx, employeeID, from, to)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list deadlines")
		return nil, err
	}

	response := &notification.DeadlineListResponse{
		Deadlines: make([]notification.DeadlineResponse, 0, len(deadlines)),
		Total:     len(deadlines),
	}
	for _, deadline := range deadlines {
		response.Deadlines = append(response.Deadlines, *makeDeadlineResponse(deadline))
	}

	return response, nil
}

// CheckDeadlines turns due, unnotified deadlines into notifications. It
// is meant to be invoked periodically; each deadline is notified once.
func (s *notificationService) CheckDeadlines(ctx context.Context) (*notification.CheckDeadlinesResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	now := time.Now()
	until := dateOf(now).AddDate(0, 0, deadlineLookaheadDays)

	deadlines, err := repo.Deadlines.GetDueDeadlines(ctx, until)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch due deadlines")
		return nil, notification.ErrCheckDeadlines
	}

	created := 0
	for _, deadline := range deadlines {
		daysLeft := daysUntil(deadline.DueDate, now)
		if daysLeft > deadline.NotifyDaysBefore {
			continue
		}

		title := fmt.Sprintf("Échéance RH : %s", deadline.Type)
		body := deadlineMessage(deadline.Deadline, daysLeft)

		if err := s.Notify(ctx, deadline.EmployeeID, deadline.EmployeeEmail, title, body); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"deadline_id": deadline.ID,
				"error":       err.Error(),
			}).Warn("Failed to notify deadline")
			continue
		}

		if err := repo.Deadlines.MarkNotified(ctx, deadline.ID); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"deadline_id": deadline.ID,
				"error":       err.Error(),
			}).Warn("Failed to mark deadline notified")
		}

		created++
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"checked":    len(deadlines),
		"created":    created,
	}).Info("Deadline check completed")

	return &notification.CheckDeadlinesResponse{NotificationsCreated: created}, nil
}

func deadlineMessage(deadline entity.Deadline, daysLeft int) string {
	switch {
	case daysLeft == 0:
		return fmt.Sprintf("L'échéance '%s' est aujourd'hui !", deadline.Type)
	case daysLeft < 0:
		return fmt.Sprintf("L'échéance '%s' est dépassée de %d jour(s).", deadline.Type, -daysLeft)
	default:
		message := fmt.Sprintf("L'échéance '%s' est dans %d jour(s).", deadline.Type, daysLeft)
		if deadline.Description != "" {
			message += " " + deadline.Description
		}
		return message
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysUntil(due, now time.Time) int {
	return int(dateOf(due).Sub(dateOf(now)).Hours() / 24)
}

func makeDeadlineResponse(deadline entity.Deadline) *notification.DeadlineResponse {
	return &notification.DeadlineResponse{
		ID:               deadline.ID,
		EmployeeID:       deadline.EmployeeID,
		Type:             deadline.Type,
		DueDate:          deadline.DueDate,
		Description:      deadline.Description,
		NotifyDaysBefore: deadline.NotifyDaysBefore,
		Notified:         deadline.Notified,
		CreatedAt:        deadline.CreatedAt,
	}
}
