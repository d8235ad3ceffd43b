package notificationService

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/notification"
	notificationRepository "github.com/Abdouldav-cyber/chat/internal/api/notification/repository"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/Abdouldav-cyber/chat/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubNotifications struct {
	created []entity.Notification
}

func (s *stubNotifications) CreateNotification(_ context.Context, notif entity.Notification) error {
	s.created = append(s.created, notif)
	return nil
}

func (s *stubNotifications) GetNotificationsByEmployee(context.Context, string, int, int) ([]entity.Notification, int, int, error) {
	return nil, 0, 0, nil
}

func (s *stubNotifications) MarkRead(context.Context, string, string) error { return nil }

func (s *stubNotifications) MarkAllRead(context.Context, string) error { return nil }

type stubDeadlines struct {
	due      []entity.DueDeadline
	created  []entity.Deadline
	notified []string
}

func (s *stubDeadlines) CreateDeadline(_ context.Context, deadline entity.Deadline) error {
	s.created = append(s.created, deadline)
	return nil
}

func (s *stubDeadlines) GetDeadlinesBetween(context.Context, string, time.Time, time.Time) ([]entity.Deadline, error) {
	return nil, nil
}

func (s *stubDeadlines) GetDueDeadlines(context.Context, time.Time) ([]entity.DueDeadline, error) {
	return s.due, nil
}

func (s *stubDeadlines) MarkNotified(_ context.Context, id string) error {
	s.notified = append(s.notified, id)
	return nil
}

type stubNotificationRepository struct {
	notifications *stubNotifications
	deadlines     *stubDeadlines
}

func (r *stubNotificationRepository) NewClient(bool) (notificationRepository.Client, error) {
	return notificationRepository.Client{
		Notifications: r.notifications,
		Deadlines:     r.deadlines,
		Commit:        func() error { return nil },
		Rollback:      func() error { return nil },
	}, nil
}

func newTestService(repo *stubNotificationRepository) INotificationService {
	return NewNotificationService(testLogger(), repo, nil, utils.New())
}

func dueDeadline(id string, daysFromNow int, notifyBefore int) entity.DueDeadline {
	return entity.DueDeadline{
		Deadline: entity.Deadline{
			ID:               id,
			EmployeeID:       "emp-" + id,
			Type:             "visite médicale",
			DueDate:          time.Now().AddDate(0, 0, daysFromNow),
			NotifyDaysBefore: notifyBefore,
		},
		EmployeeEmail: id + "@example.com",
	}
}

func TestCheckDeadlinesNotifiesDueOnes(t *testing.T) {
	repo := &stubNotificationRepository{
		notifications: &stubNotifications{},
		deadlines: &stubDeadlines{due: []entity.DueDeadline{
			dueDeadline("soon", 2, 7),
			dueDeadline("not-yet", 5, 3),
			dueDeadline("overdue", -2, 7),
			dueDeadline("today", 0, 7),
		}},
	}
	service := newTestService(repo)

	result, err := service.CheckDeadlines(context.Background())
	if err != nil {
		t.Fatalf("CheckDeadlines: %v", err)
	}

	if result.NotificationsCreated != 3 {
		t.Errorf("NotificationsCreated = %d, want 3", result.NotificationsCreated)
	}
	if len(repo.notifications.created) != 3 {
		t.Fatalf("created %d notifications, want 3", len(repo.notifications.created))
	}

	notified := strings.Join(repo.deadlines.notified, ",")
	if notified != "soon,overdue,today" {
		t.Errorf("notified = %q, want soon,overdue,today", notified)
	}

	for _, notif := range repo.notifications.created {
		switch notif.EmployeeID {
		case "emp-overdue":
			if !strings.Contains(notif.Body, "dépassée de 2 jour(s)") {
				t.Errorf("overdue body = %q", notif.Body)
			}
		case "emp-today":
			if !strings.Contains(notif.Body, "aujourd'hui") {
				t.Errorf("today body = %q", notif.Body)
			}
		case "emp-soon":
			if !strings.Contains(notif.Body, "dans 2 jour(s)") {
				t.Errorf("soon body = %q", notif.Body)
			}
		case "emp-not-yet":
			t.Error("deadline outside its notify window was notified")
		}
		if !strings.HasPrefix(notif.Title, "Échéance RH : ") {
			t.Errorf("title = %q", notif.Title)
		}
	}
}

func TestCheckDeadlinesNotifiesOnce(t *testing.T) {
	repo := &stubNotificationRepository{
		notifications: &stubNotifications{},
		deadlines: &stubDeadlines{due: []entity.DueDeadline{
			dueDeadline("soon", 1, 7),
		}},
	}
	service := newTestService(repo)

	if _, err := service.CheckDeadlines(context.Background()); err != nil {
		t.Fatalf("CheckDeadlines: %v", err)
	}

	// A notified deadline leaves the due set; a second run sees nothing.
	repo.deadlines.due = nil
	result, err := service.CheckDeadlines(context.Background())
	if err != nil {
		t.Fatalf("CheckDeadlines: %v", err)
	}
	if result.NotificationsCreated != 0 {
		t.Errorf("NotificationsCreated = %d, want 0 on second run", result.NotificationsCreated)
	}
	if len(repo.deadlines.notified) != 1 {
		t.Errorf("notified %d deadlines, want 1", len(repo.deadlines.notified))
	}
}

func TestCreateDeadlineDefaults(t *testing.T) {
	repo := &stubNotificationRepository{
		notifications: &stubNotifications{},
		deadlines:     &stubDeadlines{},
	}
	service := newTestService(repo)

	result, err := service.CreateDeadline(context.Background(), notification.CreateDeadlineRequest{
		EmployeeID: "emp-1",
		Type:       "fin de contrat",
		DueDate:    "2026-10-15",
	})
	if err != nil {
		t.Fatalf("CreateDeadline: %v", err)
	}

	if result.NotifyDaysBefore != 7 {
		t.Errorf("NotifyDaysBefore = %d, want the default 7", result.NotifyDaysBefore)
	}
	if result.Notified {
		t.Error("new deadline already marked notified")
	}
	if len(repo.deadlines.created) != 1 {
		t.Fatalf("created %d deadlines, want 1", len(repo.deadlines.created))
	}
}

func TestCreateDeadlineInvalidDate(t *testing.T) {
	repo := &stubNotificationRepository{
		notifications: &stubNotifications{},
		deadlines:     &stubDeadlines{},
	}
	service := newTestService(repo)

	_, err := service.CreateDeadline(context.Background(), notification.CreateDeadlineRequest{
		EmployeeID: "emp-1",
		Type:       "fin de contrat",
		DueDate:    "15/10/2026",
	})
	if err != notification.ErrInvalidDueDate {
		t.Errorf("CreateDeadline error = %v, want ErrInvalidDueDate", err)
	}
}
