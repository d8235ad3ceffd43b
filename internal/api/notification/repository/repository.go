package notificationRepository

import (
	"time"

	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Notifications: &notificationsRepository{q: sqlExecutor, log: r.log},
		Deadlines:     &deadlinesRepository{q: sqlExecutor, log: r.log},
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Client struct {
	Notifications interface {
		CreateNotification(ctx context.Context, notification entity.Notification) error
		GetNotificationsByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]entity.Notification, int, int, error)
		MarkRead(ctx context.Context, id string, employeeID string) error
		MarkAllRead(ctx context.Context, employeeID string) error
	}

	Deadlines interface {
		CreateDeadline(ctx context.Context, deadline entity.Deadline) error
		GetDeadlinesBetween(ctx context.Context, employeeID string, from, to time.Time) ([]entity.Deadline, error)
		GetDueDeadlines(ctx context.Context, until time.Time) ([]entity.DueDeadline, error)
		MarkNotified(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type notificationsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type deadlinesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
