package chatRepository

import (
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
		Intents:       &intentsRepository{q: sqlExecutor, log: r.log},
		Conversations: &conversationsRepository{q: sqlExecutor, log: r.log},
		Employees:     &employeesRepository{q: sqlExecutor, log: r.log},
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Client struct {
	Intents interface {
		GetActiveIntents(ctx context.Context) ([]entity.Intent, error)
		GetAllIntents(ctx context.Context) ([]entity.Intent, error)
		GetIntentByName(ctx context.Context, name string) (entity.Intent, error)
		CreateIntent(ctx context.Context, intent entity.Intent) error
		UpdateIntent(ctx context.Context, intent entity.Intent) error
		DeactivateIntent(ctx context.Context, name string) error
	}

	Conversations interface {
		CreateConversation(ctx context.Context, conversation entity.Conversation) error
		GetConversationsBySession(ctx context.Context, sessionID string, limit, offset int) ([]entity.Conversation, int, error)
		SetFeedback(ctx context.Context, id string, feedback int) error
	}

	Employees interface {
		GetLeaveBalance(ctx context.Context, employeeID string) (float64, error)
	}

	Commit   func() error
	Rollback func() error
}

type intentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type conversationsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type employeesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
