package requestRepository

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
		Requests:  &requestsRepository{q: sqlExecutor, log: r.log},
		Employees: &employeesRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Requests interface {
		CreateRequest(ctx context.Context, request entity.HRRequest) error
		GetRequestByID(ctx context.Context, id string) (entity.HRRequest, error)
		GetRequestsByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]entity.HRRequest, int, error)
		GetRequestsByStatus(ctx context.Context, status string, limit, offset int) ([]entity.HRRequest, int, error)
		UpdateRequestStatus(ctx context.Context, id string, status string, processedBy string, comment string) error
	}

	Employees interface {
		DecrementLeaveBalance(ctx context.Context, employeeID string, days float64) error
	}

	Commit   func() error
	Rollback func() error
}

type requestsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type employeesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
