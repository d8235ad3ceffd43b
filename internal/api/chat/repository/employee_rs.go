package chatRepository

import (
	"context"
	"database/sql"
	"errors"

	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

var ErrEmployeeNotFound = errors.New("employee not found")

func (r *employeesRepository) GetLeaveBalance(ctx context.Context, employeeID string) (float64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var balance float64

	argsKV := map[string]interface{}{
		"id": employeeID,
	}

	query, args, err := sqlx.Named(queryGetLeaveBalance, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLeaveBalance named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"employee_id": employeeID,
			}).Warn("GetLeaveBalance no rows found")
			return 0, ErrEmployeeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLeaveBalance execution err")
		return 0, err
	}

	return balance, nil
}
