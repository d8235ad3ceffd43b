package notificationRepository

import (
	"context"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *deadlinesRepository) CreateDeadline(ctx context.Context, deadline entity.Deadline) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                 deadline.ID,
		"employee_id":        deadline.EmployeeID,
		"type":               deadline.Type,
		"due_date":           deadline.DueDate,
		"description":        deadline.Description,
		"notify_days_before": deadline.NotifyDaysBefore,
		"notified":           deadline.Notified,
		"created_at":         deadline.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateDeadline, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateDeadline named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating deadline")
		return err
	}

	return nil
}

func (r *deadlinesRepository) GetDeadlinesBetween(ctx context.Context, employeeID string, from, to time.Time) ([]entity.Deadline, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var deadlines []entity.Deadline

	listQuery := queryGetDeadlinesBetween
	argsKV := map[string]interface{}{
		"from": from,
		"to":   to,
	}
	if employeeID != "" {
		listQuery = queryGetDeadlinesBetweenByEmployee
		argsKV["employee_id"] = employeeID
	}

	query, args, err := sqlx.Named(listQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDeadlinesBetween named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &deadlines, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDeadlinesBetween execution err")
		return nil, err
	}

	return deadlines, nil
}

func (r *deadlinesRepository) GetDueDeadlines(ctx context.Context, until time.Time) ([]entity.DueDeadline, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var deadlines []entity.DueDeadline

	argsKV := map[string]interface{}{
		"until": until,
	}

	query, args, err := sqlx.Named(queryGetDueDeadlines, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDueDeadlines named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &deadlines, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDueDeadlines execution err")
		return nil, err
	}

	return deadlines, nil
}

func (r *deadlinesRepository) MarkNotified(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryMarkDeadlineNotified, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkNotified named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkNotified execution err")
		return err
	}

	return nil
}
