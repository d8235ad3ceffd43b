package notificationRepository

import (
	"context"

	"github.com/Abdouldav-cyber/chat/internal/api/notification"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *notificationsRepository) CreateNotification(ctx context.Context, notif entity.Notification) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          notif.ID,
		"employee_id": notif.EmployeeID,
		"title":       notif.Title,
		"body":        notif.Body,
		"is_read":     notif.IsRead,
		"created_at":  notif.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateNotification, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateNotification named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating notification")
		return err
	}

	return nil
}

func (r *notificationsRepository) GetNotificationsByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]entity.Notification, int, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var notifications []entity.Notification
	var total, unread int

	countArgsKV := map[string]interface{}{
		"employee_id": employeeID,
	}

	for _, q := range []struct {
		query string
		dest  *int
	}{
		{queryCountNotificationsByEmployee, &total},
		{queryCountUnreadByEmployee, &unread},
	} {
		countQuery, countArgs, err := sqlx.Named(q.query, countArgsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("CountNotifications named query preparation err")
			return nil, 0, 0, err
		}

		countQuery = r.q.Rebind(countQuery)

		if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(q.dest); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("CountNotifications execution err")
			return nil, 0, 0, err
		}
	}

	argsKV := map[string]interface{}{
		"employee_id": employeeID,
		"limit":       limit,
		"offset":      offset,
	}

	query, args, err := sqlx.Named(queryGetNotificationsByEmployee, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNotificationsByEmployee named query preparation err")
		return nil, 0, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &notifications, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNotificationsByEmployee execution err")
		return nil, 0, 0, err
	}

	return notifications, total, unread, nil
}

func (r *notificationsRepository) MarkRead(ctx context.Context, id string, employeeID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          id,
		"employee_id": employeeID,
	}

	query, args, err := sqlx.Named(queryMarkNotificationRead, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkRead named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkRead execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkRead rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("MarkRead no rows affected")
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationsRepository) MarkAllRead(ctx context.Context, employeeID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"employee_id": employeeID,
	}

	query, args, err := sqlx.Named(queryMarkAllNotificationsRead, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkAllRead named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkAllRead execution err")
		return err
	}

	return nil
}
