package requestRepository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abdouldav-cyber/chat/internal/api/request"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *requestsRepository) CreateRequest(ctx context.Context, req entity.HRRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          req.ID,
		"employee_id": req.EmployeeID,
		"type":        req.Type,
		"description": req.Description,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
		"status":      req.Status,
		"created_at":  req.CreatedAt,
		"updated_at":  req.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateRequest, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateRequest named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating HR request")
		return err
	}

	return nil
}

func (r *requestsRepository) GetRequestByID(ctx context.Context, id string) (entity.HRRequest, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var req entity.HRRequest

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetRequestByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRequestByID named query preparation err")
		return entity.HRRequest{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetRequestByID no rows found")
			return entity.HRRequest{}, request.ErrRequestNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRequestByID execution err")
		return entity.HRRequest{}, err
	}

	return req, nil
}

func (r *requestsRepository) GetRequestsByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]entity.HRRequest, int, error) {
	return r.list(ctx, queryGetRequestsByEmployee, queryCountRequestsByEmployee, map[string]interface{}{
		"employee_id": employeeID,
	}, limit, offset)
}

func (r *requestsRepository) GetRequestsByStatus(ctx context.Context, status string, limit, offset int) ([]entity.HRRequest, int, error) {
	return r.list(ctx, queryGetRequestsByStatus, queryCountRequestsByStatus, map[string]interface{}{
		"status": status,
	}, limit, offset)
}

func (r *requestsRepository) list(ctx context.Context, listQuery, countQuery string, filter map[string]interface{}, limit, offset int) ([]entity.HRRequest, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var requests []entity.HRRequest
	var total int

	cq, countArgs, err := sqlx.Named(countQuery, filter)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountRequests named query preparation err")
		return nil, 0, err
	}

	cq = r.q.Rebind(cq)

	if err := r.q.QueryRowxContext(ctx, cq, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountRequests execution err")
		return nil, 0, err
	}

	argsKV := make(map[string]interface{}, len(filter)+2)
	for k, v := range filter {
		argsKV[k] = v
	}
	argsKV["limit"] = limit
	argsKV["offset"] = offset

	query, args, err := sqlx.Named(listQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListRequests named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &requests, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListRequests execution err")
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *requestsRepository) UpdateRequestStatus(ctx context.Context, id string, status string, processedBy string, comment string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           id,
		"status":       status,
		"processed_by": processedBy,
		"comment":      comment,
	}

	query, args, err := sqlx.Named(queryUpdateRequestStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRequestStatus named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRequestStatus execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRequestStatus rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("UpdateRequestStatus no rows affected")
		return request.ErrRequestNotFound
	}

	return nil
}

func (r *employeesRepository) DecrementLeaveBalance(ctx context.Context, employeeID string, days float64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":   employeeID,
		"days": days,
	}

	query, args, err := sqlx.Named(queryDecrementLeaveBalance, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DecrementLeaveBalance named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DecrementLeaveBalance execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DecrementLeaveBalance rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"employee_id": employeeID,
			"days":        days,
		}).Warn("DecrementLeaveBalance no rows affected")
		return request.ErrInsufficientBalance
	}

	return nil
}
