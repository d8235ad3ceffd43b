package authRepository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abdouldav-cyber/chat/internal/api/auth"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func (r *employeesRepository) CreateEmployee(ctx context.Context, employee entity.Employee) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            employee.ID,
		"email":         employee.Email,
		"full_name":     employee.FullName,
		"password":      employee.Password,
		"role":          employee.Role,
		"department":    employee.Department,
		"leave_balance": employee.LeaveBalance,
		"hire_date":     employee.HireDate,
		"created_at":    employee.CreatedAt,
		"updated_at":    employee.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateEmployee, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateEmployee named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      employee.Email,
			}).Warn("CreateEmployee duplicate email")
			return auth.ErrEmailAlreadyInUse
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating employee")
		return err
	}

	return nil
}

func (r *employeesRepository) GetEmployeeByID(ctx context.Context, id string) (entity.Employee, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var employee entity.Employee

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetEmployeeByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEmployeeByID named query preparation err")
		return entity.Employee{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&employee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetEmployeeByID no rows found")
			return entity.Employee{}, auth.ErrEmployeeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEmployeeByID execution err")
		return entity.Employee{}, err
	}

	return employee, nil
}

func (r *employeesRepository) GetEmployeeByEmail(ctx context.Context, email string) (entity.Employee, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var employee entity.Employee

	argsKV := map[string]interface{}{
		"email": email,
	}

	query, args, err := sqlx.Named(queryGetEmployeeByEmail, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEmployeeByEmail named query preparation err")
		return entity.Employee{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&employee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetEmployeeByEmail no rows found")
			return entity.Employee{}, auth.ErrEmployeeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEmployeeByEmail execution err")
		return entity.Employee{}, err
	}

	return employee, nil
}

func (r *employeesRepository) UpdatePassword(ctx context.Context, id string, hashedPassword string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":       id,
		"password": hashedPassword,
	}

	query, args, err := sqlx.Named(queryUpdatePassword, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePassword named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePassword execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePassword rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("UpdatePassword no rows affected")
		return auth.ErrEmployeeNotFound
	}

	return nil
}
