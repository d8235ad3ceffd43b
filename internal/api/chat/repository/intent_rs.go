package chatRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/chat"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func (r *intentsRepository) GetActiveIntents(ctx context.Context) ([]entity.Intent, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var intents []entity.Intent

	query := r.q.Rebind(queryGetActiveIntents)

	if err := r.q.SelectContext(ctx, &intents, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActiveIntents execution err")
		return nil, err
	}

	return intents, nil
}

func (r *intentsRepository) GetAllIntents(ctx context.Context) ([]entity.Intent, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var intents []entity.Intent

	query := r.q.Rebind(queryGetAllIntents)

	if err := r.q.SelectContext(ctx, &intents, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllIntents execution err")
		return nil, err
	}

	return intents, nil
}

func (r *intentsRepository) GetIntentByName(ctx context.Context, name string) (entity.Intent, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var intent entity.Intent

	argsKV := map[string]interface{}{
		"name": name,
	}

	query, args, err := sqlx.Named(queryGetIntentByName, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIntentByName named query preparation err")
		return entity.Intent{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&intent); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       name,
			}).Warn("GetIntentByName no rows found")
			return entity.Intent{}, chat.ErrIntentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIntentByName execution err")
		return entity.Intent{}, err
	}

	return intent, nil
}

func (r *intentsRepository) CreateIntent(ctx context.Context, intent entity.Intent) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         intent.ID,
		"name":       intent.Name,
		"category":   intent.Category,
		"response":   intent.Response,
		"keywords":   pq.StringArray(intent.Keywords),
		"priority":   intent.Priority,
		"is_active":  intent.IsActive,
		"created_at": intent.CreatedAt,
		"updated_at": intent.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateIntent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateIntent named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       intent.Name,
			}).Warn("CreateIntent duplicate name")
			return chat.ErrIntentAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateIntent execution err")
		return err
	}

	return nil
}

func (r *intentsRepository) UpdateIntent(ctx context.Context, intent entity.Intent) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"name":       intent.Name,
		"category":   intent.Category,
		"response":   intent.Response,
		"keywords":   pq.StringArray(intent.Keywords),
		"priority":   intent.Priority,
		"is_active":  intent.IsActive,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateIntent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIntent named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIntent execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIntent rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       intent.Name,
		}).Warn("UpdateIntent no rows affected")
		return chat.ErrIntentNotFound
	}

	return nil
}

func (r *intentsRepository) DeactivateIntent(ctx context.Context, name string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"name": name,
	}

	query, args, err := sqlx.Named(queryDeactivateIntent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeactivateIntent named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeactivateIntent execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeactivateIntent rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
		}).Warn("DeactivateIntent no rows affected")
		return chat.ErrIntentNotFound
	}

	return nil
}
