package chatRepository

import (
	"context"

	"github.com/Abdouldav-cyber/chat/internal/api/chat"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *conversationsRepository) CreateConversation(ctx context.Context, conversation entity.Conversation) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          conversation.ID,
		"employee_id": conversation.EmployeeID,
		"session_id":  conversation.SessionID,
		"message":     conversation.Message,
		"intent":      conversation.Intent,
		"response":    conversation.Response,
		"confidence":  conversation.Confidence,
		"entities":    conversation.Entities,
		"created_at":  conversation.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateConversation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateConversation named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating conversation")
		return err
	}

	return nil
}

func (r *conversationsRepository) GetConversationsBySession(ctx context.Context, sessionID string, limit, offset int) ([]entity.Conversation, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var conversations []entity.Conversation
	var total int

	countArgsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	countQuery, countArgs, err := sqlx.Named(queryCountConversationsBySession, countArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountConversationsBySession named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountConversationsBySession execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"session_id": sessionID,
		"limit":      limit,
		"offset":     offset,
	}

	query, args, err := sqlx.Named(queryGetConversationsBySession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetConversationsBySession named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &conversations, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetConversationsBySession execution err")
		return nil, 0, err
	}

	return conversations, total, nil
}

func (r *conversationsRepository) SetFeedback(ctx context.Context, id string, feedback int) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":       id,
		"feedback": feedback,
	}

	query, args, err := sqlx.Named(querySetConversationFeedback, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetFeedback named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetFeedback execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetFeedback rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("SetFeedback no rows affected")
		return chat.ErrConversationNotFound
	}

	return nil
}
