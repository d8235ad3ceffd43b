package notification

import "github.com/Abdouldav-cyber/chat/pkg/response"

var (
	ErrNotificationNotFound = response.NewError(404, "notification not found")
	ErrCreateNotification   = response.NewError(500, "failed to create notification")
	ErrInvalidDueDate       = response.NewError(400, "invalid due date")
	ErrCreateDeadline       = response.NewError(500, "failed to create deadline")
	ErrCheckDeadlines       = response.NewError(500, "failed to check deadlines")
)
