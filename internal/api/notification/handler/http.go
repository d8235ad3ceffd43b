package notificationHandler

import (
	notificationService "github.com/Abdouldav-cyber/chat/internal/api/notification/service"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/Abdouldav-cyber/chat/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type NotificationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	notificationService notificationService.INotificationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ns notificationService.INotificationService,
) *NotificationHandler {
	return &NotificationHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		notificationService: ns,
	}
}

func (h *NotificationHandler) Start(srv fiber.Router) {
	notifications := srv.Group("/notifications", h.middleware.NewTokenMiddleware)

	notifications.Get("", h.GetNotifications)
	notifications.Put("/read-all", h.MarkAllRead)
	notifications.Put("/:id/read", h.MarkRead)

	deadlines := srv.Group("/deadlines", h.middleware.NewTokenMiddleware)

	deadlines.Get("", h.ListDeadlines)

	managerOnly := h.middleware.NewRoleMiddleware(entity.RoleManager, entity.RoleAdmin)
	deadlines.Post("/", managerOnly, h.CreateDeadline)
	deadlines.Post("/check", managerOnly, h.CheckDeadlines)
}
