package chatHandler

import (
	chatService "github.com/Abdouldav-cyber/chat/internal/api/chat/service"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/Abdouldav-cyber/chat/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")

	// Anonymous chat is allowed; an access token only adds personalization.
	chat.Post("/", h.middleware.NewRateLimiter, h.Chat)
	chat.Post("/feedback", h.Feedback)
	chat.Get("/history/:session_id", h.middleware.NewTokenMiddleware, h.GetSessionHistory)

	intents := srv.Group("/intents")

	intents.Get("", h.middleware.NewTokenMiddleware, h.GetAllIntents)

	adminOnly := h.middleware.NewRoleMiddleware(entity.RoleManager, entity.RoleAdmin)
	intents.Post("/", h.middleware.NewTokenMiddleware, adminOnly, h.CreateIntent)
	intents.Put("/:name", h.middleware.NewTokenMiddleware, adminOnly, h.UpdateIntent)
	intents.Delete("/:name", h.middleware.NewTokenMiddleware, adminOnly, h.DeleteIntent)
	intents.Post("/reload", h.middleware.NewTokenMiddleware, adminOnly, h.ReloadIntents)
}
