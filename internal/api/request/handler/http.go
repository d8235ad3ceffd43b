package requestHandler

import (
	requestService "github.com/Abdouldav-cyber/chat/internal/api/request/service"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/Abdouldav-cyber/chat/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RequestHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	requestService requestService.IRequestService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs requestService.IRequestService,
) *RequestHandler {
	return &RequestHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		requestService: rs,
	}
}

func (h *RequestHandler) Start(srv fiber.Router) {
	requests := srv.Group("/requests", h.middleware.NewTokenMiddleware)

	requests.Post("/", h.CreateRequest)
	requests.Get("", h.GetMyRequests)
	requests.Put("/:id/cancel", h.CancelRequest)

	managerOnly := h.middleware.NewRoleMiddleware(entity.RoleManager, entity.RoleAdmin)
	requests.Get("/pending", managerOnly, h.GetPendingRequests)
	requests.Put("/:id/process", managerOnly, h.ProcessRequest)
}
