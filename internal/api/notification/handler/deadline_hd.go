package notificationHandler

import (
	"errors"
	"strconv"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/notification"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/Abdouldav-cyber/chat/pkg/handlerUtil"
	jwtPkg "github.com/Abdouldav-cyber/chat/pkg/jwt"
	"github.com/Abdouldav-cyber/chat/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *NotificationHandler) CreateDeadline(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create deadline request")

	var req notification.CreateDeadlineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("invalid request body"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.notificationService.CreateDeadline(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_deadline")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
	}
}

func (h *NotificationHandler) ListDeadlines(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list deadlines request")

	employee, err := jwtPkg.GetEmployeeLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	// Employees only see their own deadlines. Managers may scope to one
	// employee or, with no filter, list everyone's.
	employeeID := employee.ID
	if employee.Role == entity.RoleManager || employee.Role == entity.RoleAdmin {
		employeeID = ctx.Query("employee_id")
	}

	period, err := strconv.Atoi(ctx.Query("period", "30"))
	if err != nil {
		period = 30
	}

	result, err := h.notificationService.ListDeadlines(c, employeeID, period)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_deadlines")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *NotificationHandler) CheckDeadlines(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing deadline check request")

	result, err := h.notificationService.CheckDeadlines(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "check_deadlines")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
