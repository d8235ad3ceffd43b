package middleware

import (
	jwtPkg "github.com/Abdouldav-cyber/chat/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewRoleMiddleware allows the request through only when the
// authenticated employee holds one of the given roles. It must run after
// the token middleware.
func (m *middleware) NewRoleMiddleware(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		employee, err := jwtPkg.GetEmployeeLoginData(ctx)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized, access token invalid or expired",
			})
		}

		for _, role := range roles {
			if employee.Role == role {
				return ctx.Next()
			}
		}

		m.log.WithFields(logrus.Fields{
			"employee_id": employee.ID,
			"role":        employee.Role,
			"path":        ctx.Path(),
		}).Warn("Insufficient role for request")

		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden, insufficient role",
		})
	}
}
