package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "equisport/internal/log"
)

const storeTimeout = 10 * time.Second

// opCtx bounds a single store round trip; a stuck store call fails this
// request instead of pinning a connection forever.
func opCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), storeTimeout)
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

// storeError logs the failure with detail server-side and answers with a
// generic 500; internal error text never reaches the client.
func storeError(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)
	return jsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
