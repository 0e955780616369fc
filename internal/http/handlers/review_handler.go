package handlers

import (
	"github.com/gofiber/fiber/v2"

	"equisport/internal/services"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

func (h *ReviewHandler) Feed(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	items, err := h.Reviews.Feed(ctx)
	if err != nil {
		return storeError(c, "reviews.feed", err)
	}
	return c.JSON(items)
}
