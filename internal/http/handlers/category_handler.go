package handlers

import (
	"github.com/gofiber/fiber/v2"

	"equisport/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	cats, err := h.Catalog.ListCategories(ctx)
	if err != nil {
		return storeError(c, "categories.list", err)
	}
	return c.JSON(cats)
}
