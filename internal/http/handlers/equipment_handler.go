package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"equisport/internal/domain"
	applog "equisport/internal/log"
	"equisport/internal/services"
	"equisport/internal/validate"
)

type EquipmentHandler struct {
	Catalog *services.CatalogService
}

func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	items, err := h.Catalog.ListEquipment(ctx)
	if err != nil {
		return storeError(c, "equipment.list", err)
	}
	return c.JSON(items)
}

func (h *EquipmentHandler) ForHome(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	items, err := h.Catalog.EquipmentForHome(ctx)
	if err != nil {
		return storeError(c, "equipment.for_home", err)
	}
	return c.JSON(items)
}

func (h *EquipmentHandler) Sorted(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	items, err := h.Catalog.SortedEquipment(ctx)
	if err != nil {
		return storeError(c, "equipment.sorted", err)
	}
	return c.JSON(items)
}

// ByOwner filters on the email query param as a literal equality; a
// missing param queries for the empty string rather than everything.
func (h *EquipmentHandler) ByOwner(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	items, err := h.Catalog.EquipmentByOwner(ctx, c.Query("email"))
	if err != nil {
		return storeError(c, "equipment.filter", err)
	}
	return c.JSON(items)
}

func (h *EquipmentHandler) ByCategory(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	items, err := h.Catalog.EquipmentByCategory(ctx, c.Params("category"))
	if err != nil {
		return storeError(c, "equipment.by_category", err)
	}
	return c.JSON(items)
}

func (h *EquipmentHandler) Search(c *fiber.Ctx) error {
	q, ok := validate.Query(c.Query("q"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q"})
		return jsonError(c, fiber.StatusBadRequest, "Search query is required")
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	items, err := h.Catalog.SearchEquipment(ctx, q)
	if err != nil {
		return storeError(c, "equipment.search", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *EquipmentHandler) Discounted(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	items, err := h.Catalog.DiscountedEquipment(ctx)
	if err != nil {
		return storeError(c, "equipment.discounted", err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(items), "data": items})
}

func (h *EquipmentHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "Invalid equipment id")
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	item, err := h.Catalog.GetEquipment(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "Equipment not found")
	}
	if err != nil {
		return storeError(c, "equipment.get", err)
	}
	return c.JSON(item)
}

// Create inserts the body verbatim. Field types are not validated here;
// the store's own coercion governs malformed values.
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var doc bson.M
	if err := c.BodyParser(&doc); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	res, err := h.Catalog.CreateEquipment(ctx, doc)
	if err != nil {
		return storeError(c, "equipment.create", err)
	}
	applog.Info(c, "equipment.created", map[string]any{"id": res.InsertedID})
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": res.InsertedID})
}

func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "Invalid equipment id")
	}
	var fields bson.M
	if err := c.BodyParser(&fields); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	res, err := h.Catalog.UpsertEquipment(ctx, id, fields)
	if err != nil {
		return storeError(c, "equipment.update", err)
	}
	return c.JSON(fiber.Map{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
		"upsertedCount": res.UpsertedCount,
		"upsertedId":    res.UpsertedID,
	})
}

func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "Invalid equipment id")
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	res, err := h.Catalog.DeleteEquipment(ctx, id)
	if err != nil {
		return storeError(c, "equipment.delete", err)
	}
	// Deleting an absent id succeeds with deletedCount 0.
	return c.JSON(fiber.Map{"acknowledged": true, "deletedCount": res.DeletedCount})
}
