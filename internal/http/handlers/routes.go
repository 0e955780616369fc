package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Register wires the full route table. Static segments under /equipments
// are registered before /:id on purpose: the parameterized route would
// otherwise swallow /search, /filter, and friends as identifiers.
func Register(app *fiber.App, d *Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("EquiSport Server")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	eq := app.Group("/equipments")
	eq.Get("/filter", d.EquipmentHandler.ByOwner)
	eq.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), d.EquipmentHandler.Search)
	eq.Get("/discounted", d.EquipmentHandler.Discounted)
	eq.Get("/sorted", d.EquipmentHandler.Sorted)
	eq.Get("/for-home", d.EquipmentHandler.ForHome)
	eq.Get("/category/:category", d.EquipmentHandler.ByCategory)
	eq.Get("/:id", d.EquipmentHandler.Get)
	eq.Get("/", d.EquipmentHandler.List)
	eq.Post("/", d.EquipmentHandler.Create)
	eq.Put("/:id", d.EquipmentHandler.Update)
	eq.Delete("/:id", d.EquipmentHandler.Delete)

	app.Get("/categories", d.CategoryHandler.List)
	app.Get("/reviews", d.ReviewHandler.Feed)
	app.Get("/blog-posts", d.BlogHandler.List)
	app.Get("/blog-posts/:id", d.BlogHandler.Get)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})
}
