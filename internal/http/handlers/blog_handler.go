package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"equisport/internal/domain"
	applog "equisport/internal/log"
	"equisport/internal/services"
	"equisport/internal/validate"
)

type BlogHandler struct {
	Blog *services.BlogService
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	posts, err := h.Blog.ListPosts(ctx)
	if err != nil {
		return storeError(c, "blog.list", err)
	}
	return c.JSON(posts)
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "Invalid blog post id")
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	post, err := h.Blog.GetPost(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		// Existing clients match on this bare shape, unlike the
		// {success,message} body every other not-found uses.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Blog post not found"})
	}
	if err != nil {
		return storeError(c, "blog.get", err)
	}
	return c.JSON(post)
}
