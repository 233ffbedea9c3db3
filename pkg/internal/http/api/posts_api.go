package api

import (
	"github.com/conclave-dev/conclave/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func (a *API) getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	item, err := a.srv.GetPost(c.UserContext(), uint(id), viewerID(c))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(item)
}

func (a *API) createPost(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	var data struct {
		Community string         `json:"community" validate:"required"`
		Type      string         `json:"type" validate:"required"`
		Body      map[string]any `json:"body" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := a.srv.CreatePost(c.UserContext(), user, data.Community, data.Type, data.Body)
	if err != nil {
		return apiError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (a *API) deletePost(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	if err := a.srv.DeletePost(c.UserContext(), uint(id), user); err != nil {
		return apiError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
