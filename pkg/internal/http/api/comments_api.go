package api

import (
	"github.com/conclave-dev/conclave/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func (a *API) getCommentTree(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	tree, err := a.srv.GetCommentTree(c.UserContext(), uint(id), viewerID(c))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(tree)
}

func (a *API) addComment(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	var data struct {
		Message  string `json:"message" validate:"required,max=4096"`
		ParentID *uint  `json:"parent_id"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := a.srv.AddComment(c.UserContext(), user, uint(id), data.ParentID, data.Message)
	if err != nil {
		return apiError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (a *API) deleteComment(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("commentId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	if err := a.srv.DeleteComment(c.UserContext(), uint(id), user); err != nil {
		return apiError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
