package api

import (
	"github.com/conclave-dev/conclave/pkg/internal/http/exts"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (a *API) react(c *fiber.Ctx, param string, subjectKind models.ReactionSubjectKind) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt(param, 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subject id")
	}

	var data struct {
		Kind models.ReactionKind `json:"kind" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	reaction, err := a.srv.React(c.UserContext(), user, uint(id), subjectKind, data.Kind)
	if err != nil {
		return apiError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(reaction)
}

func (a *API) unreact(c *fiber.Ctx, param string, subjectKind models.ReactionSubjectKind) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt(param, 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subject id")
	}

	if err := a.srv.Unreact(c.UserContext(), user, uint(id), subjectKind); err != nil {
		return apiError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (a *API) reactPost(c *fiber.Ctx) error {
	return a.react(c, "postId", models.ReactionSubjectPost)
}

func (a *API) unreactPost(c *fiber.Ctx) error {
	return a.unreact(c, "postId", models.ReactionSubjectPost)
}

func (a *API) reactComment(c *fiber.Ctx) error {
	return a.react(c, "commentId", models.ReactionSubjectComment)
}

func (a *API) unreactComment(c *fiber.Ctx) error {
	return a.unreact(c, "commentId", models.ReactionSubjectComment)
}
