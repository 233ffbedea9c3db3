package api

import (
	"github.com/conclave-dev/conclave/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func (a *API) getNotifications(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	notifications, err := a.srv.GetNotifications(c.UserContext(), user, c.QueryBool("unread", true))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(notifications)
}

func (a *API) readNotifications(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	var data struct {
		IDs []uint `json:"ids" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := a.srv.ReadNotifications(c.UserContext(), data.IDs, user); err != nil {
		return apiError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
