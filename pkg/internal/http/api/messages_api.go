package api

import (
	"github.com/conclave-dev/conclave/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func (a *API) getConversations(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	conversations, err := a.srv.GetConversations(c.UserContext(), user)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(conversations)
}

func (a *API) sendMessage(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	var data struct {
		Recipient string `json:"recipient" validate:"required"`
		Body      string `json:"body" validate:"required,max=4096"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	message, err := a.srv.SendMessage(c.UserContext(), user, data.Recipient, data.Body)
	if err != nil {
		return apiError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

func (a *API) readMessages(c *fiber.Ctx) error {
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

	if err := a.srv.ReadMessages(c.UserContext(), data.IDs, user); err != nil {
		return apiError(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
