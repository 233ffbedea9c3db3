package api

import (
	"github.com/gofiber/fiber/v2"
)

func (a *API) getAccount(c *fiber.Ctx) error {
	profile, err := a.srv.GetAccount(c.UserContext(), c.Params("account"))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(profile)
}

func (a *API) follow(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	followed, err := a.srv.Follow(c.UserContext(), user, c.Params("account"))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(followed)
}

func (a *API) unfollow(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	unfollowed, err := a.srv.Unfollow(c.UserContext(), user, c.Params("account"))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(unfollowed)
}

func (a *API) removeFollower(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	removed, err := a.srv.RemoveFollower(c.UserContext(), user, c.Params("account"))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(removed)
}
