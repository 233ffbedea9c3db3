package api

import (
	"github.com/gofiber/fiber/v2"
)

func (a *API) listCommunities(c *fiber.Ctx) error {
	communities, err := a.srv.ListCommunities(c.UserContext())
	if err != nil {
		return apiError(err)
	}

	return c.JSON(communities)
}

func (a *API) getCommunity(c *fiber.Ctx) error {
	community, err := a.srv.GetCommunity(c.UserContext(), c.Params("community"))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(community)
}

func (a *API) joinCommunity(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	community, err := a.srv.JoinCommunity(c.UserContext(), user, c.Params("community"))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(community)
}

func (a *API) leaveCommunity(c *fiber.Ctx) error {
	user, err := requireViewer(c)
	if err != nil {
		return err
	}

	community, err := a.srv.LeaveCommunity(c.UserContext(), user, c.Params("community"))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(community)
}
