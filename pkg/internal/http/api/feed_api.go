package api

import (
	"github.com/conclave-dev/conclave/pkg/internal/store"
	"github.com/gofiber/fiber/v2"
)

func (a *API) getFeed(c *fiber.Ctx) error {
	filter := store.PostFilter{
		Community: c.Query("community"),
		Author:    c.Query("author"),
		Take:      c.QueryInt("take", 20),
		Offset:    c.QueryInt("offset", 0),
	}

	items, err := a.srv.GetFeed(c.UserContext(), c.Query("sort", "new"), filter, viewerID(c))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(fiber.Map{
		"count": len(items),
		"data":  items,
	})
}

func (a *API) search(c *fiber.Ctx) error {
	results, err := a.srv.Search(c.UserContext(), c.Query("probe"))
	if err != nil {
		return apiError(err)
	}

	return c.JSON(fiber.Map{
		"count": len(results),
		"data":  results,
	})
}
