package api

import (
	"errors"

	"github.com/conclave-dev/conclave/pkg/internal/gateway"
	"github.com/conclave-dev/conclave/pkg/internal/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type API struct {
	srv     *services.Service
	gateway *gateway.Gateway
}

func MapAPIs(app *fiber.App, srv *services.Service, gw *gateway.Gateway) {
	a := &API{srv: srv, gateway: gw}

	api := app.Group("/api").Name("API")
	{
		api.Get("/feed", a.getFeed)
		api.Get("/search", a.search)

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/:postId", a.getPost)
			posts.Post("/", a.createPost)
			posts.Delete("/:postId", a.deletePost)
			posts.Get("/:postId/comments", a.getCommentTree)
			posts.Post("/:postId/comments", a.addComment)
			posts.Post("/:postId/react", a.reactPost)
			posts.Delete("/:postId/react", a.unreactPost)
		}

		comments := api.Group("/comments").Name("Comments API")
		{
			comments.Delete("/:commentId", a.deleteComment)
			comments.Post("/:commentId/react", a.reactComment)
			comments.Delete("/:commentId/react", a.unreactComment)
		}

		messages := api.Group("/messages").Name("Messages API")
		{
			messages.Get("/", a.getConversations)
			messages.Post("/", a.sendMessage)
			messages.Put("/read", a.readMessages)
		}

		notifications := api.Group("/notifications").Name("Notifications API")
		{
			notifications.Get("/", a.getNotifications)
			notifications.Put("/read", a.readNotifications)
		}

		accounts := api.Group("/accounts").Name("Accounts API")
		{
			accounts.Get("/:account", a.getAccount)
			accounts.Post("/:account/follow", a.follow)
			accounts.Delete("/:account/follow", a.unfollow)
			accounts.Delete("/:account/follower", a.removeFollower)
		}

		communities := api.Group("/communities").Name("Communities API")
		{
			communities.Get("/", a.listCommunities)
			communities.Get("/:community", a.getCommunity)
			communities.Post("/:community/join", a.joinCommunity)
			communities.Post("/:community/leave", a.leaveCommunity)
		}

		api.Use("/subscribe", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		api.Get("/subscribe", a.gateway.Handler())
	}
}

// apiError maps the service error taxonomy onto statuses. Anything
// unclassified is an internal failure and stays opaque to the caller.
func apiError(err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("An internal error occurred when serving request...")
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
}

// viewerID returns the authenticated viewer, if any.
func viewerID(c *fiber.Ctx) *uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return &id
	}
	return nil
}

// requireViewer is the single authentication gate for mutations.
func requireViewer(c *fiber.Ctx) (uint, error) {
	if id, ok := c.Locals("userID").(uint); ok {
		return id, nil
	}
	return 0, fiber.NewError(fiber.StatusUnauthorized, services.ErrUnauthenticated.Error())
}
