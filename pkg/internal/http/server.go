package http

import (
	"strings"

	"github.com/conclave-dev/conclave/pkg/internal/gateway"
	"github.com/conclave-dev/conclave/pkg/internal/http/api"
	"github.com/conclave-dev/conclave/pkg/internal/security"
	"github.com/conclave-dev/conclave/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer(srv *services.Service, gw *gateway.Gateway, verifier security.Verifier) *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Conclave",
		AppName:               "Conclave",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             4 * 1024 * 1024,
	})

	app.Use(authMiddleware(verifier))

	api.MapAPIs(app, srv, gw)

	return &App{app}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil &&
		!strings.Contains(err.Error(), "closed") {
		log.Fatal().Err(err).Msg("An error occurred when starting the http server.")
	}
}

func (v *App) Shutdown() error {
	return v.app.Shutdown()
}
