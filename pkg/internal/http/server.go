package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jsoniter "github.com/json-iterator/go"
	pkg "github.com/plumepress/plume/pkg/internal"
	"github.com/plumepress/plume/pkg/internal/auth"
	"github.com/plumepress/plume/pkg/internal/http/admin"
	"github.com/plumepress/plume/pkg/internal/http/api"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	*fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Plume",
		AppName:               "Plume v" + pkg.AppVersion,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	})

	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Authorization, Content-Type, X-Admin-Secret",
	}))

	app.Use(auth.ContextMiddleware)

	api.MapControllers(app, "")
	admin.MapControllers(app, "/admin")

	return &App{app}
}

func (v *App) Listen() {
	if err := v.App.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting HTTP server.")
	}
}
