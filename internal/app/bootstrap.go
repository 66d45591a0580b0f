package app

import (
	"fmt"
	"strings"

	"skillchain/internal/config"
	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/delivery/http/routes"
	v1 "skillchain/internal/delivery/http/routes/v1"
	"skillchain/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	app := New(c)

	cleanup := func() error {
		ws.SetDefaultHub(nil)
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())

	// Dashboard and marketing site are served from other origins.
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := routes.NewRegistry(v1.Deps{
		Config: c.Config,
		DB:     c.DB,
		Cache:  c.Cache,
		AI:     c.AI,
		GitHub: c.GitHub,
		Logger: c.Logger,
	})
	registry.Register(app)

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	app.Get("/ws", wsHandler.HandleEventsWS)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
