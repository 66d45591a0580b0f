package app

import (
	"context"
	"log"
	"os"
	"time"

	"skillchain/internal/config"
	"skillchain/internal/database"
	dbpostgres "skillchain/internal/database/postgres"
	"skillchain/internal/infrastructure/ai"
	"skillchain/internal/infrastructure/cache"
	"skillchain/internal/infrastructure/github"
	"skillchain/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	AI     ai.Client
	GitHub github.Client
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub(logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		AI:     ai.NewGatewayClient(cfg.AI, logger),
		GitHub: github.NewClient(cfg.GitHub.BaseURL, logger),
		Hub:    hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Printf("redis close error | error=%v", err)
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
