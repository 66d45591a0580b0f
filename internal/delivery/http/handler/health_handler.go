package handler

import (
	"context"
	"time"

	"skillchain/internal/database"
	"skillchain/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]string{"database": "ok"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "unreachable"
			return response.Error(c, fiber.StatusServiceUnavailable, "degraded", data)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
