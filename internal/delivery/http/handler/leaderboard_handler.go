package handler

import (
	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/pkg/response"
	"skillchain/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LeaderboardHandler struct {
	uc usecase.LeaderboardUsecase
}

func NewLeaderboardHandler(uc usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

func (h *LeaderboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Top)
}

func (h *LeaderboardHandler) Top(c fiber.Ctx) error {
	limit := fiber.Query[int](c, "limit")

	entries, err := h.uc.Top(c.Context(), limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, entries)
}
