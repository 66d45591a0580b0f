package handler

import (
	"errors"

	"skillchain/internal/delivery/http/dto"
	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/pkg/response"
	"skillchain/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type endorseSkillRequest struct {
	Message string `json:"message"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/endorse", h.Endorse)
}

func (h *SkillHandler) Endorse(c fiber.Ctx) error {
	endorserID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	skillID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	var req endorseSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	e, err := h.uc.EndorseSkill(c.Context(), endorserID, skillID, usecase.EndorseSkillInput{Message: req.Message})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSkillNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
		case errors.Is(err, usecase.ErrSelfEndorsement):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "You cannot endorse your own skill", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusCreated, "created", dto.FromEndorsement(e))
}
