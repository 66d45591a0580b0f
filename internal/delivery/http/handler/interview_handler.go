package handler

import (
	"errors"

	"skillchain/internal/delivery/http/dto"
	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/pkg/response"
	"skillchain/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InterviewHandler struct {
	uc usecase.InterviewUsecase
}

type evaluateAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

func NewInterviewHandler(uc usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.EvaluateAnswer)
	r.Get("/", h.List)
}

func (h *InterviewHandler) EvaluateAnswer(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req evaluateAnswerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	mi, err := h.uc.EvaluateAnswer(c.Context(), userID, usecase.EvaluateAnswerInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Question and answer are required", nil, err)
		}
		return mapAIGatewayError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromInterview(mi))
}

func (h *InterviewHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListInterviews(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromInterviews(items))
}
