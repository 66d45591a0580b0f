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

type CredentialHandler struct {
	uc usecase.MintUsecase
}

type mintRequest struct {
	SkillID       *uuid.UUID `json:"skillId"`
	SkillName     string     `json:"skillName"`
	SkillCategory string     `json:"skillCategory"`
	Level         int        `json:"level"`
	AIScore       float64    `json:"aiScore"`
}

type mintResponseBody struct {
	Success        bool                   `json:"success"`
	NFT            dto.CredentialResponse `json:"nft"`
	XPAwarded      int                    `json:"xpAwarded"`
	Message        string                 `json:"message"`
	PolygonScanURL string                 `json:"polygonScanUrl"`
}

func NewCredentialHandler(uc usecase.MintUsecase) *CredentialHandler {
	return &CredentialHandler{uc: uc}
}

func (h *CredentialHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/mint", h.Mint)
	r.Get("/", h.List)
}

func (h *CredentialHandler) Mint(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req mintRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Mint(c.Context(), userID, usecase.MintInput{
		SkillID:       req.SkillID,
		SkillName:     req.SkillName,
		SkillCategory: req.SkillCategory,
		Level:         req.Level,
		AIScore:       req.AIScore,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Skill name and category are required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	body := mintResponseBody{
		Success:        true,
		NFT:            dto.FromCredential(res.Credential),
		XPAwarded:      res.XPAwarded,
		Message:        "NFT credential minted successfully!",
		PolygonScanURL: res.PolygonScanURL,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, body)
}

func (h *CredentialHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListCredentials(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCredentials(items))
}
