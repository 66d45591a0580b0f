package handler

import (
	"errors"

	"skillchain/internal/delivery/http/dto"
	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/pkg/response"
	"skillchain/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CertificationHandler struct {
	uc usecase.CertificationUsecase
}

type verifyCertificationRequest struct {
	Name      string `json:"name"`
	Issuer    string `json:"issuer"`
	IssueDate string `json:"issueDate"`
	FileURL   string `json:"fileUrl"`
}

func NewCertificationHandler(uc usecase.CertificationUsecase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

func (h *CertificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/verify", h.Verify)
	r.Get("/", h.List)
}

func (h *CertificationHandler) Verify(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req verifyCertificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	cert, err := h.uc.VerifyCertification(c.Context(), userID, usecase.VerifyCertificationInput{
		Name:      req.Name,
		Issuer:    req.Issuer,
		IssueDate: req.IssueDate,
		FileURL:   req.FileURL,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Certification name is required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCertification(cert))
}

func (h *CertificationHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListCertifications(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCertifications(items))
}
