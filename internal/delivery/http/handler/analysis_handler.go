package handler

import (
	"errors"

	"skillchain/internal/delivery/http/dto"
	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/pkg/response"
	"skillchain/internal/repository"
	"skillchain/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	code    usecase.AnalyzeCodeUsecase
	profile usecase.AnalyzeProfileUsecase
}

type analyzeCodeRequest struct {
	CodeSnippet string `json:"codeSnippet"`
	RepoURL     string `json:"repoUrl"`
	Language    string `json:"language"`
}

type analyzeProfileRequest struct {
	LinkedinURL string `json:"linkedinUrl"`
	GithubID    string `json:"githubId"`
}

func NewAnalysisHandler(code usecase.AnalyzeCodeUsecase, profile usecase.AnalyzeProfileUsecase) *AnalysisHandler {
	return &AnalysisHandler{code: code, profile: profile}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/code", h.AnalyzeCode)
	r.Post("/profile", h.AnalyzeProfile)
}

func (h *AnalysisHandler) AnalyzeCode(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req analyzeCodeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	assessment, err := h.code.AnalyzeCode(c.Context(), userID, usecase.AnalyzeCodeInput{
		CodeSnippet: req.CodeSnippet,
		RepoURL:     req.RepoURL,
		Language:    req.Language,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Code snippet is required", nil, err)
		}
		return mapAIGatewayError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, assessment)
}

func (h *AnalysisHandler) AnalyzeProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req analyzeProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	analysis, err := h.profile.AnalyzeProfile(c.Context(), userID, usecase.AnalyzeProfileInput{
		LinkedinURL: req.LinkedinURL,
		GithubID:    req.GithubID,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Provide a LinkedIn URL or GitHub ID", nil, err)
		}
		return mapAIGatewayError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUserAnalysis(analysis))
}

type UserDataHandler struct {
	profile  usecase.ProfileUsecase
	skills   usecase.SkillUsecase
	xp       *usecase.XPService
	analysis usecase.AnalyzeProfileUsecase
	projects usecase.AnalyzeCodeUsecase
}

func NewUserDataHandler(profile usecase.ProfileUsecase, skills usecase.SkillUsecase, xp *usecase.XPService, analysis usecase.AnalyzeProfileUsecase, projects usecase.AnalyzeCodeUsecase) *UserDataHandler {
	return &UserDataHandler{profile: profile, skills: skills, xp: xp, analysis: analysis, projects: projects}
}

func (h *UserDataHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/profile", h.GetMyProfile)
	r.Put("/me/profile", h.UpdateMyProfile)
	r.Get("/me/skills", h.ListMySkills)
	r.Post("/me/skills", h.AddSkill)
	r.Get("/me/xp", h.ListMyXP)
	r.Get("/me/analysis", h.GetMyAnalysis)
	r.Get("/me/projects", h.ListMyProjects)
}

type updateProfileRequest struct {
	Username       *string `json:"username"`
	FullName       *string `json:"full_name"`
	Bio            *string `json:"bio"`
	AvatarURL      *string `json:"avatar_url"`
	GithubUsername *string `json:"github_username"`
}

type addSkillRequest struct {
	SkillName        string `json:"skill_name"`
	SkillCategory    string `json:"skill_category"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

func (h *UserDataHandler) GetMyProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.profile.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(p))
}

func (h *UserDataHandler) UpdateMyProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.Username == nil && req.FullName == nil && req.Bio == nil && req.AvatarURL == nil && req.GithubUsername == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	p, err := h.profile.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		Username:       req.Username,
		FullName:       req.FullName,
		Bio:            req.Bio,
		AvatarURL:      req.AvatarURL,
		GithubUsername: req.GithubUsername,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(p))
}

func (h *UserDataHandler) ListMySkills(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.skills.ListSkills(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkills(items))
}

func (h *UserDataHandler) AddSkill(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.skills.AddSkill(c.Context(), userID, usecase.AddSkillInput{
		SkillName:        req.SkillName,
		SkillCategory:    req.SkillCategory,
		ProficiencyLevel: req.ProficiencyLevel,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusCreated, "created", dto.FromSkill(s))
}

func (h *UserDataHandler) ListMyXP(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := fiber.Query[int](c, "limit")
	items, err := h.xp.ListTransactions(c.Context(), userID, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromXPTransactions(items))
}

func (h *UserDataHandler) GetMyAnalysis(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	a, err := h.analysis.GetAnalysis(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "No analysis yet", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUserAnalysis(a))
}

func (h *UserDataHandler) ListMyProjects(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.projects.ListProjects(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProjects(items))
}
