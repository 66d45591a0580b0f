package v1

import (
	"log"

	"skillchain/internal/config"
	"skillchain/internal/database"
	"skillchain/internal/delivery/http/handler"
	"skillchain/internal/delivery/http/middleware"
	"skillchain/internal/infrastructure/ai"
	"skillchain/internal/infrastructure/cache"
	"skillchain/internal/infrastructure/github"
	"skillchain/internal/pkg/jwt"
	"skillchain/internal/repository"
	"skillchain/internal/usecase"
	ucauth "skillchain/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	AI     ai.Client
	GitHub github.Client
	Logger *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	profileRepo := repository.NewPostgresProfileRepository(d.DB)
	skillRepo := repository.NewPostgresSkillRepository(d.DB)
	projectRepo := repository.NewPostgresProjectRepository(d.DB)
	credentialRepo := repository.NewPostgresCredentialRepository(d.DB)
	xpRepo := repository.NewPostgresXPRepository(d.DB)
	analysisRepo := repository.NewPostgresAnalysisRepository(d.DB)
	interviewRepo := repository.NewPostgresInterviewRepository(d.DB)
	certificationRepo := repository.NewPostgresCertificationRepository(d.DB)

	authSvc := ucauth.NewService(userRepo, profileRepo, d.Logger)
	authUC := usecase.NewAuthUsecase(authSvc, userRepo, jwtSvc)

	codeUC := usecase.NewAnalyzeCodeUsecase(d.AI, projectRepo, xpRepo, d.Logger)
	profileAnalysisUC := usecase.NewAnalyzeProfileUsecase(d.AI, d.GitHub, analysisRepo, d.Logger)
	interviewUC := usecase.NewInterviewUsecase(d.AI, interviewRepo)
	mintUC := usecase.NewMintUsecase(credentialRepo, xpRepo, profileRepo, d.Cache, d.Logger)
	certificationUC := usecase.NewCertificationUsecase(certificationRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	xpUC := usecase.NewXPUsecase(xpRepo)
	leaderboardUC := usecase.NewLeaderboardUsecase(profileRepo, d.Cache, d.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	analysisHandler := handler.NewAnalysisHandler(codeUC, profileAnalysisUC)
	interviewHandler := handler.NewInterviewHandler(interviewUC)
	credentialHandler := handler.NewCredentialHandler(mintUC)
	certificationHandler := handler.NewCertificationHandler(certificationUC)
	userDataHandler := handler.NewUserDataHandler(profileUC, skillUC, xpUC, profileAnalysisUC, codeUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// The leaderboard backs the public marketing page.
	leaderboardHandler.RegisterRoutes(r.Group("/leaderboard"))

	protected := r.Group("", authMw.Middleware())

	analysisHandler.RegisterRoutes(protected.Group("/analysis"))
	interviewHandler.RegisterRoutes(protected.Group("/interviews"))
	credentialHandler.RegisterRoutes(protected.Group("/credentials"))
	certificationHandler.RegisterRoutes(protected.Group("/certifications"))
	userDataHandler.RegisterRoutes(protected.Group("/users"))
	skillHandler.RegisterRoutes(protected.Group("/skills"))
}
