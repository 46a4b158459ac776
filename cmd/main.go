package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/Hafizirfan96/spu-backend/internal/app"
	"github.com/Hafizirfan96/spu-backend/internal/config"
	"github.com/Hafizirfan96/spu-backend/internal/controllers"
	"github.com/Hafizirfan96/spu-backend/internal/middleware"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/routes"
	"github.com/Hafizirfan96/spu-backend/internal/seeding"
	"github.com/Hafizirfan96/spu-backend/internal/services"
	"github.com/Hafizirfan96/spu-backend/internal/storage"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

const appName = "spu-backend"

func main() {
	utils.InitLogger(appName)
	cfg := config.LoadConfig(appName)

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	if cfg.SeedOnStart {
		if err := seeding.SeedCatalog(context.Background(), application.DB); err != nil {
			utils.Logger.Fatal("Failed to seed catalog:", err)
		}
	}

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	applicantRepo := repositories.NewApplicantRepository(application.DB)
	qualificationRepo := repositories.NewQualificationRepository(application.DB)
	experienceRepo := repositories.NewExperienceRepository(application.DB)
	catalogRepo := repositories.NewCatalogRepository(application.DB)
	codeStore := repositories.NewMemoryVerificationCodeStore(
		cfg.VerificationCodeLength, cfg.VerificationCodeExpiry)
	rateLimitRepo := repositories.NewRateLimitRepository(application.DB)

	blobStore := storage.NewDiskStore(cfg.UploadDir, routes.UploadsPrefix)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	mailer := services.NewMailer(cfg)
	rateLimiterService := services.NewRateLimiterService(rateLimitRepo, cfg)
	otpService := services.NewOTPService(codeStore, mailer, rateLimiterService)
	jwtService := services.NewJWTService(cfg)
	authService := services.NewAuthService(applicantRepo, otpService, jwtService)
	applicantService := services.NewApplicantService(applicantRepo, catalogRepo)
	qualificationService := services.NewQualificationService(qualificationRepo)
	experienceService := services.NewExperienceService(experienceRepo)
	uploadService := services.NewUploadService(applicantRepo, blobStore)
	submissionService := services.NewSubmissionService(applicantRepo)
	pdfService := services.NewApplicationPDFService(applicantRepo, catalogRepo, qualificationRepo, experienceRepo)
	cleanupService := services.NewVerificationCleanupService(codeStore)
	rateLimitCleanupService := services.NewRateLimitCleanupService(rateLimitRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	healthController := controllers.NewHealthController(application)
	otpController := controllers.NewOTPController(otpService)
	authController := controllers.NewAuthController(authService)
	catalogController := controllers.NewCatalogController(catalogRepo)
	applicantController := controllers.NewApplicantController(applicantService)
	qualificationController := controllers.NewQualificationController(qualificationService)
	experienceController := controllers.NewExperienceController(experienceService)
	uploadController := controllers.NewUploadController(uploadService)
	applicationController := controllers.NewApplicationController(submissionService, pdfService)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")
	router.HandleFunc(routes.OTPSend, otpController.SendCode).Methods("POST")
	router.HandleFunc(routes.OTPVerify, otpController.VerifyCode).Methods("POST")
	router.HandleFunc(routes.Signup, authController.Signup).Methods("POST")
	router.HandleFunc(routes.Login, authController.Login).Methods("POST")
	router.HandleFunc(routes.Posts, catalogController.ListPosts).Methods("GET")
	router.HandleFunc(routes.Districts, catalogController.ListDistricts).Methods("GET")

	// Uploaded documents are served straight from disk
	router.PathPrefix(routes.UploadsPrefix + "/").Handler(
		http.StripPrefix(routes.UploadsPrefix+"/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Protected endpoints require a valid token
	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.HandleFunc(routes.Applicant, applicantController.GetProfile).Methods("GET")
	protected.HandleFunc(routes.Applicant, applicantController.UpdateProfile).Methods("PUT")
	protected.HandleFunc(routes.Qualifications, qualificationController.List).Methods("GET")
	protected.HandleFunc(routes.Qualifications, qualificationController.Create).Methods("POST")
	protected.HandleFunc(routes.QualificationByID, qualificationController.Update).Methods("PUT")
	protected.HandleFunc(routes.QualificationByID, qualificationController.Delete).Methods("DELETE")
	protected.HandleFunc(routes.Experiences, experienceController.List).Methods("GET")
	protected.HandleFunc(routes.Experiences, experienceController.Create).Methods("POST")
	protected.HandleFunc(routes.ExperienceByID, experienceController.Update).Methods("PUT")
	protected.HandleFunc(routes.ExperienceByID, experienceController.Delete).Methods("DELETE")
	protected.HandleFunc(routes.Upload, uploadController.Upload).Methods("POST")
	protected.HandleFunc(routes.ApplicationSubmit, applicationController.Submit).Methods("POST")
	protected.HandleFunc(routes.ApplicationPDF, applicationController.DownloadPDF).Methods("GET")

	//----------------------------------------------------------------------
	// Scheduled cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()
	if _, schErr := c.AddFunc("*/5 * * * *", cleanupService.Cleanup); schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule verification-codes cleanup job")
	}
	if _, schErr := c.AddFunc("10 3 * * *", func() {
		_ = rateLimitCleanupService.CleanupDaily(context.Background())
	}); schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule rate-limit cleanup job")
	}
	c.Start()

	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
