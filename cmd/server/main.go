package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recruai/platform-api/adapters/event"
	httpAdapter "github.com/recruai/platform-api/adapters/http"
	"github.com/recruai/platform-api/adapters/imagesearch"
	"github.com/recruai/platform-api/adapters/llm"
	"github.com/recruai/platform-api/adapters/media_storage"
	"github.com/recruai/platform-api/adapters/persistence"
	authUC "github.com/recruai/platform-api/internal/application/usecase/auth"
	chatUC "github.com/recruai/platform-api/internal/application/usecase/chat"
	"github.com/recruai/platform-api/internal/application/usecase/identity"
	interviewUC "github.com/recruai/platform-api/internal/application/usecase/interview"
	jobpostUC "github.com/recruai/platform-api/internal/application/usecase/jobpost"
	mediaUC "github.com/recruai/platform-api/internal/application/usecase/media"
	orgUC "github.com/recruai/platform-api/internal/application/usecase/org"
	profileUC "github.com/recruai/platform-api/internal/application/usecase/profile"
	sectionUC "github.com/recruai/platform-api/internal/application/usecase/section"
	slidesUC "github.com/recruai/platform-api/internal/application/usecase/slides"
	"github.com/recruai/platform-api/internal/config"
	"github.com/recruai/platform-api/pkg/auth"
	"github.com/recruai/platform-api/pkg/logger"
)

func main() {
	fmt.Println("Start RecruAI Platform API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	ownerRepo := persistence.NewPostgresOwnerRepo(dbPool, appLogger)
	sectionRepo := persistence.NewPostgresSectionRepo(dbPool, appLogger)
	orgRepo := persistence.NewPostgresOrgRepo(dbPool, appLogger)
	jobPostRepo := persistence.NewPostgresJobPostRepo(dbPool, appLogger)
	interviewRepo := persistence.NewPostgresInterviewRepo(dbPool, appLogger)
	presentationRepo := persistence.NewPostgresPresentationRepo(dbPool, appLogger)
	profileCache := persistence.NewRedisProfileCache(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	localUploader, err := media_storage.NewLocalAdapter(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize local uploader: %v", err)
	}
	uploader := localUploader
	if cloudinaryUploader, err := media_storage.NewCloudinaryAdapter(cfg); err == nil {
		uploader = media_storage.NewFallbackAdapter(cloudinaryUploader, localUploader, appLogger)
	} else {
		appLogger.Warn("Cloudinary unavailable, uploads go to local disk only")
	}
	llmSvc, err := llm.NewGroqLLMAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize LLM adapter: %v", err)
	}
	imageSearch := imagesearch.NewUnsplashAdapter(cfg, appLogger)

	// Use Cases
	resolver := identity.NewResolver(ownerRepo)
	registerUseCase := authUC.NewRegisterUseCase(ownerRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(ownerRepo, jwtSvc, appLogger)
	accountUseCase := authUC.NewAccountUseCase(resolver, ownerRepo, appLogger)
	sectionUseCase := sectionUC.NewUseCase(resolver, sectionRepo, kafkaClient, profileCache, appLogger)
	profileUseCase := profileUC.NewUseCase(resolver, ownerRepo, sectionRepo, profileCache, appLogger)
	orgUseCase := orgUC.NewUseCase(resolver, orgRepo, appLogger)
	jobPostUseCase := jobpostUC.NewUseCase(resolver, jobPostRepo, orgRepo, kafkaClient, appLogger)
	uploadUseCase := mediaUC.NewUploadPictureUseCase(resolver, ownerRepo, uploader, profileCache, appLogger)
	chatUseCase := chatUC.NewUseCase(resolver, llmSvc, appLogger)
	generateUseCase := slidesUC.NewGenerateUseCase(resolver, presentationRepo, llmSvc, imageSearch, appLogger)
	listSlidesUseCase := slidesUC.NewListUseCase(resolver, presentationRepo, appLogger)
	getSlidesUseCase := slidesUC.NewGetSlidesUseCase(resolver, presentationRepo, appLogger)
	interviewUseCase := interviewUC.NewUseCase(resolver, interviewRepo, appLogger)

	// Background sweeper
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	sweeper := interviewUC.NewSweeper(interviewRepo, cfg.Interviews.SweepInterval, appLogger)
	go sweeper.Run(sweeperCtx)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, accountUseCase)
	sectionHandler := httpAdapter.NewSectionHandler(sectionUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase)
	orgHandler := httpAdapter.NewOrgHandler(orgUseCase)
	jobPostHandler := httpAdapter.NewJobPostHandler(jobPostUseCase)
	uploadHandler := httpAdapter.NewUploadHandler(uploadUseCase)
	aiHandler := httpAdapter.NewAIHandler(chatUseCase)
	slidesHandler := httpAdapter.NewSlidesHandler(generateUseCase, listSlidesUseCase, getSlidesUseCase)
	interviewHandler := httpAdapter.NewInterviewHandler(interviewUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()
	router.Static("/uploads", cfg.Uploads.LocalDir)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)

			authPrivate := authGroup.Group("/")
			authPrivate.Use(authMiddleware)
			{
				authPrivate.GET("/verify", authHandler.Verify)
				authPrivate.GET("/me", authHandler.Me)
				authPrivate.GET("/plan", authHandler.GetPlan)
				authPrivate.POST("/plan", authHandler.UpdatePlan)
			}
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			me := private.Group("/me")
			{
				me.GET("", profileHandler.GetFullProfile)
				me.PUT("", profileHandler.UpdateFullProfile)
				me.POST("/upload-profile-picture", uploadHandler.UploadProfilePicture)

				sectionHandler.RegisterAll(me)
			}

			orgs := private.Group("/organizations")
			{
				orgs.GET("", orgHandler.List)
				orgs.POST("", orgHandler.Create)
				orgs.GET("/:id", orgHandler.Get)
				orgs.PUT("/:id", orgHandler.Update)
				orgs.DELETE("/:id", orgHandler.Delete)
				orgs.GET("/:id/posts", jobPostHandler.List)
			}

			posts := private.Group("/posts")
			{
				posts.GET("", jobPostHandler.List)
				posts.POST("", jobPostHandler.Create)
				posts.GET("/:id", jobPostHandler.Get)
				posts.PUT("/:id", jobPostHandler.Update)
				posts.DELETE("/:id", jobPostHandler.Delete)
			}

			interviews := private.Group("/interviews")
			{
				interviews.GET("", interviewHandler.List)
				interviews.POST("", interviewHandler.Schedule)
			}

			private.POST("/ai/chat", aiHandler.Chat)

			pptai := private.Group("/pptai")
			{
				pptai.POST("/generate", slidesHandler.Generate)
				pptai.GET("/list", slidesHandler.List)
				pptai.GET("/slides/:id", slidesHandler.Slides)
			}
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
