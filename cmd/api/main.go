package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mystfest/registration-backend/internal/config"
	"github.com/mystfest/registration-backend/internal/handler"
	"github.com/mystfest/registration-backend/internal/middleware"
	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/repository"
	"github.com/mystfest/registration-backend/internal/service"
	"github.com/mystfest/registration-backend/pkg/database"
	"github.com/mystfest/registration-backend/pkg/email"
	"github.com/mystfest/registration-backend/pkg/storage"
	"github.com/mystfest/registration-backend/pkg/supabase"
	"github.com/mystfest/registration-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	cfg := config.LoadConfig()

	db := database.NewDatabase()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	eventRepo := repository.NewEventRepository(db)
	participantRepo := repository.NewParticipantRepository(db)

	// External collaborators
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	emailService := email.NewEmailService()

	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Services
	authService := service.NewAuthService(userRepo, supabaseClient, zapLogger)
	profileService := service.NewProfileService(profileRepo, userRepo, emailService)
	eventService := service.NewEventService(eventRepo)
	participantService := service.NewParticipantService(participantRepo, eventRepo, emailService, zapLogger)
	uploadService := service.NewUploadService(r2Storage, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	profileHandler := handler.NewProfileHandler(profileService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	participantHandler := handler.NewParticipantHandler(participantService, validator)
	uploadHandler := handler.NewUploadHandler(uploadService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("CORS_ALLOWED_ORIGINS"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Cookie",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	// Public routes
	auth := app.Group("/auth")
	auth.Post("/validate", authHandler.ValidateToken)

	// Session-gated routes
	auth.Use(middleware.AuthMiddleware())
	auth.Get("/me", authHandler.GetCurrentUser)
	auth.Get("/can-access-dashboard", authHandler.CanAccessDashboard)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/block-user", middleware.RequireRoles(models.RoleAdmin), authHandler.BlockUser)
	auth.Post("/unblock-user", middleware.RequireRoles(models.RoleAdmin), authHandler.UnblockUser)

	events := app.Group("/events", middleware.AuthMiddleware())
	events.Get("/", eventHandler.GetAllEvents)
	events.Get("/:eventId", eventHandler.GetEvent)
	events.Post("/", middleware.RequireRoles(models.RoleAdmin), eventHandler.CreateEvent)
	events.Put("/:eventId", middleware.RequireRoles(models.RoleAdmin), eventHandler.UpdateEvent)
	events.Patch("/:eventId/slots", middleware.RequireRoles(models.RoleAdmin), eventHandler.AdjustSlots)
	events.Patch("/:eventId/toggle-active", middleware.RequireRoles(models.RoleAdmin), eventHandler.ToggleActive)
	events.Patch("/:eventId/toggle-lock", middleware.RequireRoles(models.RoleAdmin), eventHandler.ToggleLock)
	events.Delete("/:eventId", middleware.RequireRoles(models.RoleAdmin), eventHandler.DeleteEvent)

	participants := app.Group("/participants", middleware.AuthMiddleware())
	participants.Post("/", middleware.RequireRoles(models.RoleCL), participantHandler.CreateParticipant)
	participants.Get("/my", middleware.RequireRoles(models.RoleCL), participantHandler.GetMyParticipants)
	participants.Get("/", middleware.RequireRoles(models.RoleAdmin), participantHandler.GetAllParticipants)
	participants.Get("/event/:eventId", middleware.RequireRoles(models.RoleAdmin), participantHandler.GetParticipantsByEvent)
	participants.Patch("/:id/approve", middleware.RequireRoles(models.RoleAdmin), participantHandler.ApproveParticipant)
	participants.Patch("/:id/reject", middleware.RequireRoles(models.RoleAdmin), participantHandler.RejectParticipant)
	participants.Put("/:id", middleware.RequireRoles(models.RoleCL), participantHandler.UpdateParticipant)
	participants.Delete("/:id", middleware.RequireRoles(models.RoleCL), participantHandler.DeleteParticipant)

	profile := app.Group("/profile", middleware.AuthMiddleware())
	profile.Post("/", middleware.RequireRoles(models.RoleCL, models.RolePRNC), profileHandler.CreateProfile)
	profile.Get("/me", profileHandler.GetMyProfile)
	profile.Put("/", middleware.RequireRoles(models.RoleCL, models.RolePRNC), profileHandler.UpdateProfile)
	profile.Get("/", middleware.RequireRoles(models.RoleAdmin), profileHandler.GetAllProfiles)
	profile.Get("/:id", middleware.RequireRoles(models.RoleAdmin), profileHandler.GetProfileByID)
	profile.Patch("/:id/approve", middleware.RequireRoles(models.RoleAdmin), profileHandler.ApproveProfile)
	profile.Patch("/:id/reject", middleware.RequireRoles(models.RoleAdmin), profileHandler.RejectProfile)

	uploads := app.Group("/uploads", middleware.AuthMiddleware())
	uploads.Post("/documents", middleware.RequireRoles(models.RoleCL, models.RolePRNC), uploadHandler.UploadDocument)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("server starting", zap.String("port", port))
	log.Fatal(app.Listen(":" + port))
}
