package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"tatvaops/internal/config"
	"tatvaops/internal/database"
	"tatvaops/internal/middleware"
	"tatvaops/internal/modules/auth"
	"tatvaops/internal/modules/milestone"
	"tatvaops/internal/modules/progress"
	"tatvaops/internal/modules/project"
	"tatvaops/internal/modules/session"
	"tatvaops/internal/modules/vendor"
	jwtsvc "tatvaops/internal/pkg/jwt"
	"tatvaops/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	sessionRepo := repository.NewSessionFlagRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	sessionService := session.NewService(sessionRepo)
	sessionHandler := session.NewHandler(sessionService)

	authService := auth.NewService(userRepo, j, sessionService)
	authHandler := auth.NewHandler(authService)

	hub := progress.NewHub()
	defer hub.Close()
	tracker := progress.NewTracker(hub)
	progressHandler := progress.NewHandler(hub)

	milestoneService := milestone.NewService(milestoneRepo, tracker, cfg.SaveDelay, cfg.SavedTTL)
	milestoneHandler := milestone.NewHandler(milestoneService)

	projectService := project.NewService(projectRepo, milestoneRepo, sessionService)
	projectHandler := project.NewHandler(projectService)

	vendorService := vendor.NewService(vendorRepo, sessionService, projectRepo)
	vendorHandler := vendor.NewHandler(vendorService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			sessionHandler.RegisterRoutes(protected)
			vendorHandler.RegisterRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			milestoneHandler.RegisterRoutes(protected)
			progressHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
