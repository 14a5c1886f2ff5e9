package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/isaqueks/tasks/docs"
	"github.com/isaqueks/tasks/internal/config"
	"github.com/isaqueks/tasks/internal/handlers"
	"github.com/isaqueks/tasks/internal/repositories"
	"github.com/isaqueks/tasks/internal/routes"
	"github.com/isaqueks/tasks/internal/services"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	observationRepo := repositories.NewObservationRepository(db)

	// === Services ===
	authService := services.NewAuthService()

	var emailService services.EmailService
	if cfg.Email.Enabled {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	telegramService, err := services.NewTelegramService(cfg.Telegram.BotToken)
	if err != nil {
		// notifications are optional; run without them
		log.Printf("telegram disabled: %v", err)
		telegramService = nil
	}

	userService := services.NewUserService(userRepo, emailService, authService)
	companyService := services.NewCompanyService(companyRepo)
	taskService := services.NewTaskService(taskRepo, companyRepo)
	observationService := services.NewObservationService(observationRepo, taskService)

	// === Handlers ===
	jwtKey := []byte(cfg.Auth.JWTSecret)
	authHandler := handlers.NewAuthHandler(
		userService,
		authService,
		jwtKey,
		time.Duration(cfg.Auth.AccessTTLMin)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLDays)*24*time.Hour,
	)
	userHandler := handlers.NewUserHandler(userService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	taskHandler := handlers.NewTaskHandler(taskService, telegramService, userService)
	observationHandler := handlers.NewObservationHandler(observationService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		jwtKey,
		authHandler,
		userHandler,
		companyHandler,
		taskHandler,
		observationHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
