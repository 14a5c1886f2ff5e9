package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/isaqueks/tasks/internal/handlers"
	"github.com/isaqueks/tasks/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtKey []byte,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	companyHandler *handlers.CompanyHandler,
	taskHandler *handlers.TaskHandler,
	observationHandler *handlers.ObservationHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.POST("/register", userHandler.Register)

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtKey))

	users := r.Group("/users")
	{
		users.GET("/me", userHandler.Me)
		users.PUT("/me/telegram", userHandler.LinkTelegram)
	}

	companies := r.Group("/companies")
	{
		companies.POST("", companyHandler.Create)
		companies.GET("", companyHandler.List)
		companies.GET("/:id", companyHandler.GetByID)
		companies.PATCH("/:id", companyHandler.Update)
		companies.DELETE("/:id", companyHandler.Delete)
	}

	tasks := r.Group("/tasks")
	{
		tasks.POST("", taskHandler.Create)
		tasks.GET("", taskHandler.List)
		tasks.GET("/weekly", taskHandler.Weekly)
		tasks.GET("/weekly/pdf", taskHandler.WeeklyPDF)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PATCH("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)

		tasks.POST("/:id/observations", observationHandler.Create)
		tasks.GET("/:id/observations", observationHandler.List)
		tasks.DELETE("/:id/observations/:obs_id", observationHandler.Delete)
	}

	return r
}
