package routes

import (
	"github.com/gin-gonic/gin"

	"nsuemschool/internal/handlers"
	"nsuemschool/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	consultationHandler *handlers.ConsultationHandler,
	contentHandler *handlers.ContentHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/consultations", consultationHandler.Create)
	r.GET("/content", contentHandler.List)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	r.GET("/profile", authHandler.Me)
	r.PUT("/profile", authHandler.UpdateProfile)

	// ---- admin console
	admin := r.Group("/admin", middleware.RequireAdmin())
	{
		users := admin.Group("/users")
		{
			users.GET("/", userHandler.List)
			users.POST("/", userHandler.Create)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		consultations := admin.Group("/consultations")
		{
			consultations.GET("/", consultationHandler.List)
			consultations.PUT("/:id", consultationHandler.Update)
			consultations.PUT("/:id/status", consultationHandler.UpdateStatus)
			consultations.DELETE("/:id", consultationHandler.Delete)
		}

		admin.PUT("/content", contentHandler.Save)
		admin.GET("/reports/consultations", reportHandler.ConsultationsPDF)
	}

	return r
}
