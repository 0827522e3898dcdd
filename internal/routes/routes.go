package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahadevaelectronics/repair-api/internal/audit"
	"github.com/mahadevaelectronics/repair-api/internal/auth"
	"github.com/mahadevaelectronics/repair-api/internal/config"
	"github.com/mahadevaelectronics/repair-api/internal/handlers"
	infraRepo "github.com/mahadevaelectronics/repair-api/internal/infra/repository"
	"github.com/mahadevaelectronics/repair-api/internal/middleware"
	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/repository"
	ucBooking "github.com/mahadevaelectronics/repair-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	productStore := repository.NewGormStore[models.Product](db, "Images")
	imageStore := repository.NewGormStore[models.ProductImage](db)
	partStore := repository.NewGormStore[models.Part](db)
	technicianStore := repository.NewGormStore[models.Technician](db)
	feedbackStore := repository.NewGormStore[models.Feedback](db)
	auditLogStore := repository.NewGormStore[models.AuditLog](db)

	bookingRepo := infraRepo.NewBookingGormRepository(db)
	adminRepo := infraRepo.NewAdminGormRepository(db)

	authService := auth.NewService(adminRepo, cfg.JWTSecret, cfg.TokenTTL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogStore)

	productHandler := handlers.NewProductHandler(productStore, imageStore)
	partHandler := handlers.NewPartHandler(partStore)
	technicianHandler := handlers.NewTechnicianHandler(technicianStore)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, createBookingUC, updateBookingUC)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackStore)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/token", authHandler.Token)

		// ------------------------------
		// ENTITY FAMILIES
		// Trailing-slash forms are served through gin's redirect.
		// ------------------------------
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
			products.POST("/:id/images", productHandler.AddImage)
			products.DELETE("/:id/images/:imageID", productHandler.DeleteImage)
		}

		parts := api.Group("/parts")
		{
			parts.GET("", partHandler.List)
			parts.POST("", partHandler.Create)
			parts.GET("/:id", partHandler.Get)
			parts.PUT("/:id", partHandler.Update)
			parts.DELETE("/:id", partHandler.Delete)
		}

		technicians := api.Group("/technicians")
		{
			technicians.GET("", technicianHandler.List)
			technicians.POST("", technicianHandler.Create)
			technicians.GET("/:id", technicianHandler.Get)
			technicians.PUT("/:id", technicianHandler.Update)
			technicians.DELETE("/:id", technicianHandler.Delete)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bookingHandler.List)
			bookings.POST("", bookingHandler.Create)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PUT("/:id", bookingHandler.Update)
			bookings.DELETE("/:id", bookingHandler.Delete)
		}

		feedback := api.Group("/feedback")
		{
			feedback.GET("", feedbackHandler.List)
			feedback.POST("", feedbackHandler.Create)
			feedback.GET("/:id", feedbackHandler.Get)
			feedback.PUT("/:id", feedbackHandler.Update)
			feedback.DELETE("/:id", feedbackHandler.Delete)
		}

		// ------------------------------
		// ADMIN (BEARER-PROTECTED)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(authService))
		{
			admin.GET("/me", adminHandler.GetMe)
			admin.POST("/users", adminHandler.CreateAdminUser)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
