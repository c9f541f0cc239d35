package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meetapp/server/internal/container"
	"github.com/meetapp/server/internal/handlers"
	"github.com/meetapp/server/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "meetapp-api",
			})
		})
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthRequired(container.Config.JWTSecret))

	meetingRoutes := protected.Group("/meetings")
	{
		meetingRoutes.GET("", handlers.ListMeetings(container.MeetingService, container.Config.MeetingPageSize))
		meetingRoutes.POST("", handlers.CreateMeeting(container.MeetingService))
		meetingRoutes.PUT("/:id", handlers.UpdateMeeting(container.MeetingService))
		meetingRoutes.DELETE("/:id", handlers.CancelMeeting(container.MeetingService))

		meetingRoutes.POST("/:id/subscriptions", handlers.CreateSubscription(container.SubscriptionService))
		meetingRoutes.DELETE("/:id/subscriptions", handlers.CancelSubscription(container.SubscriptionService))

		meetingRoutes.POST("/:id/banner", handlers.AttachBanner(container.BannerService))
	}

	protected.GET("/subscriptions", handlers.ListSubscriptions(container.SubscriptionService, container.Config.SubscriptionPageSize))

	return r
}
