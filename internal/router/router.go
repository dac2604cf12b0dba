package router

import (
	"time"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/handlers"
	"github.com/influmatch/influmatch-backend/internal/middleware"
	"github.com/influmatch/influmatch-backend/internal/services"
	"github.com/influmatch/influmatch-backend/internal/services/api_key"
	"github.com/influmatch/influmatch-backend/internal/services/auth"
	"github.com/influmatch/influmatch-backend/internal/services/excel"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with all API routes
func SetupRouter(db *gorm.DB, sseHub *services.SSEHub, notificationService *services.NotificationService) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create services
	authService := auth.NewAuthService(db)
	apiKeyService := api_key.NewService(db)
	excelService := excel.NewExcelService(
		repository.NewOutreachRepository(db),
		repository.NewAnalyticsRepository(db),
		"exports",
	)

	// Create middleware with services
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(db, authService)
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(apiKeyService)

	// Create handlers
	authHandler := handlers.NewAuthHandler(authService)
	brandHandler := handlers.NewBrandHandler(db)
	campaignHandler := handlers.NewCampaignHandler(db)
	influencerHandler := handlers.NewInfluencerHandler(db)
	outreachHandler := handlers.NewOutreachHandler(db, sseHub)
	dealHandler := handlers.NewDealHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db, notificationService, sseHub)
	analyticsHandler := handlers.NewAnalyticsHandler(db, excelService)
	apiKeyHandler := handlers.NewAPIKeyHandler(apiKeyService)
	agentHandler := handlers.NewAgentHandler(db, sseHub, notificationService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.RefreshToken)
		}

		// Agent callback routes (API key)
		agent := api.Group("/agent")
		agent.Use(apiKeyMiddleware.APIKeyAuthMiddleware())
		{
			agent.POST("/communication-logs", agentHandler.AppendCommunicationLog)
			agent.PATCH("/outreach/:id/status", agentHandler.UpdateOutreachStatus)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			// Auth protected routes
			authProtected := protected.Group("/auth")
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/me", authHandler.GetProfile)
				authProtected.POST("/change-password", authHandler.ChangePassword)
			}

			// Brand profile routes
			brands := protected.Group("/brands")
			{
				brands.GET("/me", brandHandler.GetMyBrand)
				brands.PUT("/me", brandHandler.UpsertMyBrand)
			}

			// Campaign routes
			campaigns := protected.Group("/campaigns")
			{
				campaigns.POST("", campaignHandler.CreateCampaign)
				campaigns.GET("", campaignHandler.GetMyCampaigns)
				campaigns.GET("/:id", campaignHandler.GetCampaignByID)
				campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
				campaigns.PATCH("/:id/status", campaignHandler.UpdateCampaignStatus)
				campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
			}

			// Influencer directory routes
			influencers := protected.Group("/influencers")
			{
				influencers.GET("", influencerHandler.SearchInfluencers)
				influencers.POST("", influencerHandler.CreateInfluencer)
				influencers.GET("/:id", influencerHandler.GetInfluencerByID)
				influencers.GET("/:id/platforms", influencerHandler.GetPlatformAccounts)
				influencers.PUT("/:id/platforms", influencerHandler.UpsertPlatformAccount)
			}

			// Outreach tracker routes
			outreach := protected.Group("/outreach")
			{
				outreach.POST("", outreachHandler.CreateOutreach)
				outreach.GET("", outreachHandler.ListOutreach)
				outreach.GET("/:id", outreachHandler.GetOutreach)
				outreach.PATCH("/:id/status", outreachHandler.UpdateOutreachStatus)
				outreach.POST("/:id/simulate-call", outreachHandler.SimulateCall)
				outreach.GET("/:id/logs", outreachHandler.GetCommunicationLogs)
				outreach.GET("/:id/stream", outreachHandler.StreamOutreachSSE)
			}

			// Deal routes
			deals := protected.Group("/deals")
			{
				deals.POST("", dealHandler.CreateDeal)
				deals.GET("", dealHandler.GetMyDeals)
				deals.GET("/:id", dealHandler.GetDealByID)
				deals.PATCH("/:id/status", dealHandler.UpdateDealStatus)
				deals.POST("/:id/payments", dealHandler.CreatePayment)
				deals.GET("/:id/payments", dealHandler.GetPayments)
			}

			// Notification routes
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.GetMyNotifications)
				notifications.GET("/unread-count", notificationHandler.GetUnreadCount)
				notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
				notifications.PATCH("/read-all", notificationHandler.MarkAllAsRead)
				notifications.GET("/stream", notificationHandler.StreamNotificationsSSE)
			}

			// Analytics routes
			analytics := protected.Group("/analytics")
			{
				analytics.GET("/dashboard", analyticsHandler.GetDashboardStats)
				analytics.GET("/activity", analyticsHandler.GetRecentActivity)
				analytics.GET("/campaigns", analyticsHandler.GetCampaignSummaries)
				analytics.POST("/export", analyticsHandler.ExportOutreach)
				analytics.GET("/export/:filename", analyticsHandler.DownloadExport)
			}

			// API key routes
			apiKeys := protected.Group("/api-keys")
			{
				apiKeys.POST("", apiKeyHandler.GenerateAPIKey)
				apiKeys.GET("", apiKeyHandler.GetMyAPIKey)
				apiKeys.DELETE("", apiKeyHandler.DeleteAPIKey)
			}
		}
	}

	return r
}
