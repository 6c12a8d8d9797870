package routes

import (
	"net/http"
	"time"

	"expertly/handlers"
	"expertly/middleware"
	"expertly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers registration, login, and self-service
// account endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.POST("/register", hb.Account.RegisterHandler)
		api.POST("/login", hb.Account.AuthenticateHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("/me", hb.Account.GetMeHandler)
		api.PUT("/fcm-token", hb.Account.UpdateFCMTokenHandler)
		api.DELETE("/revoke", hb.Account.RevokeTokenHandler)
		api.DELETE("", hb.Account.DeleteAccountHandler)
	}
}

// RegisterExpertRoutes registers discovery, profile, service, video, and
// suggestion endpoints.
func RegisterExpertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experts")
	{
		// Public discovery endpoints.
		api.GET("", hb.Expert.ListExpertsHandler)
		api.GET("/search", hb.Expert.SearchExpertsHandler)
		api.GET("/categories", hb.Expert.ListCategoriesHandler)
		api.GET("/categories/:id", hb.Expert.ExpertsByCategoryHandler)

		// Suggestions come from any authenticated user.
		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		authed.POST("/suggestions", hb.Expert.SuggestExpertHandler)

		// Self-management endpoints require expert status.
		expert := api.Group("")
		expert.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo), middleware.ExpertOnlyMiddleware(hb.ProfileRepo))
		expert.PUT("/profile", hb.Expert.UpdateProfileHandler)
		expert.POST("/services", hb.Expert.CreateServiceHandler)
		expert.GET("/services", hb.Expert.ListMyServicesHandler)
		expert.PUT("/services/:id", hb.Expert.UpdateServiceHandler)
		expert.DELETE("/services/:id", hb.Expert.DeleteServiceHandler)
		expert.POST("/videos", hb.Expert.AddVideoHandler)
		expert.DELETE("/videos/:id", hb.Expert.DeleteVideoHandler)
		expert.POST("/categories", hb.Expert.CreateCategoryHandler)
		expert.POST("/categories/:id/join", hb.Expert.JoinCategoryHandler)
		expert.GET("/suggestions", hb.Expert.ListSuggestionsHandler)

		api.GET("/id/:id", hb.Expert.GetExpertProfileHandler)
	}
}

// RegisterSessionRoutes registers the session lifecycle endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.POST("", hb.Session.CreateBookingHandler)
		api.GET("/id/:id", hb.Session.GetSessionHandler)
		api.GET("/chat-permission/:expertID", hb.Session.ChatPermissionHandler)
		api.GET("/user", hb.Session.UserSessionsHandler)

		expert := api.Group("")
		expert.Use(middleware.ExpertOnlyMiddleware(hb.ProfileRepo))
		expert.GET("/expert", hb.Session.ExpertSessionsHandler)
		expert.POST("/complete/:id", hb.Session.CompleteSessionHandler)
	}
}

// RegisterMessagingRoutes registers conversation and messaging endpoints.
func RegisterMessagingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("/conversations", hb.Messaging.ListConversationsHandler)
		api.GET("/with/:expertID", hb.Messaging.ConversationWithExpertHandler)
		api.GET("/conversations/:id", hb.Messaging.ListMessagesHandler)
		api.POST("/conversations/:id", hb.Messaging.SendMessageHandler)
	}
}

// RegisterAccessRoutes registers waitlist and invitation endpoints.
func RegisterAccessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	waitlist := r.Group("/api/waitlist")
	{
		waitlist.POST("", hb.Access.JoinWaitlistHandler)

		protected := waitlist.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo), middleware.ExpertOnlyMiddleware(hb.ProfileRepo))
		protected.GET("", hb.Access.ListWaitlistHandler)
	}

	invitations := r.Group("/api/invitations")
	{
		invitations.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		invitations.POST("/accept", hb.Access.AcceptInvitationHandler)

		expert := invitations.Group("")
		expert.Use(middleware.ExpertOnlyMiddleware(hb.ProfileRepo))
		expert.POST("", hb.Access.InviteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAccountRoutes(r, hb)
	RegisterExpertRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterMessagingRoutes(r, hb)
	RegisterAccessRoutes(r, hb)
	RegisterHealthRoute(r)
}
