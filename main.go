package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expertly/config"
	"expertly/cron"
	"expertly/database"
	categoryRepoPkg "expertly/database/repository/category"
	conversationRepoPkg "expertly/database/repository/conversation"
	invitationRepoPkg "expertly/database/repository/invitation"
	profileRepoPkg "expertly/database/repository/profile"
	serviceRepoPkg "expertly/database/repository/service"
	sessionRepoPkg "expertly/database/repository/session"
	suggestionRepoPkg "expertly/database/repository/suggestion"
	videoRepoPkg "expertly/database/repository/video"
	waitlistRepoPkg "expertly/database/repository/waitlist"
	"expertly/handlers"
	"expertly/routes"
	"expertly/services/access"
	"expertly/services/account"
	"expertly/services/expert"
	"expertly/services/messaging"
	"expertly/services/notification"
	"expertly/services/session"
	"expertly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryClient, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary unavailable, video uploads disabled: %v", err)
		cloudinaryClient = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	conversationRepo := conversationRepoPkg.NewMongoConversationRepo()
	categoryRepo := categoryRepoPkg.NewMongoCategoryRepo()
	videoRepo := videoRepoPkg.NewMongoVideoRepo()
	suggestionRepo := suggestionRepoPkg.NewMongoSuggestionRepo()
	invitationRepo := invitationRepoPkg.NewMongoInvitationRepo()
	waitlistRepo := waitlistRepoPkg.NewMongoWaitlistRepo()

	// services.
	accountService := &account.DefaultAccountService{
		Repo: profileRepo,
	}

	expertService := &expert.DefaultExpertService{
		Profiles:    profileRepo,
		Services:    serviceRepo,
		Categories:  categoryRepo,
		Videos:      videoRepo,
		Suggestions: suggestionRepo,
		CacheClient: utils.GetCacheClient(),
		Cloudinary:  cloudinaryClient,
	}

	sessionService := &session.DefaultSessionService{
		Repo:          sessionRepo,
		Services:      serviceRepo,
		Conversations: conversationRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(profileRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	messagingService := &messaging.DefaultMessagingService{
		Conversations: conversationRepo,
		Sessions:      sessionService,
		Notifications: notificationService,
	}

	accessService := &access.DefaultAccessService{
		Waitlist:    waitlistRepo,
		Invitations: invitationRepo,
		Profiles:    profileRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo: profileRepo,
		Account:     &handlers.AccountHandler{Accounts: accountService},
		Expert:      &handlers.ExpertHandler{Experts: expertService},
		Session:     &handlers.SessionHandler{Sessions: sessionService},
		Messaging:   &handlers.MessagingHandler{Messaging: messagingService},
		Access:      &handlers.AccessHandler{Access: accessService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitSweepWorker(sessionService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
