// File: innkeeper/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"innkeeper/config"
	"innkeeper/cron"
	"innkeeper/database"
	bookingRepo "innkeeper/database/repository/booking"
	messagesRepo "innkeeper/database/repository/messages"
	"innkeeper/handlers"
	"innkeeper/middleware"
	"innkeeper/routes"
	"innkeeper/services/agent"
	ai "innkeeper/services/intelligence"
	"innkeeper/services/messenger"
	"innkeeper/services/tasks"
	"innkeeper/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitStateCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	if mongoRepo, ok := bookings.(*bookingRepo.MongoBookingRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure booking indexes: %v", err)
		}
	}
	messages := messagesRepo.NewMongoMessageRepo()

	// External collaborators.
	instagram := messenger.NewInstagramClient()
	gemini := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	stateStore := ai.NewRedisStateStore(utils.GetStateCacheClient(), 30*time.Minute)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	reminders := tasks.NewAsynqReminderScheduler(asynqClient, config.AppConfig.HotelName)

	// The conversational agent.
	agentService := &agent.DefaultAgentService{
		States:    stateStore,
		Bookings:  bookings,
		LLM:       gemini,
		Hotel:     agent.HotelInfoFromConfig(),
		Rates:     agent.RatesFromConfig(),
		Reminders: reminders,
	}

	// Handlers.
	webhookHandler := handlers.NewWebhookHandler(agentService, instagram, messages)
	chatHandler := handlers.NewChatHandler(agentService)
	bookingHandler := handlers.NewBookingHandler(bookings, messages)

	handlerBundle := &handlers.HandlerBundle{
		VerifyWebhookHandler:  webhookHandler.VerifyWebhookHandler,
		ReceiveWebhookHandler: webhookHandler.ReceiveWebhookHandler,

		ChatHandler: chatHandler.HandleChat,

		GetUserBookingsHandler:        bookingHandler.GetUserBookingsHandler,
		GetConversationHistoryHandler: bookingHandler.GetConversationHistoryHandler,

		HealthHandler: handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitReminderWorker(instagram)
	utils.StartHealthMonitor([]*redis.Client{utils.GetStateCacheClient()}, database.MongoClient)

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
