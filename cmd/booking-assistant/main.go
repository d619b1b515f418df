package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-booking-assistant/internal/api"
	"ai-booking-assistant/internal/api/handlers"
	"ai-booking-assistant/internal/repository"
	"ai-booking-assistant/internal/service"
	"ai-booking-assistant/internal/vectorstore"
	"ai-booking-assistant/pkg/auth"
	"ai-booking-assistant/pkg/config"
	"ai-booking-assistant/pkg/embedding"
	"ai-booking-assistant/pkg/llm"
	"ai-booking-assistant/pkg/logger"
	"ai-booking-assistant/pkg/postgres"

	"go.uber.org/zap"
)

// @title AI Booking Assistant API
// @version 1.0
// @description Conversational booking assistant with document Q&A
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, &cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	llmProvider, err := llm.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize LLM provider", zap.Error(err))
	}
	defer llmProvider.Close()

	embedder := embedding.NewGeminiProvider(&cfg.Gemini)
	store := vectorstore.NewStore(cfg.RAG.IndexPath, log)

	userRepo := repository.NewUserRepository(pool, log)
	bookingRepo := repository.NewBookingRepository(pool, log)
	directory := repository.NewMemoryDirectory(repository.DefaultDoctors(), repository.DefaultFAQs())

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	ragService := service.NewRAGService(llmProvider, embedder, store, &cfg.RAG, log)
	ingestService := service.NewIngestService(embedder, store, &cfg.RAG, log)
	mailService := service.NewMailService(&cfg.SMTP, log)
	chatService := service.NewChatService(ragService, bookingRepo, mailService, log)
	authService := service.NewAuthService(userRepo, jwtManager, log)
	directoryService := service.NewDirectoryService(directory, log)

	router := api.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewChatHandler(chatService),
		handlers.NewDocumentHandler(ingestService, log),
		handlers.NewBookingHandler(bookingRepo, directoryService),
		jwtManager,
		log,
	)
	app := router.Setup()

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
