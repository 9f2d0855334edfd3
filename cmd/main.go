package main

import (
	"context"
	"fmt"
	"os"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/clients/places"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/clients/rediscache"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/clients/textgen"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/db"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/handlers"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/middleware"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/observability"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/repos"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/server"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/services"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/utils"
)

const serviceName = "wellness-companion"

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing (no-op unless OTEL_ENABLED is set)
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if otelShutdown != nil {
		defer func() { _ = otelShutdown(context.Background()) }()
	}

	// Database
	dbService, err := db.NewDBService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos...")
	chatRepo := repos.NewChatMessageRepo(theDB, log)
	journalRepo := repos.NewJournalEntryRepo(theDB, log)

	// Clients
	log.Info("Setting up clients...")
	textgenClient, err := textgen.NewClient(textgen.LoadConfig(log), log)
	if err != nil {
		log.Error("Could not init text generation client", "error", err)
		os.Exit(1)
	}
	placesClient := places.NewClient(log)
	placeCache, err := rediscache.NewPlaceCache(log)
	if err != nil {
		log.Warn("Place cache init failed, continuing without it", "error", err)
	}
	if placeCache != nil {
		defer placeCache.Close()
	}

	// Agents + services
	log.Info("Setting up services...")
	rules := services.LoadRules(utils.GetEnv("AGENT_RULES_PATH", "", log), log)
	crisisDetector := services.NewCrisisDetector(rules, log)
	overloadDetector := services.NewOverloadDetector(rules, log)
	recommendationService := services.NewRecommendationService(rules, placesClient, placeCache, log)
	generatorService := services.NewGeneratorService(textgenClient, log)
	composerService := services.NewComposerService(crisisDetector, overloadDetector, recommendationService, generatorService, log)
	chatService := services.NewChatService(theDB, log, chatRepo, composerService)
	journalService := services.NewJournalService(theDB, log, journalRepo)

	// Handlers + router
	log.Info("Setting up router...")
	chatHandler := handlers.NewChatHandler(log, chatService)
	journalHandler := handlers.NewJournalHandler(log, journalService)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)

	router := server.NewRouter(server.RouterConfig{
		ServiceName:         serviceName,
		ChatHandler:         chatHandler,
		JournalHandler:      journalHandler,
		RequestIDMiddleware: requestIDMiddleware,
	})

	port := utils.GetEnv("PORT", "8000", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
