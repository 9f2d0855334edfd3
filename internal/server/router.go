package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/handlers"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/middleware"
)

type RouterConfig struct {
	ServiceName         string
	ChatHandler         *handlers.ChatHandler
	JournalHandler      *handlers.JournalHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// The Streamlit dashboard runs on whatever host/port the student picked,
	// so CORS stays wide open like the original deployment.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
	}))
	router.Use(otelgin.Middleware(cfg.ServiceName))
	if cfg.RequestIDMiddleware != nil {
		router.Use(cfg.RequestIDMiddleware.Attach())
	}

	router.GET("/", handlers.Root)
	router.GET("/healthcheck", handlers.HealthCheck)

	// Chat
	router.POST("/chat", cfg.ChatHandler.PostChat)
	router.GET("/chat/:user_id", cfg.ChatHandler.GetHistory)

	// Journal
	router.POST("/journal", cfg.JournalHandler.PostJournal)
	router.GET("/journal/:user_id", cfg.JournalHandler.GetEntries)

	return router
}
