package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"exam-service/internal/config"
	"exam-service/internal/event"
	"exam-service/internal/handlers"
	"exam-service/internal/repository"
	"exam-service/internal/service"
)

func main() {
	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("progress store (%s): %v", cfg.StoreBackend, err)
	}
	defer store.Close()

	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, study events will not be published")
	}

	questionRepo := repository.NewQuestionRepository(cfg.QuestionFile)
	sessionRepo := repository.NewSessionRepository()

	userService := service.NewUserService(store)
	sessionService := service.NewSessionService(sessionRepo, questionRepo, store)
	statsService := service.NewStatsService(store, questionRepo)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.Register(r,
		handlers.NewUserHandler(userService),
		handlers.NewQuizHandler(sessionService, userService),
		handlers.NewStatsHandler(statsService),
		publisher,
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"questions":       questionRepo.Count(),
			"active_sessions": sessionRepo.Count(),
		})
	})

	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func openStore(cfg *config.Config) (repository.ProgressStore, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		return repository.NewSQLiteStore(cfg.SQLitePath)
	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return repository.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return repository.NewFileStore(cfg.ProgressFile), nil
	}
}
