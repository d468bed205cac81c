package main

import (
	"log"
	"net/http"

	"github.com/agnesederberg/Final-project-2/internal/config"
	"github.com/agnesederberg/Final-project-2/internal/database"
	"github.com/agnesederberg/Final-project-2/internal/handlers"
	"github.com/agnesederberg/Final-project-2/internal/kafka"
	"github.com/agnesederberg/Final-project-2/internal/middleware"
	"github.com/agnesederberg/Final-project-2/internal/redis"
	"github.com/agnesederberg/Final-project-2/internal/repository"
	"github.com/agnesederberg/Final-project-2/internal/router"
	"github.com/agnesederberg/Final-project-2/internal/session"
	"github.com/agnesederberg/Final-project-2/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	logger.InitLogger()

	cfg := config.Load()
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	repo := repository.NewGorm(db)

	// Sessions live in Redis; fall back to the in-process store when
	// Redis is not reachable so a dev setup still works.
	var store session.Store
	redisService, err := redis.NewService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Redis unavailable, using in-process session store")
		store = session.NewMemoryStore()
	} else {
		store = redisService
		defer redisService.Close()
	}
	sessions := session.NewManager(repo, store, []byte(cfg.SessionSecret), cfg.SessionTTL, cfg.RememberTTL)

	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	r := gin.Default()
	middleware.SetupPrometheus(r)
	r.Use(middleware.LoggerMiddleware())

	router.SetupRouter(r, sessions, router.Handlers{
		Auth:     handlers.NewAuthHandler(repo, sessions, producer, cfg.RememberTTL),
		Profile:  handlers.NewProfileHandler(repo, sessions, producer),
		Folder:   handlers.NewFolderHandler(repo, producer),
		Note:     handlers.NewNoteHandler(repo, producer),
		Category: handlers.NewCategoryHandler(repo),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
