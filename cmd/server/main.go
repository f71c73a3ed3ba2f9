package main

import (
	"log"

	"grainmarket-be/internal/catalog"
	"grainmarket-be/internal/config"
	"grainmarket-be/internal/db"
	"grainmarket-be/internal/exchange"
	"grainmarket-be/internal/handler"
	"grainmarket-be/internal/logger"
	"grainmarket-be/internal/metrics"
	"grainmarket-be/internal/middleware"
	"grainmarket-be/internal/readings"
	"grainmarket-be/internal/user"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	user.SetJWTSecret(cfg.JWTSecret)

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	exchangeRepo := exchange.NewRepository(database)
	exchangeSvc := exchange.NewService(exchangeRepo)

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo, exchangeRepo)

	readingsRepo := readings.NewRepository(database)
	readingsSvc := readings.NewService(readingsRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	reg := metrics.NewRegistry()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	h := handler.New(exchangeSvc, catalogSvc, readingsSvc, userSvc, reg)
	h.RegisterRoutes(r)

	log.Printf("🚀 Ledger API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(r.Run(":" + cfg.AppPort))
}
