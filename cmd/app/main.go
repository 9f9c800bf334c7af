package main

import (
	"github.com/jpviradiya/iTube/internal/app"
	"github.com/jpviradiya/iTube/pkg/cache"
	"github.com/jpviradiya/iTube/pkg/config"
	"github.com/jpviradiya/iTube/pkg/database"
	"github.com/jpviradiya/iTube/pkg/logger"
	"github.com/jpviradiya/iTube/pkg/queue"
	"github.com/jpviradiya/iTube/pkg/s3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == "your-secret-key-change-in-production" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// Redis backs view dedupe, like counters and rate limiting; the
	// service degrades without it instead of refusing to start.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, continuing without it: %v", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, notifications disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
