package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"student-tracker/internal/config"
	"student-tracker/internal/db"
	apihttp "student-tracker/internal/http"
	"student-tracker/internal/repository"
	"student-tracker/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	client, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	database := db.Database(client, cfg)

	userRepo := repository.NewMongoUserRepository(database)
	classRepo := repository.NewMongoClassRepository(database)
	txRepo := repository.NewMongoTransactionRepository(database)
	planRepo := repository.NewMongoStudyPlanRepository(database)
	questionRepo := repository.NewMongoQuestionRepository(database)

	sessionTTL := time.Duration(cfg.SessionTTLDays) * 24 * time.Hour
	sessions := service.NewSessionService(cfg.JWTSecret, sessionTTL)

	var issueLimiter service.IssueRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			issueLimiter = service.NewRedisIssueRateLimiter(redisClient, 10*time.Minute, 30)
		}
		cancel()
	}

	userSvc := service.NewUserService(logger, userRepo)
	classSvc := service.NewClassService(classRepo)
	txSvc := service.NewTransactionService(txRepo)
	planSvc := service.NewStudyPlanService(planRepo)
	questionSvc := service.NewQuestionService(questionRepo)

	sessionHandler := apihttp.NewSessionHandler(logger, sessions, issueLimiter, cfg.IsProduction())
	userHandler := apihttp.NewUserHandler(logger, userSvc)
	classHandler := apihttp.NewClassHandler(logger, classSvc)
	txHandler := apihttp.NewTransactionHandler(logger, txSvc)
	planHandler := apihttp.NewStudyPlanHandler(logger, planSvc)
	questionHandler := apihttp.NewQuestionHandler(logger, questionSvc)

	router := apihttp.NewRouter(logger, sessions, sessionHandler, userHandler, classHandler, txHandler, planHandler, questionHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
