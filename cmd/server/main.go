package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"covid-screening-bot/config"
	"covid-screening-bot/internal/cache"
	"covid-screening-bot/internal/pkg/logger"
	"covid-screening-bot/internal/places"
	"covid-screening-bot/internal/repository"
	"covid-screening-bot/internal/service"
	"covid-screening-bot/internal/transport/rest"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zl.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		zl.Fatal("failed to ping MongoDB", "error", err)
	}
	zl.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		zl.Fatal("failed to ping Redis", "error", err)
	}
	zl.Info("connected to Redis")

	placesClient, err := places.NewGoogleClient(cfg.MapsAPIKey)
	if err != nil {
		zl.Fatal("failed to build places client", "error", err)
	}

	labelStore := cache.NewLabelStore(rdb)
	statsRepo := repository.NewCaseStatsRepo(db)

	container := &rest.Container{
		Questions: service.NewQuestionService(labelStore, zl),
		Cards:     service.NewCardService(labelStore, zl),
		Stats:     service.NewStatsService(statsRepo, zl),
		Hours:     service.NewHoursService(placesClient, zl),
		Log:       zl,
	}
	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		zl.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen and serve", "error", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", "error", err)
	}
	zl.Info("server exited")
}
