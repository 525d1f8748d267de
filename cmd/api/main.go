package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardparser/vcard/app/config"
	"github.com/cardparser/vcard/app/controllers"
	"github.com/cardparser/vcard/app/services"
	"github.com/cardparser/vcard/internal/refdata"
	"github.com/cardparser/vcard/internal/streetindex"
	"github.com/cardparser/vcard/routes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load("config/parser.yaml"); err != nil {
		panic(err)
	}
	loadEnvOverrides()

	logger, _ := zap.NewProduction()
	if config.C.Server.Mode != "release" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("starting cardparser API", zap.String("port", config.C.Server.Port))

	// Eagerly build the reference-data registry at boot, so the first
	// parsed card does not pay for it.
	refdata.Get()

	if err := loadStreetIndex(config.C.StreetIndex.BlobPath, logger); err != nil {
		logger.Warn("street index not loaded, address Strategy A will stay empty", zap.Error(err))
	}

	mongoClient, err := initMongoDB(config.C.Cache.MongoURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	database := mongoClient.Database(config.C.Cache.MongoDatabase)
	mongoCache, err := services.NewMongoCacheService(database, config.C.Cache.L1Size, logger)
	if err != nil {
		logger.Fatal("failed to create MongoDB cache tier", zap.Error(err))
	}

	var cacheService services.ICacheService = mongoCache
	if redisCache, err := services.NewRedisCacheService(config.C.Cache.RedisURL, logger); err != nil {
		logger.Warn("Redis unavailable, running on MongoDB cache tier only", zap.Error(err))
	} else {
		cacheService = services.NewHybridCacheService(redisCache, mongoCache, logger)
	}

	if err := mongoCache.WarmUp(context.Background(), config.C.Cache.L1Size/2); err != nil {
		logger.Warn("failed to warm up cache", zap.Error(err))
	}

	parseService := services.NewParseService(cacheService, logger)
	parseController := controllers.NewParseController(parseService, logger)

	if config.C.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, parseController)

	srv := &http.Server{
		Addr:    ":" + getPort(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	logger.Info("server exited")
}

func loadEnvOverrides() {
	viper.SetEnvPrefix("CARDPARSER")
	viper.AutomaticEnv()

	if v := viper.GetString("PORT"); v != "" {
		config.C.Server.Port = v
	}
	if v := viper.GetString("REDIS_URL"); v != "" {
		config.C.Cache.RedisURL = v
	}
	if v := viper.GetString("MONGO_URL"); v != "" {
		config.C.Cache.MongoURL = v
	}
	if v := viper.GetString("STREET_INDEX_PATH"); v != "" {
		config.C.StreetIndex.BlobPath = v
	}
}

func loadStreetIndex(path string, logger *zap.Logger) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := streetindex.Init(blob); err != nil {
		return err
	}
	logger.Info("street index loaded", zap.String("path", path), zap.Int("bytes", len(blob)))
	return nil
}

func initMongoDB(mongoURL string, logger *zap.Logger) (*mongo.Client, error) {
	logger.Info("connecting to MongoDB", zap.String("url", mongoURL))

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	logger.Info("connected to MongoDB")
	return client, nil
}

func getPort() string {
	if config.C.Server.Port != "" {
		return config.C.Server.Port
	}
	return "8080"
}
