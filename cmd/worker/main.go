package main

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cardparser/vcard/app/config"
	"github.com/cardparser/vcard/app/services"
	"github.com/cardparser/vcard/helpers/utils"
	"github.com/cardparser/vcard/internal/refdata"
	"github.com/cardparser/vcard/internal/streetindex"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Worker is the offline batch counterpart to cmd/api: it reads raw card
// text from stdin (one card's text per line, with a literal `\n` standing
// for a line break inside a card; blank lines are skipped), parses every
// card with the same
// ParseService used by the HTTP API so results land in the same cache,
// and writes one JSON ContactRecord per line to stdout.
func main() {
	if err := config.Load("config/parser.yaml"); err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	runID := utils.GenerateShortID()
	logger.Info("starting cardparser worker", zap.String("run_id", runID))

	refdata.Get()
	if blob, err := os.ReadFile(config.C.StreetIndex.BlobPath); err == nil {
		if err := streetindex.Init(blob); err != nil {
			logger.Warn("street index init failed", zap.Error(err))
		}
	} else {
		logger.Warn("street index blob not found, Strategy A will stay empty", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(config.C.Cache.MongoURL))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	database := mongoClient.Database(config.C.Cache.MongoDatabase)
	mongoCache, err := services.NewMongoCacheService(database, config.C.Cache.L1Size, logger)
	if err != nil {
		logger.Fatal("failed to create cache service", zap.Error(err))
	}

	parseService := services.NewParseService(mongoCache, logger)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runBatch(context.Background(), parseService, logger, runID)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-done:
		logger.Info("worker finished", zap.String("run_id", runID))
	case <-quit:
		logger.Info("shutting down worker, waiting for the batch to finish", zap.String("run_id", runID))
		<-done
	}
}

// runBatch reads card texts from stdin (one per line) and writes each
// parsed ContactRecord as a line of JSON to stdout.
func runBatch(ctx context.Context, parseService *services.ParseService, logger *zap.Logger, runID string) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	encoder := json.NewEncoder(os.Stdout)

	count, cacheHits := 0, 0
	for scanner.Scan() {
		text := strings.ReplaceAll(scanner.Text(), "\\n", "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		entry, cached, err := parseService.Parse(ctx, text)
		if err != nil {
			logger.Error("failed to parse card", zap.Error(err), zap.String("run_id", runID))
			continue
		}
		if cached {
			cacheHits++
		}
		count++

		if err := encoder.Encode(entry.Result); err != nil {
			logger.Error("failed to write result", zap.Error(err))
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("error reading stdin", zap.Error(err))
	}

	logger.Info("batch complete",
		zap.String("run_id", runID),
		zap.Int("cards_parsed", count),
		zap.Int("cache_hits", cacheHits))
}
