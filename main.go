package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"worldcup-service/config"
	"worldcup-service/database"
	"worldcup-service/dataset"
	"worldcup-service/logger"
	"worldcup-service/metrics"
	"worldcup-service/services"
	"worldcup-service/web"
)

func main() {
	logger.Println("Starting World Cup dashboard service...")

	cfg := config.Load()

	data, err := loadDataset(cfg)
	if err != nil {
		logger.Fatalf("Failed to load dataset: %v", err)
	}
	metrics.SetDatasetCounts(len(data.Tournaments), len(data.Matches), len(data.Players))
	logger.Printf("Dataset ready: %d tournaments, %d matches, %d player rows",
		len(data.Tournaments), len(data.Matches), len(data.Players))

	stats := services.NewStatsService(data, cfg.CacheTTL)

	wsHub := web.NewHub(stats)
	go wsHub.Run()

	server := web.NewServer(cfg, stats, wsHub)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Web server error: %v", err)
		}
	}()

	logger.Printf("Web server started on port %s", cfg.Port)
	logger.Println("Service is running. Press Ctrl+C to stop.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Println("Shutting down service...")

	server.Stop()

	logger.Println("Service stopped")
}

// loadDataset reads the dataset from the SQL snapshot when DATABASE_URL
// is set, otherwise from the CSV files in DATA_DIR.
func loadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	if cfg.DatabaseURL == "" {
		return dataset.LoadDir(cfg.DataDir)
	}

	db, driver, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	logger.Printf("Loading dataset from %s snapshot", driver)
	return database.NewStore(db, driver).LoadDataset(context.Background())
}
