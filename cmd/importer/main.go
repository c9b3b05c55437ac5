// Command importer loads the World Cup CSV trio into the SQL snapshot
// (Postgres or SQLite) that the service can serve from instead of the
// raw files.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"worldcup-service/config"
	"worldcup-service/database"
	"worldcup-service/dataset"
	"worldcup-service/logger"
)

func main() {
	cfg := config.Load()

	dataDir := flag.String("data", cfg.DataDir, "directory with the World Cup CSV files")
	databaseURL := flag.String("db", cfg.DatabaseURL, "snapshot target: postgres:// URL or SQLite file path")
	flag.Parse()

	if *databaseURL == "" {
		logger.Fatalf("No snapshot target: set DATABASE_URL or pass -db")
	}

	data, err := dataset.LoadDir(*dataDir)
	if err != nil {
		logger.Fatalf("Failed to load dataset: %v", err)
	}

	db, driver, err := database.Connect(*databaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	store := database.NewStore(db, driver)
	if err := store.ImportDataset(ctx, data); err != nil {
		logger.Fatalf("Import failed: %v", err)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		logger.Fatalf("Failed to read back row counts: %v", err)
	}

	printSummary(driver, counts)
	logger.Println("Import complete")
}

func printSummary(driver string, counts map[string]int) {
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("TABLE", "ROWS", "BACKEND")
	for _, name := range []string{"world_cups", "world_cup_matches", "world_cup_players"} {
		table.Append(name, strconv.Itoa(counts[name]), driver)
	}
	table.Render()
}
