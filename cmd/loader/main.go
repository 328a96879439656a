package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shrujal-srinath/GECC-Database/internal/app"
	"github.com/shrujal-srinath/GECC-Database/internal/config"
	"github.com/shrujal-srinath/GECC-Database/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	csvPath := flag.String("csv", "", "path to the merged stats CSV produced by the ingest tool")
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "usage: loader -csv <stats.csv>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	svc, db, err := app.NewImportService(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	f, err := os.Open(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open csv: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	summary, err := svc.LoadCSV(context.Background(), f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}

	logger.Info("import complete",
		"csv", *csvPath,
		"rows_created", summary.RowsCreated,
		"players_created", summary.PlayersCreated,
		"players_updated", summary.PlayersUpdated,
		"rows_skipped", summary.RowsSkipped,
	)
}
