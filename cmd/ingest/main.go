package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shrujal-srinath/GECC-Database/internal/config"
	"github.com/shrujal-srinath/GECC-Database/internal/ingest"
	"github.com/shrujal-srinath/GECC-Database/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	battingPath := flag.String("batting", "", "path to the batting workbook (.xlsx)")
	bowlingPath := flag.String("bowling", "", "path to the bowling workbook (.xlsx)")
	outputPath := flag.String("out", "stats.csv", "path for the merged output CSV")
	flag.Parse()

	if *battingPath == "" || *bowlingPath == "" {
		fmt.Fprintln(os.Stderr, "usage: ingest -batting <batting.xlsx> -bowling <bowling.xlsx> [-out stats.csv]")
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

	summary, err := ingest.Run(ingest.Options{
		BattingPath: *battingPath,
		BowlingPath: *bowlingPath,
		OutputPath:  *outputPath,
		Workers:     cfg.IngestWorkers,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ingest failed: %v\n", err)
		os.Exit(1)
	}

	logger.Info("ingest complete",
		"output", *outputPath,
		"batting_rows", summary.BattingRows,
		"bowling_rows", summary.BowlingRows,
		"merged_rows", summary.MergedRows,
	)
}
