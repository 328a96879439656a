package ingest

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc"

	"github.com/shrujal-srinath/GECC-Database/internal/platform/logging"
)

// Options configures one pipeline run.
type Options struct {
	BattingPath string
	BowlingPath string
	OutputPath  string
	Workers     int
}

// Summary reports what a run produced; observational only.
type Summary struct {
	BattingRows int
	BowlingRows int
	MergedRows  int
}

// Run executes the whole spreadsheet-to-CSV pipeline: parse both workbooks
// (concurrently, they are independent files), outer-join them, write the flat
// CSV. Any failure aborts the run; rows already written stay on disk, this is
// one-shot batch tooling with no rollback.
func Run(opts Options, logger *logging.Logger) (Summary, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		batting, bowling    Table
		battingErr, bowlErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		batting, battingErr = ParseWorkbook(opts.BattingPath, KindBatting, opts.Workers, logger)
	})
	wg.Go(func() {
		bowling, bowlErr = ParseWorkbook(opts.BowlingPath, KindBowling, opts.Workers, logger)
	})
	wg.Wait()

	if battingErr != nil {
		return Summary{}, battingErr
	}
	if bowlErr != nil {
		return Summary{}, bowlErr
	}

	merged := Merge(batting, bowling)
	logger.Info("merged batting and bowling tables",
		"batting_rows", len(batting.Rows),
		"bowling_rows", len(bowling.Rows),
		"merged_rows", len(merged.Rows),
	)

	out, err := os.Create(opts.OutputPath)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "create output csv %s", opts.OutputPath)
	}
	defer func() { _ = out.Close() }()

	if err := WriteCSV(out, merged); err != nil {
		return Summary{}, err
	}
	if err := out.Close(); err != nil {
		return Summary{}, errors.Wrap(err, "close output csv")
	}

	return Summary{
		BattingRows: len(batting.Rows),
		BowlingRows: len(bowling.Rows),
		MergedRows:  len(merged.Rows),
	}, nil
}
