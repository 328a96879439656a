package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/xuri/excelize/v2"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	"github.com/shrujal-srinath/GECC-Database/internal/platform/logging"
)

// headerScanRows is how deep into a sheet we look for the real header row
// before falling back to row 0.
const headerScanRows = 5

var sheetNumberPattern = regexp.MustCompile(`(\d+)`)

// Row is one normalized sheet row tagged with its tournament number.
type Row struct {
	PlayerName       string
	TournamentNumber int64
	// Fields maps canonical column name to the raw cell text. Missing keys
	// mean the sheet had no such column; empty values mean an empty cell.
	Fields map[string]string
}

// Table is the concatenation of every numbered sheet in one workbook.
type Table struct {
	// Columns are the canonical columns seen across the workbook's sheets.
	Columns map[string]struct{}
	Rows    []Row
}

// ParseWorkbook normalizes every numbered sheet of the workbook at path.
// Sheets whose name carries no digit are skipped silently; any read error
// aborts the run. Sheet contents are normalized on a bounded worker pool and
// reassembled in sheet order, so output is deterministic.
func ParseWorkbook(path string, kind WorkbookKind, workers int, logger *logging.Logger) (Table, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = 4
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, errors.Wrapf(err, "open %s workbook %s", kind, path)
	}
	defer func() { _ = f.Close() }()

	type sheetJob struct {
		name   string
		number int64
		rows   [][]string
	}

	jobs := make([]sheetJob, 0, len(f.GetSheetList()))
	for _, sheetName := range f.GetSheetList() {
		match := sheetNumberPattern.FindString(sheetName)
		if match == "" {
			logger.Debug("skipping sheet without tournament number", "sheet", sheetName)
			continue
		}
		number, err := strconv.ParseInt(match, 10, 64)
		if err != nil {
			logger.Debug("skipping sheet without tournament number", "sheet", sheetName)
			continue
		}

		rows, err := f.GetRows(sheetName)
		if err != nil {
			return Table{}, errors.Wrapf(err, "read sheet %q", sheetName)
		}

		jobs = append(jobs, sheetJob{name: sheetName, number: number, rows: rows})
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return Table{}, errors.Wrap(err, "create sheet worker pool")
	}
	defer pool.Release()

	sheetTables := make([]Table, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		i, job := i, job
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			sheetTables[i] = normalizeSheet(job.rows, job.number, kind)
		}); err != nil {
			wg.Done()
			return Table{}, errors.Wrapf(err, "submit sheet %q to worker pool", job.name)
		}
	}
	wg.Wait()

	out := Table{Columns: make(map[string]struct{})}
	for i, st := range sheetTables {
		for col := range st.Columns {
			out.Columns[col] = struct{}{}
		}
		out.Rows = append(out.Rows, st.Rows...)
		logger.Info("processed sheet",
			"workbook", string(kind),
			"sheet", jobs[i].name,
			"tournament", jobs[i].number,
			"rows", len(st.Rows),
		)
	}

	return out, nil
}

// normalizeSheet applies header detection, column harmonization, and
// player-name cleaning to one sheet's raw cells.
func normalizeSheet(rows [][]string, number int64, kind WorkbookKind) Table {
	headerIdx := findHeaderRow(rows)
	if headerIdx >= len(rows) {
		return Table{Columns: map[string]struct{}{}}
	}

	columns := canonicalColumns(rows[headerIdx], kind)

	table := Table{Columns: make(map[string]struct{}, len(columns))}
	for _, col := range columns {
		if col == "" || col == ColPlayerName {
			continue
		}
		table.Columns[col] = struct{}{}
	}

	for _, raw := range rows[headerIdx+1:] {
		if isBlankRow(raw) {
			continue
		}

		row := Row{TournamentNumber: number, Fields: make(map[string]string, len(columns))}
		for i, col := range columns {
			if col == "" || i >= len(raw) {
				continue
			}
			value := strings.TrimSpace(raw[i])
			if col == ColPlayerName {
				row.PlayerName = player.CleanName(value)
				continue
			}
			row.Fields[col] = value
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// findHeaderRow scans the first few rows for the player-name header token.
// Sheets with decorative title rows put the real header below row 0.
func findHeaderRow(rows [][]string) int {
	limit := headerScanRows
	if len(rows) < limit {
		limit = len(rows)
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.TrimSpace(cell) == headerToken {
				return i
			}
		}
	}
	return 0
}

func canonicalColumns(header []string, kind WorkbookKind) []string {
	out := make([]string, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if canonical, ok := columnRenames[name]; ok {
			name = canonical
		}
		if kind == KindBowling {
			if renamed, ok := bowlingRenames[name]; ok {
				name = renamed
			}
		}
		out[i] = name
	}
	return out
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
