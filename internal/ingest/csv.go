package ingest

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
)

// WriteCSV writes the merged table in the fixed output column order, skipping
// columns that neither workbook supplied. Absent values are written as empty
// cells so "did not play" stays distinguishable from a recorded zero.
func WriteCSV(w io.Writer, merged MergedTable) error {
	header := make([]string, 0, len(outputColumns))
	for _, col := range outputColumns {
		if col == ColPlayerName || col == ColTournamentID {
			header = append(header, col)
			continue
		}
		if _, ok := merged.Columns[col]; ok {
			header = append(header, col)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	record := make([]string, len(header))
	for _, row := range merged.Rows {
		for i, col := range header {
			switch col {
			case ColPlayerName:
				record[i] = row.PlayerName
			case ColTournamentID:
				record[i] = strconv.FormatInt(row.TournamentNumber, 10)
			default:
				record[i] = row.Fields[col]
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
