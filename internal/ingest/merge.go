package ingest

// MergedTable holds one row per (player_name, tournament_id) pair with both
// batting and bowling facts.
type MergedTable struct {
	Columns map[string]struct{}
	Rows    []Row
}

type mergeKey struct {
	playerName       string
	tournamentNumber int64
}

// Merge outer-joins the batting and bowling tables on (player_name,
// tournament_id). On column collisions the batting value wins when present;
// the bowling value fills the gap otherwise. A pair present on only one side
// still produces a row, with the other side's fields absent (not zero).
func Merge(batting, bowling Table) MergedTable {
	out := MergedTable{Columns: make(map[string]struct{}, len(batting.Columns)+len(bowling.Columns))}
	for col := range batting.Columns {
		out.Columns[col] = struct{}{}
	}
	for col := range bowling.Columns {
		out.Columns[col] = struct{}{}
	}

	index := make(map[mergeKey]int, len(batting.Rows))
	for _, row := range batting.Rows {
		merged := Row{
			PlayerName:       row.PlayerName,
			TournamentNumber: row.TournamentNumber,
			Fields:           make(map[string]string, len(row.Fields)),
		}
		for col, value := range row.Fields {
			merged.Fields[col] = value
		}
		index[mergeKey{row.PlayerName, row.TournamentNumber}] = len(out.Rows)
		out.Rows = append(out.Rows, merged)
	}

	for _, row := range bowling.Rows {
		key := mergeKey{row.PlayerName, row.TournamentNumber}
		at, ok := index[key]
		if !ok {
			merged := Row{
				PlayerName:       row.PlayerName,
				TournamentNumber: row.TournamentNumber,
				Fields:           make(map[string]string, len(row.Fields)),
			}
			for col, value := range row.Fields {
				merged.Fields[col] = value
			}
			index[key] = len(out.Rows)
			out.Rows = append(out.Rows, merged)
			continue
		}

		merged := out.Rows[at]
		for col, value := range row.Fields {
			if existing, present := merged.Fields[col]; present && existing != "" {
				continue
			}
			if value == "" {
				continue
			}
			merged.Fields[col] = value
		}
	}

	return out
}
