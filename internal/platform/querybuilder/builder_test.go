package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("playing_role", "Batsman")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE playing_role = $1 ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Batsman" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderLeftJoinAndGroupBy(t *testing.T) {
	query, args, err := Select("p.id", "p.name", "SUM(s.runs_scored) AS total_runs").
		From("players p").
		LeftJoin("player_tournament_stats s ON s.player_id = p.id").
		GroupBy("p.id", "p.name").
		OrderBy("total_runs DESC NULLS LAST", "p.id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.id, p.name, SUM(s.runs_scored) AS total_runs FROM players p" +
		" LEFT JOIN player_tournament_stats s ON s.player_id = p.id" +
		" GROUP BY p.id, p.name ORDER BY total_runs DESC NULLS LAST, p.id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderMultiRowWithConflictSuffix(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("name", "batting_style").
		Values("Ms Dhoni", "Right-hand bat").
		Values("V Kohli", "Right-hand bat").
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (name, batting_style) VALUES ($1, $2), ($3, $4) ON CONFLICT (name) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "Ms Dhoni" || args[3] != "Right-hand bat" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("batting_style", "Left-hand bat").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET batting_style = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Left-hand bat" || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("player_tournament_stats").ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM player_tournament_stats" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, args, err = DeleteFrom("player_tournament_stats").Where(Eq("id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM player_tournament_stats WHERE id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name string `db:"name"`
		Year int    `db:"year"`
		Skip string `db:"-"`
	}

	query, args, err := InsertModel("tournaments", row{Name: "Tournament 7", Year: 2024}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO tournaments (name, year) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Tournament 7" || args[1] != 2024 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
