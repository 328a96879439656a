package postgres

import "time"

type playerTableModel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	PlayingRole  string    `db:"playing_role"`
	BattingStyle string    `db:"batting_style"`
	BowlingStyle string    `db:"bowling_style"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type playerInsertModel struct {
	Name         string `db:"name"`
	PlayingRole  string `db:"playing_role"`
	BattingStyle string `db:"batting_style"`
	BowlingStyle string `db:"bowling_style"`
}
