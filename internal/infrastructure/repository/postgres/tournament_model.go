package postgres

import "time"

type tournamentTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Year      int       `db:"year"`
	CreatedAt time.Time `db:"created_at"`
}

type tournamentInsertModel struct {
	Name string `db:"name"`
	Year int    `db:"year"`
}
