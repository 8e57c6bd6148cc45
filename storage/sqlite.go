package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/they4kman/sweeper/scoreboard"
)

const nameSetting = "name"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		difficulty TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		score INTEGER NOT NULL,
		PRIMARY KEY (difficulty, position)
	);`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`,
}

// SQLiteStore keeps the scoreboard state in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "creating directory for %s", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "setting busy timeout")
	}

	for _, statement := range schema {
		if _, err := db.Exec(statement); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "creating tables")
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (store *SQLiteStore) Load() (scoreboard.State, error) {
	state := scoreboard.State{Leaderboard: make(map[string][]scoreboard.Entry)}

	rows, err := store.db.Query(`SELECT difficulty, name, score FROM scores ORDER BY difficulty, position`)
	if err != nil {
		return scoreboard.State{}, errors.Wrap(err, "querying scores")
	}
	defer rows.Close()

	for rows.Next() {
		var difficulty string
		var entry scoreboard.Entry
		if err := rows.Scan(&difficulty, &entry.Name, &entry.Score); err != nil {
			return scoreboard.State{}, errors.Wrap(err, "scanning score")
		}
		state.Leaderboard[difficulty] = append(state.Leaderboard[difficulty], entry)
	}
	if err := rows.Err(); err != nil {
		return scoreboard.State{}, errors.Wrap(err, "reading scores")
	}

	err = store.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, nameSetting).Scan(&state.Name)
	if err != nil && err != sql.ErrNoRows {
		return scoreboard.State{}, errors.Wrap(err, "reading name")
	}

	return state, nil
}

func (store *SQLiteStore) Save(state scoreboard.State) (err error) {
	tx, err := store.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM scores`); err != nil {
		return errors.Wrap(err, "clearing scores")
	}
	for difficulty, entries := range state.Leaderboard {
		for position, entry := range entries {
			_, err = tx.Exec(
				`INSERT INTO scores (difficulty, position, name, score) VALUES (?, ?, ?, ?)`,
				difficulty, position, entry.Name, entry.Score,
			)
			if err != nil {
				return errors.Wrap(err, "inserting score")
			}
		}
	}

	_, err = tx.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		nameSetting, state.Name,
	)
	if err != nil {
		return errors.Wrap(err, "saving name")
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing")
	}
	return nil
}

func (store *SQLiteStore) Close() error {
	return store.db.Close()
}
