package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"exam-service/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    registered_at TEXT NOT NULL,
    guest INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS progress (
    user_id TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(user_id)
);
`

// SQLiteStore is the embedded-database progress backend. The progress
// object is stored as a JSON column so the schema never chases the
// counter layout.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, name, registered_at, guest FROM users WHERE user_id = ?`, userID)
	return scanUser(row)
}

func (s *SQLiteStore) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, name, registered_at, guest FROM users WHERE name = ? LIMIT 1`, name)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var registeredAt string
	var guest int
	err := row.Scan(&u.UserID, &u.Name, &registeredAt, &guest)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if t, perr := time.Parse(time.RFC3339Nano, registeredAt); perr == nil {
		u.RegisteredAt = t
	}
	u.Guest = guest != 0
	return &u, nil
}

func (s *SQLiteStore) GetProgress(ctx context.Context, userID string) (*models.Progress, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM progress WHERE user_id = ?`, userID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	var p models.Progress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, rec *models.UserRecord) error {
	data, err := json.Marshal(rec.Progress)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	guest := 0
	if rec.User.Guest {
		guest = 1
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (user_id, name, registered_at, guest) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET name = excluded.name`,
		rec.User.UserID, rec.User.Name,
		rec.User.RegisteredAt.Format(time.RFC3339Nano), guest)
	if err != nil {
		return err
	}

	now := time.Now().Format(time.RFC3339Nano)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO progress (user_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		rec.User.UserID, string(data), now)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
