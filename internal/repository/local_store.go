package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/pkg/entity"
	_ "modernc.org/sqlite"
)

const (
	habitsStorageKey = "dailypulse_habits"
	logsStorageKey   = "dailypulse_logs"
)

// LocalStore keeps each user's habits and logs as two JSON documents in a
// SQLite key/value table, the way a browser keeps them in local storage.
type LocalStore struct {
	db *sql.DB
}

// OpenLocalStore opens (or creates) the store at path. ":memory:" gives an
// in-memory database.
func OpenLocalStore(path string) (*LocalStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.New("creating db directory error: " + err.Error())
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.New("opening database error: " + err.Error())
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, errors.New("setting pragma " + p + " error: " + err.Error())
		}
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS storage (
		user_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, key)
	)`)
	if err != nil {
		db.Close()
		return nil, errors.New("running migrations error: " + err.Error())
	}
	return &LocalStore{db: db}, nil
}

func (ls *LocalStore) Close() error {
	return ls.db.Close()
}

func (ls *LocalStore) Load(ctx context.Context, userID uuid.UUID) (*entity.PulseData, error) {
	rawHabits, err := ls.get(ctx, userID, habitsStorageKey)
	if err != nil {
		return nil, err
	}
	if rawHabits == nil {
		return nil, errorvalues.ErrNoStoredData
	}
	data := entity.PulseData{Logs: entity.Logs{}}
	if err := sonic.Unmarshal(rawHabits, &data.Habits); err != nil {
		return nil, errors.New("decoding stored habits error: " + err.Error())
	}
	rawLogs, err := ls.get(ctx, userID, logsStorageKey)
	if err != nil {
		return nil, err
	}
	if rawLogs != nil {
		if err := sonic.Unmarshal(rawLogs, &data.Logs); err != nil {
			return nil, errors.New("decoding stored logs error: " + err.Error())
		}
	}
	if data.Logs == nil {
		data.Logs = entity.Logs{}
	}
	for day, log := range data.Logs {
		if log.Progress == nil {
			log.Progress = entity.HabitProgress{}
		}
		log.Date = day
		data.Logs[day] = log
	}
	return &data, nil
}

func (ls *LocalStore) Save(ctx context.Context, userID uuid.UUID, data *entity.PulseData) error {
	if data == nil {
		return errors.New("pulse data is nil")
	}
	habits, err := sonic.Marshal(data.Habits)
	if err != nil {
		return errors.New("encoding habits error: " + err.Error())
	}
	storedLogs := data.Logs
	if storedLogs == nil {
		storedLogs = entity.Logs{}
	}
	logs, err := sonic.Marshal(storedLogs)
	if err != nil {
		return errors.New("encoding logs error: " + err.Error())
	}
	tx, err := ls.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.New("starting transaction error: " + err.Error())
	}
	for key, value := range map[string][]byte{habitsStorageKey: habits, logsStorageKey: logs} {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO storage (user_id, key, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			userID.String(), key, string(value),
		)
		if err != nil {
			tx.Rollback()
			return errors.New("storing " + key + " error: " + err.Error())
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.New("committing storage error: " + err.Error())
	}
	return nil
}

// Clear removes everything stored for the user.
func (ls *LocalStore) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := ls.db.ExecContext(ctx, `DELETE FROM storage WHERE user_id = ?`, userID.String())
	if err != nil {
		return errors.New("clearing storage error: " + err.Error())
	}
	return nil
}

func (ls *LocalStore) get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error) {
	var value string
	err := ls.db.QueryRowContext(ctx, `SELECT value FROM storage WHERE user_id = ? AND key = ?`, userID.String(), key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("reading " + key + " error: " + err.Error())
	}
	return []byte(value), nil
}
