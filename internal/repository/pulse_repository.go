package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/limbo/dailypulse/pkg/entity"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// PulseRepository mirrors a user's habits and daily logs in PostgreSQL.
type PulseRepository struct {
	conn PgConnection
}

func NewPulseRepo(cfg DBConfig) *PulseRepository {
	return &PulseRepository{
		conn: newPool(cfg, "pulseRepo"),
	}
}

func NewPulseRepoWithConn(conn PgConnection) *PulseRepository {
	pingConn(conn, "pulseRepo")
	return &PulseRepository{
		conn: conn,
	}
}

func (pr *PulseRepository) Load(ctx context.Context, userID uuid.UUID) (*entity.PulseData, error) {
	var exists bool
	row := pr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM pulse_profiles WHERE user_id = $1);`, userID)
	if err := row.Scan(&exists); err != nil {
		return nil, errors.New("inspecting if pulse profile exists error: " + err.Error())
	}
	if !exists {
		return nil, errorvalues.ErrNoStoredData
	}
	habits, err := pr.loadHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := pr.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entity.PulseData{Habits: habits, Logs: logs}, nil
}

func (pr *PulseRepository) loadHabits(ctx context.Context, userID uuid.UUID) ([]entity.Habit, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT id, name, icon, category, kind, target, color FROM habits WHERE user_id = $1 ORDER BY position;`,
		userID,
	)
	if err != nil {
		return nil, errors.New("getting habits error: " + err.Error())
	}
	defer rows.Close()
	habits := make([]entity.Habit, 0, 8)
	for rows.Next() {
		var h entity.Habit
		var category, kind string
		if err := rows.Scan(&h.ID, &h.Name, &h.Icon, &category, &kind, &h.Target, &h.Color); err != nil {
			return nil, errors.New("habit row parsing error: " + err.Error())
		}
		h.Category = entity.Category(category)
		h.Kind = entity.HabitKind(kind)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected habit rows error: " + err.Error())
	}
	return habits, nil
}

func (pr *PulseRepository) loadLogs(ctx context.Context, userID uuid.UUID) (entity.Logs, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT day, COALESCE(mood, ''), progress FROM daily_logs WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, errors.New("getting daily logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make(entity.Logs)
	for rows.Next() {
		var day, mood string
		var raw []byte
		if err := rows.Scan(&day, &mood, &raw); err != nil {
			return nil, errors.New("daily log row parsing error: " + err.Error())
		}
		progress := entity.HabitProgress{}
		if len(raw) > 0 {
			if err := sonic.Unmarshal(raw, &progress); err != nil {
				return nil, errors.New("decoding progress of " + day + " error: " + err.Error())
			}
		}
		if progress == nil {
			progress = entity.HabitProgress{}
		}
		logs[day] = entity.DailyLog{Date: day, Mood: entity.Mood(mood), Progress: progress}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected daily log rows error: " + err.Error())
	}
	return logs, nil
}

// Save rewrites the user's habits and logs in one transaction.
func (pr *PulseRepository) Save(ctx context.Context, userID uuid.UUID, data *entity.PulseData) error {
	if data == nil {
		return errors.New("pulse data is nil")
	}
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting transaction error: " + err.Error())
	}
	if err := saveTx(ctx, tx, userID, data); err != nil {
		tx.Rollback(ctx)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving pulse data error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing pulse data error: " + err.Error())
	}
	return nil
}

// Clear removes the user's habits, logs and profile row.
func (pr *PulseRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting transaction error: " + err.Error())
	}
	for _, table := range []string{"daily_logs", "habits", "pulse_profiles"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1;`, userID); err != nil {
			tx.Rollback(ctx)
			return errors.New("clearing " + table + " error: " + err.Error())
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing clear error: " + err.Error())
	}
	return nil
}

func saveTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, data *entity.PulseData) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO pulse_profiles (user_id, saved_at) VALUES ($1, NOW()) ON CONFLICT (user_id) DO UPDATE SET saved_at = NOW();`,
		userID,
	)
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM habits WHERE user_id = $1;`, userID); err != nil {
		return err
	}
	for i, h := range data.Habits {
		_, err = tx.Exec(ctx,
			`INSERT INTO habits (id, user_id, position, name, icon, category, kind, target, color) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			h.ID, userID, i, h.Name, h.Icon, string(h.Category), string(h.Kind), h.Target, h.Color,
		)
		if err != nil {
			return err
		}
	}
	if _, err = tx.Exec(ctx, `DELETE FROM daily_logs WHERE user_id = $1;`, userID); err != nil {
		return err
	}
	for _, day := range pulse.SortedKeys(data.Logs) {
		log := data.Logs[day]
		progress, err := sonic.Marshal(log.Progress)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO daily_logs (user_id, day, mood, progress) VALUES ($1, $2, NULLIF($3, ''), $4);`,
			userID, day, string(log.Mood), progress,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
