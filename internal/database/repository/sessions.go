package repository

import (
	"context"
	"database/sql"
	"time"
)

// SessionRepo handles journaled countdown runs.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Insert(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, planned_seconds, elapsed_seconds, outcome, started_at, ended_at)
	VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.PlannedSeconds, s.ElapsedSeconds, s.Outcome, s.StartedAt.UTC(), s.EndedAt.UTC())
	return err
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, planned_seconds, elapsed_seconds, outcome, started_at, ended_at
	FROM sessions WHERE id = ?`, id)
	var s Session
	if err := row.Scan(&s.ID, &s.PlannedSeconds, &s.ElapsedSeconds, &s.Outcome, &s.StartedAt, &s.EndedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Recent lists the newest sessions first.
func (r *SessionRepo) Recent(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, planned_seconds, elapsed_seconds, outcome, started_at, ended_at
	FROM sessions ORDER BY ended_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.PlannedSeconds, &s.ElapsedSeconds, &s.Outcome, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SummarySince aggregates sessions that ended at or after since.
func (r *SessionRepo) SummarySince(ctx context.Context, since time.Time) (SessionSummary, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*),
	       COALESCE(SUM(CASE WHEN outcome = 'completed' THEN 1 ELSE 0 END), 0),
	       COALESCE(SUM(elapsed_seconds), 0)
	FROM sessions WHERE ended_at >= ?`, since.UTC())
	var sum SessionSummary
	if err := row.Scan(&sum.Sessions, &sum.Completed, &sum.ElapsedSeconds); err != nil {
		return SessionSummary{}, err
	}
	return sum, nil
}
