package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/countdial/internal/database"
	"github.com/jask/countdial/internal/database/repository"
)

// Journal records countdown runs.
type Journal struct {
	Sessions *repository.SessionRepo
	Now      func() time.Time
}

// Run describes a finished countdown run.
type Run struct {
	Planned   int
	Elapsed   int
	Outcome   string
	StartedAt time.Time
}

func (j *Journal) now() time.Time {
	if j.Now != nil {
		return j.Now().UTC().Truncate(time.Second)
	}
	return database.Now()
}

// Record stores a run that ended now. Runs that never counted a second and
// did not complete are not worth keeping and are skipped.
func (j *Journal) Record(ctx context.Context, run Run) (*repository.Session, error) {
	if j == nil || j.Sessions == nil {
		return nil, fmt.Errorf("journal: not configured")
	}
	switch run.Outcome {
	case repository.OutcomeCompleted, repository.OutcomePaused, repository.OutcomeAbandoned:
	default:
		return nil, fmt.Errorf("journal: unknown outcome %q", run.Outcome)
	}
	if run.Elapsed <= 0 && run.Outcome != repository.OutcomeCompleted {
		return nil, nil
	}
	ended := j.now()
	started := run.StartedAt.UTC().Truncate(time.Second)
	if started.IsZero() || started.After(ended) {
		started = ended.Add(-time.Duration(run.Elapsed) * time.Second)
	}
	s := repository.Session{
		ID:             uuid.NewString(),
		PlannedSeconds: run.Planned,
		ElapsedSeconds: run.Elapsed,
		Outcome:        run.Outcome,
		StartedAt:      started,
		EndedAt:        ended,
	}
	if err := j.Sessions.Insert(ctx, s); err != nil {
		return nil, fmt.Errorf("journal: record session: %w", err)
	}
	return &s, nil
}

// Recent lists the newest sessions.
func (j *Journal) Recent(ctx context.Context, limit int) ([]repository.Session, error) {
	if j == nil || j.Sessions == nil {
		return nil, nil
	}
	return j.Sessions.Recent(ctx, limit)
}

// Today summarises sessions that ended since local midnight.
func (j *Journal) Today(ctx context.Context, loc *time.Location) (repository.SessionSummary, error) {
	if j == nil || j.Sessions == nil {
		return repository.SessionSummary{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	now := j.now().In(loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return j.Sessions.SummarySince(ctx, midnight)
}
