package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/countdial/internal/database"
	"github.com/jask/countdial/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPresetRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewPresetRepo(openTestDB(t))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, repo.Upsert(ctx, repository.Preset{ID: "b", Name: "Tea", Seconds: 180, SortOrder: 2}))
	require.NoError(t, repo.Upsert(ctx, repository.Preset{ID: "a", Name: "Egg", Seconds: 420, SortOrder: 1}))
	require.NoError(t, repo.Upsert(ctx, repository.Preset{ID: "b", Name: "Green tea", Seconds: 120, SortOrder: 2}))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Egg", list[0].Name)
	require.Equal(t, "Green tea", list[1].Name)
	require.Equal(t, 120, list[1].Seconds)

	p, err := repo.ByName(ctx, "egg")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, 420, p.Seconds)

	p, err = repo.ByName(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, p)

	require.Error(t, repo.Upsert(ctx, repository.Preset{ID: "c", Name: "Too long", Seconds: 3601}))

	require.NoError(t, repo.Delete(ctx, "a"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSessionRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewSessionRepo(openTestDB(t))

	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	sessions := []repository.Session{
		{ID: "s1", PlannedSeconds: 60, ElapsedSeconds: 60, Outcome: repository.OutcomeCompleted, StartedAt: base, EndedAt: base.Add(time.Minute)},
		{ID: "s2", PlannedSeconds: 300, ElapsedSeconds: 42, Outcome: repository.OutcomePaused, StartedAt: base.Add(time.Hour), EndedAt: base.Add(time.Hour + 42*time.Second)},
		{ID: "s3", PlannedSeconds: 1500, ElapsedSeconds: 1500, Outcome: repository.OutcomeCompleted, StartedAt: base.Add(2 * time.Hour), EndedAt: base.Add(2*time.Hour + 25*time.Minute)},
	}
	for _, s := range sessions {
		require.NoError(t, repo.Insert(ctx, s))
	}

	got, err := repo.Get(ctx, "s2")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, repository.OutcomePaused, got.Outcome)
	require.Equal(t, 42, got.ElapsedSeconds)
	require.True(t, got.StartedAt.Equal(base.Add(time.Hour)))

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "s3", recent[0].ID)
	require.Equal(t, "s2", recent[1].ID)

	sum, err := repo.SummarySince(ctx, base.Add(30*time.Minute))
	require.NoError(t, err)
	require.Equal(t, repository.SessionSummary{Sessions: 2, Completed: 1, ElapsedSeconds: 1542}, sum)

	bad := sessions[0]
	bad.ID = "s4"
	bad.Outcome = "exploded"
	require.Error(t, repo.Insert(ctx, bad))
}
