package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/countdial/internal/database/repository"
)

// DefaultPresets are seeded into an empty journal.
var DefaultPresets = []struct {
	Name    string
	Seconds int
}{
	{"Minute", 60},
	{"Tea", 180},
	{"Short break", 300},
	{"Long break", 900},
	{"Pomodoro", 1500},
	{"Hour", 3600},
}

// SeedDefaults ensures baseline presets exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	presetRepo := repository.NewPresetRepo(db)
	existing, err := presetRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	for idx, p := range DefaultPresets {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("preset:"+p.Name)).String()
		if err := presetRepo.Upsert(ctx, repository.Preset{ID: id, Name: p.Name, Seconds: p.Seconds, SortOrder: idx}); err != nil {
			return err
		}
	}
	return nil
}
