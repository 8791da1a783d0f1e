package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/countdial/internal/config"
	"github.com/jask/countdial/internal/database"
	"github.com/jask/countdial/internal/database/repository"
	"github.com/jask/countdial/internal/service"
	"github.com/jask/countdial/internal/sound"
	"github.com/jask/countdial/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	variant := flag.String("variant", cfg.Dial.Variant, "dial variant (offekt, pulse)")
	seconds := flag.Int("seconds", cfg.Dial.InitialSeconds, "initial countdown in seconds")
	noJournal := flag.Bool("no-journal", false, "do not record sessions")
	withSound := flag.Bool("sound", cfg.Sound.Enabled, "play a chime when the countdown expires")
	debugLog := flag.String("debug-log", cfg.Log.File, "write debug log to this file")
	writeConfig := flag.Bool("write-config", false, "save the effective settings to the config file and exit")
	flag.Parse()

	cfg.Dial.Variant = *variant
	cfg.Dial.InitialSeconds = *seconds
	cfg.Journal.Enabled = cfg.Journal.Enabled && !*noJournal
	cfg.Sound.Enabled = *withSound
	cfg.Log.File = *debugLog

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *writeConfig {
		if err := config.Save(cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
		return
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "countdial")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		// the TUI owns the terminal
		log.SetOutput(io.Discard)
	}

	var (
		repos    tui.Repos
		services tui.Services
	)
	if cfg.Journal.Enabled {
		db, err := openJournal(ctx, cfg.Journal.Path)
		if err != nil {
			log.Printf("warn: journal disabled: %v", err)
		} else {
			defer db.Close()
			repos.Presets = repository.NewPresetRepo(db)
			services.Journal = &service.Journal{Sessions: repository.NewSessionRepo(db)}
			services.Maintenance = &service.MaintenanceService{DB: db}
		}
	}

	if cfg.Sound.Enabled {
		spk := sound.NewSpeaker(cfg.Sound.Volume)
		if err := spk.Init(); err != nil {
			log.Printf("warn: sound disabled: %v", err)
		} else {
			defer spk.Close()
			services.Sound = spk
		}
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	p := tea.NewProgram(tui.New(ctx, cfg, repos, services, loc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// openJournal migrates, opens and seeds the session journal.
func openJournal(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}
