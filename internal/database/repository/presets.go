package repository

import (
	"context"
	"database/sql"
)

// PresetRepo handles presets.
type PresetRepo struct {
	db *sql.DB
}

func NewPresetRepo(db *sql.DB) *PresetRepo { return &PresetRepo{db: db} }

func (r *PresetRepo) Upsert(ctx context.Context, p Preset) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO presets(id, name, seconds, sort_order) VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name, seconds=excluded.seconds, sort_order=excluded.sort_order;
	`, p.ID, p.Name, p.Seconds, p.SortOrder)
	return err
}

func (r *PresetRepo) ByName(ctx context.Context, name string) (*Preset, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, seconds, sort_order FROM presets WHERE name = ? COLLATE NOCASE`, name)
	var p Preset
	if err := row.Scan(&p.ID, &p.Name, &p.Seconds, &p.SortOrder); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PresetRepo) List(ctx context.Context) ([]Preset, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, seconds, sort_order FROM presets ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Preset
	for rows.Next() {
		var p Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.Seconds, &p.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PresetRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE id = ?`, id)
	return err
}
