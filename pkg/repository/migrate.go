package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/opentap/tapwall/pkg/model"
)

type migrationStep struct {
	name string
	run  func(ctx context.Context) error
}

// Migrate brings a database file of unknown prior version up to the
// current schema. Every step is additive and safe to re-run, so the
// sequence can execute on every startup. A failing step aborts the rest
// of the sequence; the next run re-evaluates each check from scratch.
func (r *Repository) Migrate(ctx context.Context) error {
	steps := []migrationStep{
		{name: "create base schema", run: r.ensureBaseSchema},
		{name: "beer legacy columns", run: r.ensureBeerColumns},
		{name: "display settings table", run: r.ensureSettingsTable},
		{name: "display settings columns", run: r.ensureSettingsColumns},
		{name: "display settings singleton row", run: r.ensureSettingsRow},
		{name: "stored image table", run: r.ensureImageTable},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			r.Logger.Warn("migration aborted", zap.String("step", step.name), zap.Error(err))

			return fmt.Errorf("migration step %q: %w", step.name, err)
		}
	}

	return nil
}

func (r *Repository) ensureBaseSchema(ctx context.Context) error {
	var count int64

	err := r.DB.WithContext(ctx).
		Raw("SELECT count(*) FROM sqlite_master WHERE type='table' AND name='beer'").
		Scan(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	r.Logger.Info("beer table missing, creating base schema")

	return r.DB.WithContext(ctx).AutoMigrate(&model.Beer{}, &model.DisplaySettings{}, &model.StoredImage{})
}

func (r *Repository) ensureBeerColumns(ctx context.Context) error {
	cols, err := r.tableColumns(ctx, "beer")
	if err != nil {
		return err
	}

	var errs error

	if !cols["image"] {
		multierr.AppendInto(&errs, r.addColumn(ctx, "beer", "image", "TEXT"))
	}

	if !cols["image_id"] {
		multierr.AppendInto(&errs, r.addColumn(ctx, "beer", "image_id", "INTEGER"))
	}

	return errs
}

func (r *Repository) ensureSettingsTable(ctx context.Context) error {
	return r.DB.WithContext(ctx).Exec(
		"CREATE TABLE IF NOT EXISTS displaysettings (id INTEGER PRIMARY KEY, title TEXT, logo TEXT, logo_image_id INTEGER)").Error
}

func (r *Repository) ensureSettingsColumns(ctx context.Context) error {
	cols, err := r.tableColumns(ctx, "displaysettings")
	if err != nil {
		return err
	}

	var errs error

	if !cols["logo"] {
		multierr.AppendInto(&errs, r.addColumn(ctx, "displaysettings", "logo", "TEXT"))
	}

	if !cols["logo_image_id"] {
		multierr.AppendInto(&errs, r.addColumn(ctx, "displaysettings", "logo_image_id", "INTEGER"))
	}

	return errs
}

func (r *Repository) ensureSettingsRow(ctx context.Context) error {
	var count int64

	err := r.DB.WithContext(ctx).
		Raw("SELECT count(*) FROM displaysettings WHERE id = ?", model.SettingsID).
		Scan(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	r.Logger.Info("seeding display settings row")

	return r.DB.WithContext(ctx).Exec(
		"INSERT INTO displaysettings (id, title, logo, logo_image_id) VALUES (?, ?, NULL, NULL)",
		model.SettingsID, model.DefaultTitle).Error
}

func (r *Repository) ensureImageTable(ctx context.Context) error {
	return r.DB.WithContext(ctx).Exec(
		"CREATE TABLE IF NOT EXISTS storedimage (id INTEGER PRIMARY KEY, kind TEXT, ref_id INTEGER, content_type TEXT, data BLOB, created_at DATETIME)").Error
}

func (r *Repository) tableColumns(ctx context.Context, table string) (map[string]bool, error) {
	var rows []struct {
		Name string
	}

	err := r.DB.WithContext(ctx).Raw("PRAGMA table_info(" + table + ")").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	cols := make(map[string]bool, len(rows))
	for _, row := range rows {
		cols[row.Name] = true
	}

	return cols, nil
}

func (r *Repository) addColumn(ctx context.Context, table string, column string, sqlType string) error {
	r.Logger.Info("adding column", zap.String("table", table), zap.String("column", column))

	err := r.DB.WithContext(ctx).Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, sqlType)).Error
	if err != nil && strings.Contains(err.Error(), "duplicate column name") {
		// Another run got there first; the column exists, which is all
		// this step guarantees.
		return nil
	}

	return err
}
