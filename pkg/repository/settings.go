package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/opentap/tapwall/pkg/model"
)

// GetDisplaySettings returns the singleton settings row, creating it at
// the fixed key if a previous migration never got to seed it. The
// singleton invariant lives here: nothing else inserts into the table.
func (r *Repository) GetDisplaySettings(ctx context.Context) (*model.DisplaySettings, error) {
	var settings model.DisplaySettings

	result := r.DB.WithContext(ctx).First(&settings, model.SettingsID)
	if result.Error == nil {
		return &settings, nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	settings = model.DisplaySettings{ID: model.SettingsID, Title: model.DefaultTitle}

	if result := r.DB.WithContext(ctx).Create(&settings); result.Error != nil {
		return nil, result.Error
	}

	return &settings, nil
}

func (r *Repository) UpdateDisplaySettings(ctx context.Context, in model.DisplaySettingsUpdate) (*model.DisplaySettings, error) {
	settings, err := r.GetDisplaySettings(ctx)
	if err != nil {
		return nil, err
	}

	changes := in.Changes()
	if len(changes) == 0 {
		return settings, nil
	}

	result := r.DB.WithContext(ctx).Model(&model.DisplaySettings{}).
		Where("id = ?", model.SettingsID).
		Updates(changes)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.GetDisplaySettings(ctx)
}
