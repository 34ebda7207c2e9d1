package repository

import (
	"context"

	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"github.com/opentap/tapwall/pkg/model"
)

// SeedSampleBeers fills a brand-new database with a few taps so the wall
// is not blank on first launch. It only ever fires when the beer table
// holds zero rows; existing data is never touched.
func (r *Repository) SeedSampleBeers(ctx context.Context) error {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Beer{}).Count(&count); result.Error != nil {
		return result.Error
	}

	if count > 0 {
		return nil
	}

	r.Logger.Info("empty beer table, inserting sample taps")

	samples := []model.Beer{
		{TapNumber: 1, Name: "Pale Ale", Style: pointy.String("APA"), ABV: pointy.Float64(5.2), IBU: pointy.Int(35), EBC: pointy.Int(12)},
		{TapNumber: 2, Name: "Stout", Style: pointy.String("Dry Stout"), ABV: pointy.Float64(4.5), IBU: pointy.Int(40), EBC: pointy.Int(80)},
		{TapNumber: 3, Name: "IPA", Style: pointy.String("West Coast IPA"), ABV: pointy.Float64(6.5), IBU: pointy.Int(60), EBC: pointy.Int(18)},
	}

	if result := r.DB.WithContext(ctx).Create(&samples); result.Error != nil {
		return result.Error
	}

	r.Logger.Info("seeded sample beers", zap.Int("count", len(samples)))

	return nil
}
