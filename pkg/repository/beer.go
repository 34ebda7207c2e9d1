package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/opentap/tapwall/pkg/model"
)

var (
	ErrBeerNotFound  = errors.New("beer not found")
	ErrImageNotFound = errors.New("image not found")
)

// ListBeers returns beers ordered by ascending tap number. A negative
// limit returns everything, which is what the wall view wants.
func (r *Repository) ListBeers(ctx context.Context, skip int, limit int) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.DB.WithContext(ctx).Order("tap_number").Offset(skip).Limit(limit).Find(&beers)
	if result.Error != nil {
		return nil, result.Error
	}

	return beers, nil
}

func (r *Repository) GetBeer(ctx context.Context, beerID uint) (*model.Beer, error) {
	var beer model.Beer

	result := r.DB.WithContext(ctx).First(&beer, beerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBeerNotFound
		}

		return nil, result.Error
	}

	return &beer, nil
}

func (r *Repository) CreateBeer(ctx context.Context, in model.BeerCreate) (*model.Beer, error) {
	beer := model.Beer{
		Name:  in.Name,
		Style: in.Style,
		ABV:   in.ABV,
		OG:    in.OG,
		SG:    in.SG,
		IBU:   in.IBU,
		EBC:   in.EBC,
	}

	if in.TapNumber != nil {
		beer.TapNumber = *in.TapNumber
	}

	if result := r.DB.WithContext(ctx).Create(&beer); result.Error != nil {
		return nil, result.Error
	}

	return &beer, nil
}

// UpdateBeer applies a partial update: only the fields present in the
// payload change, and fields explicitly set to null are cleared.
func (r *Repository) UpdateBeer(ctx context.Context, beerID uint, in model.BeerUpdate) (*model.Beer, error) {
	beer, err := r.GetBeer(ctx, beerID)
	if err != nil {
		return nil, err
	}

	changes := in.Changes()
	if len(changes) == 0 {
		return beer, nil
	}

	if result := r.DB.WithContext(ctx).Model(&model.Beer{}).Where("id = ?", beerID).Updates(changes); result.Error != nil {
		return nil, result.Error
	}

	return r.GetBeer(ctx, beerID)
}

// DeleteBeer removes the row outright. Deleting an id that is already
// gone reports ErrBeerNotFound rather than silent success, so repeated
// deletes are visible to the caller.
func (r *Repository) DeleteBeer(ctx context.Context, beerID uint) error {
	if _, err := r.GetBeer(ctx, beerID); err != nil {
		return err
	}

	return r.DB.WithContext(ctx).Delete(&model.Beer{}, beerID).Error
}
