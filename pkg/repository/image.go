package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/opentap/tapwall/pkg/model"
)

// AttachBeerImage stores an uploaded image and points the beer at it.
// The previous image row, if any, stays in place; image content at a
// given id never changes, so stale references keep resolving.
func (r *Repository) AttachBeerImage(ctx context.Context, beerID uint, contentType string, data []byte) (*model.Beer, error) {
	beer, err := r.GetBeer(ctx, beerID)
	if err != nil {
		return nil, err
	}

	img := model.StoredImage{
		Kind:        model.ImageKindBeer,
		RefID:       &beer.ID,
		ContentType: contentType,
		Data:        data,
	}

	if result := r.DB.WithContext(ctx).Create(&img); result.Error != nil {
		return nil, result.Error
	}

	result := r.DB.WithContext(ctx).Model(&model.Beer{}).
		Where("id = ?", beer.ID).
		Update("image_id", img.ID)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.GetBeer(ctx, beerID)
}

// AttachLogo stores an uploaded logo and points the settings row at it.
func (r *Repository) AttachLogo(ctx context.Context, contentType string, data []byte) (*model.DisplaySettings, error) {
	settings, err := r.GetDisplaySettings(ctx)
	if err != nil {
		return nil, err
	}

	img := model.StoredImage{
		Kind:        model.ImageKindLogo,
		ContentType: contentType,
		Data:        data,
	}

	if result := r.DB.WithContext(ctx).Create(&img); result.Error != nil {
		return nil, result.Error
	}

	result := r.DB.WithContext(ctx).Model(&model.DisplaySettings{}).
		Where("id = ?", settings.ID).
		Update("logo_image_id", img.ID)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.GetDisplaySettings(ctx)
}

func (r *Repository) GetImage(ctx context.Context, imageID uint) (*model.StoredImage, error) {
	var img model.StoredImage

	result := r.DB.WithContext(ctx).First(&img, imageID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}

		return nil, result.Error
	}

	return &img, nil
}
