package repository

import (
	"context"

	"staybnb/internal/domain"

	"gorm.io/gorm"
)

type SpotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) *SpotRepository {
	return &SpotRepository{db: db}
}

// GetAll returns every spot with the associations the list shaping needs.
// Images are ordered by id so the lowest-id preview image wins.
func (r *SpotRepository) GetAll(ctx context.Context) ([]domain.Spot, error) {
	var spots []domain.Spot
	err := r.db.WithContext(ctx).
		Preload("Reviews").
		Preload("SpotImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("spot_images.id ASC")
		}).
		Find(&spots).Error
	return spots, err
}

// GetByOwnerID returns the spots owned by a user, shaped like GetAll.
func (r *SpotRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Spot, error) {
	var spots []domain.Spot
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Reviews").
		Preload("SpotImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("spot_images.id ASC")
		}).
		Find(&spots).Error
	return spots, err
}

// GetByID fetches a bare spot, as the guards need it.
func (r *SpotRepository) GetByID(ctx context.Context, id int64) (*domain.Spot, error) {
	var spot domain.Spot
	if err := r.db.WithContext(ctx).First(&spot, id).Error; err != nil {
		return nil, err
	}
	return &spot, nil
}

// GetByIDWithDetails fetches a spot joined with reviews, images and owner
// for the detail endpoint.
func (r *SpotRepository) GetByIDWithDetails(ctx context.Context, id int64) (*domain.Spot, error) {
	var spot domain.Spot
	err := r.db.WithContext(ctx).
		Preload("Reviews").
		Preload("SpotImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("spot_images.id ASC")
		}).
		Preload("Owner").
		First(&spot, id).Error
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepository) Create(ctx context.Context, spot *domain.Spot) error {
	return r.db.WithContext(ctx).Create(spot).Error
}

// Save persists every field of an already-loaded spot.
func (r *SpotRepository) Save(ctx context.Context, spot *domain.Spot) error {
	return r.db.WithContext(ctx).Save(spot).Error
}

func (r *SpotRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Spot{}, id).Error
}
