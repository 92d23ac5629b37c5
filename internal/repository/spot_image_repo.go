package repository

import (
	"context"

	"staybnb/internal/domain"

	"gorm.io/gorm"
)

type SpotImageRepository struct {
	db *gorm.DB
}

func NewSpotImageRepository(db *gorm.DB) *SpotImageRepository {
	return &SpotImageRepository{db: db}
}

func (r *SpotImageRepository) Create(ctx context.Context, img *domain.SpotImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}
