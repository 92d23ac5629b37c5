package repository

import (
	"context"

	"staybnb/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) GetBySpotID(ctx context.Context, spotID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Order("id ASC").
		Find(&reviews).Error
	return reviews, err
}
