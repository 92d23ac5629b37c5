package repository

import (
	"context"

	"staybnb/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// GetBySpotID returns all bookings of a spot with the renter preloaded,
// so the owner view can project {id, firstname, lastname}.
func (r *BookingRepository) GetBySpotID(ctx context.Context, spotID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Preload("User").
		Find(&bookings).Error
	return bookings, err
}
