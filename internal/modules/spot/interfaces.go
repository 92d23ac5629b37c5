package spot

import (
	"context"

	"staybnb/internal/domain"
)

type SpotRepository interface {
	GetAll(ctx context.Context) ([]domain.Spot, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Spot, error)
	GetByID(ctx context.Context, id int64) (*domain.Spot, error)
	GetByIDWithDetails(ctx context.Context, id int64) (*domain.Spot, error)
	Create(ctx context.Context, spot *domain.Spot) error
	Save(ctx context.Context, spot *domain.Spot) error
	Delete(ctx context.Context, id int64) error
}

type SpotImageRepository interface {
	Create(ctx context.Context, img *domain.SpotImage) error
}

type BookingRepository interface {
	GetBySpotID(ctx context.Context, spotID int64) ([]domain.Booking, error)
}

type ReviewRepository interface {
	GetBySpotID(ctx context.Context, spotID int64) ([]domain.Review, error)
}
