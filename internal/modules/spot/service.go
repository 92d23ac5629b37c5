package spot

import (
	"context"
	"errors"

	"staybnb/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	spots    SpotRepository
	images   SpotImageRepository
	bookings BookingRepository
	reviews  ReviewRepository
}

func NewService(
	spots SpotRepository,
	images SpotImageRepository,
	bookings BookingRepository,
	reviews ReviewRepository,
) *Service {
	return &Service{
		spots:    spots,
		images:   images,
		bookings: bookings,
		reviews:  reviews,
	}
}

func (s *Service) ListSpots(ctx context.Context) ([]SpotSummary, error) {
	spots, err := s.spots.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return shapeSummaries(spots), nil
}

func (s *Service) ListSpotsByOwner(ctx context.Context, ownerID int64) ([]SpotSummary, error) {
	spots, err := s.spots.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return shapeSummaries(spots), nil
}

func (s *Service) GetSpot(ctx context.Context, spotID int64) (*SpotDetail, error) {
	spot, err := s.spots.GetByIDWithDetails(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	detail := shapeDetail(*spot)
	return &detail, nil
}

// CreateSpot stores a new spot owned by the authenticated caller. The
// owner is never taken from the payload.
func (s *Service) CreateSpot(ctx context.Context, ownerID int64, p SpotPayload) (*domain.Spot, error) {
	spot := &domain.Spot{
		OwnerID:     ownerID,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		Country:     p.Country,
		Lat:         p.Lat,
		Lng:         p.Lng,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}

	if err := s.spots.Create(ctx, spot); err != nil {
		return nil, err
	}

	return spot, nil
}

// AddImage attaches an image to an existing spot. A missing spot halts
// the request before any insert; a foreign-key violation covers the spot
// disappearing between the lookup and the insert.
func (s *Service) AddImage(ctx context.Context, spotID int64, req AddImageRequest) (*domain.SpotImage, error) {
	if _, err := s.spots.GetByID(ctx, spotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	img := &domain.SpotImage{
		SpotID:  spotID,
		URL:     req.URL,
		Preview: req.Preview,
	}

	if err := s.images.Create(ctx, img); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	return img, nil
}

// UpdateSpot overwrites all nine editable fields and saves the record
// before returning it. Full replace, not a merge.
func (s *Service) UpdateSpot(ctx context.Context, userID, spotID int64, p SpotPayload) (*domain.Spot, error) {
	spot, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	if spot.OwnerID != userID {
		return nil, ErrNotOwner
	}

	spot.Address = p.Address
	spot.City = p.City
	spot.State = p.State
	spot.Country = p.Country
	spot.Lat = p.Lat
	spot.Lng = p.Lng
	spot.Name = p.Name
	spot.Description = p.Description
	spot.Price = p.Price

	if err := s.spots.Save(ctx, spot); err != nil {
		return nil, err
	}

	return spot, nil
}

func (s *Service) DeleteSpot(ctx context.Context, userID, spotID int64) error {
	spot, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpotNotFound
		}
		return err
	}

	if spot.OwnerID != userID {
		return ErrNotOwner
	}

	return s.spots.Delete(ctx, spotID)
}

// ListBookings returns a spot's bookings plus whether the caller owns the
// spot; ownership decides how much the handler may reveal.
func (s *Service) ListBookings(ctx context.Context, callerID, spotID int64) ([]domain.Booking, bool, error) {
	spot, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrSpotNotFound
		}
		return nil, false, err
	}

	bookings, err := s.bookings.GetBySpotID(ctx, spotID)
	if err != nil {
		return nil, false, err
	}

	return bookings, spot.OwnerID == callerID, nil
}

func (s *Service) ListReviews(ctx context.Context, spotID int64) ([]domain.Review, error) {
	if _, err := s.spots.GetByID(ctx, spotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	return s.reviews.GetBySpotID(ctx, spotID)
}
