package spot

import "staybnb/internal/domain"

// avgStars returns the mean rating, or nil for a spot with no reviews so
// the field is omitted from the response instead of serializing NaN.
func avgStars(reviews []domain.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}

	total := 0
	for _, r := range reviews {
		total += r.Stars
	}

	avg := float64(total) / float64(len(reviews))
	return &avg
}

// previewURL picks the representative image. Images arrive ordered by id,
// so the first preview=true match is the lowest-id one.
func previewURL(images []domain.SpotImage) string {
	for _, img := range images {
		if img.Preview {
			return img.URL
		}
	}
	return ""
}

func shapeSummary(s domain.Spot) SpotSummary {
	return SpotSummary{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Country:      s.Country,
		Lat:          s.Lat,
		Lng:          s.Lng,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		AvgRating:    avgStars(s.Reviews),
		PreviewImage: previewURL(s.SpotImages),
	}
}

func shapeSummaries(spots []domain.Spot) []SpotSummary {
	out := make([]SpotSummary, 0, len(spots))
	for _, s := range spots {
		out = append(out, shapeSummary(s))
	}
	return out
}

func shapeDetail(s domain.Spot) SpotDetail {
	images := make([]ImageInfo, 0, len(s.SpotImages))
	for _, img := range s.SpotImages {
		images = append(images, ImageInfo{ID: img.ID, URL: img.URL, Preview: img.Preview})
	}

	var owner OwnerInfo
	if s.Owner != nil {
		owner = OwnerInfo{ID: s.Owner.ID, Firstname: s.Owner.Firstname, Lastname: s.Owner.Lastname}
	}

	return SpotDetail{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		Country:     s.Country,
		Lat:         s.Lat,
		Lng:         s.Lng,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		NumReviews:  len(s.Reviews),
		AvgRating:   avgStars(s.Reviews),
		SpotImages:  images,
		Owner:       owner,
	}
}

func shapeBookingsForOwner(bookings []domain.Booking) []BookingOwnerView {
	out := make([]BookingOwnerView, 0, len(bookings))
	for _, b := range bookings {
		var renter OwnerInfo
		if b.User != nil {
			renter = OwnerInfo{ID: b.User.ID, Firstname: b.User.Firstname, Lastname: b.User.Lastname}
		}
		out = append(out, BookingOwnerView{
			ID:        b.ID,
			SpotID:    b.SpotID,
			UserID:    b.UserID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
			User:      renter,
		})
	}
	return out
}

func shapeBookingsPublic(bookings []domain.Booking) []BookingPublicView {
	out := make([]BookingPublicView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingPublicView{
			SpotID:    b.SpotID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
		})
	}
	return out
}
