package spot

import (
	"time"

	"staybnb/internal/pkg/validator"
)

// SpotPayload carries the nine editable fields of a spot. Create and edit
// share it: edits are a full replace, never a merge. Zero values fail the
// required rules, so lat=0 or price=0 is rejected like a missing field.
type SpotPayload struct {
	Address     string  `json:"address" validate:"required"`
	City        string  `json:"city" validate:"required"`
	State       string  `json:"state" validate:"required"`
	Country     string  `json:"country" validate:"required"`
	Lat         float64 `json:"lat" validate:"required"`
	Lng         float64 `json:"lng" validate:"required"`
	Name        string  `json:"name" validate:"required,max=50"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
}

var fieldMessages = map[string]string{
	"address":     "Street address is required",
	"city":        "City is required",
	"state":       "State is required",
	"country":     "Country is required",
	"lat":         "Latitude is not valid",
	"lng":         "Longitude is not valid",
	"name":        "Name must be less than 50 characters",
	"description": "Description is required",
	"price":       "Price per day is required",
}

// Validate returns one documented message per violated field, or nil.
func (p SpotPayload) Validate() map[string]string {
	failures := validator.Validate(p)
	if failures == nil {
		return nil
	}

	msgs := make(map[string]string, len(failures))
	for field := range failures {
		msgs[field] = fieldMessages[field]
	}
	return msgs
}

type AddImageRequest struct {
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

// SpotSummary is a spot as the list endpoints serve it: derived fields
// attached, raw associations stripped.
type SpotSummary struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	AvgRating    *float64  `json:"avgRating,omitempty"`
	PreviewImage string    `json:"previewImage,omitempty"`
}

type OwnerInfo struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type ImageInfo struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

// SpotDetail is the get-by-id shape: numReviews/avgRating/Owner attached,
// raw reviews and user stripped, images kept with their ids.
type SpotDetail struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"ownerId"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	NumReviews  int         `json:"numReviews"`
	AvgRating   *float64    `json:"avgRating,omitempty"`
	SpotImages  []ImageInfo `json:"SpotImages"`
	Owner       OwnerInfo   `json:"Owner"`
}

// BookingOwnerView is the bookings listing as the spot's owner sees it:
// full rows including renter identity.
type BookingOwnerView struct {
	ID        int64     `json:"id"`
	SpotID    int64     `json:"spotId"`
	UserID    int64     `json:"userId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      OwnerInfo `json:"User"`
}

// BookingPublicView hides renter identity and record metadata from
// callers who do not own the spot.
type BookingPublicView struct {
	SpotID    int64     `json:"spotId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
