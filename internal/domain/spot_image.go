package domain

import "time"

// SpotImage is a photo attached to a spot. Preview marks the image used
// as the spot's representative thumbnail; when several images carry the
// flag, the one with the lowest id wins.
type SpotImage struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	SpotID    int64     `json:"spotId" gorm:"index"`
	URL       string    `json:"url"`
	Preview   bool      `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
