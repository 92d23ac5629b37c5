package domain

import "time"

// Spot is a listed property available for booking. The raw associations
// are never serialized directly; handlers flatten them into derived
// fields (avgRating, previewImage, numReviews, Owner).
type Spot struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	OwnerID     int64     `json:"ownerId" gorm:"index"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Name        string    `json:"name" gorm:"size:50"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Owner      *User       `json:"-" gorm:"foreignKey:OwnerID"`
	Reviews    []Review    `json:"-" gorm:"foreignKey:SpotID"`
	SpotImages []SpotImage `json:"-" gorm:"foreignKey:SpotID"`
	Bookings   []Booking   `json:"-" gorm:"foreignKey:SpotID"`
}
