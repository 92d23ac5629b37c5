package domain

import "time"

// Booking is a renter's reservation of a spot. Read-only from the spots
// resource; renter identity is exposed only to the spot's owner.
type Booking struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	SpotID    int64     `json:"spotId" gorm:"index"`
	UserID    int64     `json:"userId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}
