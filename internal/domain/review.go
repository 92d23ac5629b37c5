package domain

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	SpotID    int64     `json:"spotId" gorm:"index"`
	UserID    int64     `json:"userId"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
