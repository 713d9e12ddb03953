package entity

import "time"

type FavoriteCity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_city" json:"-"`
	CityName  string    `gorm:"size:100;not null;uniqueIndex:idx_favorite_user_city" json:"city_name"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}
