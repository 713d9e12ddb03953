package entity

import "time"

type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Username        string         `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email           string         `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash    string         `gorm:"size:120;not null" json:"-"`
	TemperatureUnit Unit           `gorm:"size:10;default:'celsius'" json:"temperature_unit"`
	CreatedAt       time.Time      `json:"created_at"`
	Favorites       []FavoriteCity `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
