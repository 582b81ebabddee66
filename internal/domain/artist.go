package domain

import "time"

type Artist struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Nickname     string    `json:"nickname" gorm:"not null"`
	Name         string    `json:"name"`
	ProfileImg   string    `json:"profile_img"`
	Gender       string    `json:"gender"`
	Email        string    `json:"email"`
	Introduction string    `json:"introduction"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Artist) TableName() string { return "artists" }
