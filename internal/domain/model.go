package domain

import "time"

// Model is the customer role: browses portfolios, books reservations,
// keeps favorites and leaves reviews.
type Model struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Nickname      string    `json:"nickname" gorm:"not null"`
	Name          string    `json:"name"`
	ProfileImg    string    `json:"profile_img"`
	Gender        string    `json:"gender"`
	Email         string    `json:"email"`
	SkinType      string    `json:"skin_type"`
	PersonalColor string    `json:"personal_color"`
	Introduction  string    `json:"introduction"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Model) TableName() string { return "models" }
