package domain

import "time"

type UserRole string

const (
	RoleArtist UserRole = "artist"
	RoleModel  UserRole = "model"
)

// User is the login account behind an artist or model profile.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Nickname     string    `json:"nickname" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
