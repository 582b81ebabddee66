package domain

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryDaily     Category = "DAILY"
	CategoryActor     Category = "ACTOR"
	CategoryInterview Category = "INTERVIEW"
	CategoryParty     Category = "PARTY"
	CategoryWedding   Category = "WEDDING"
	CategoryStudio    Category = "STUDIO"
	CategoryEtc       Category = "ETC"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryDaily, CategoryActor, CategoryInterview, CategoryParty, CategoryWedding, CategoryStudio, CategoryEtc:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Portfolio is a bookable makeup listing owned by an artist.
// MakeupName is globally unique; AverageStars is kept as a zero-padded
// decimal string ("0.00".."5.00") so it sorts correctly as text.
type Portfolio struct {
	ID           int64            `json:"id" gorm:"primaryKey"`
	ArtistID     int64            `json:"artist_id" gorm:"not null;index"`
	Category     Category         `json:"category" gorm:"not null"`
	MakeupName   string           `json:"makeup_name" gorm:"not null;uniqueIndex"`
	Info         string           `json:"info"`
	Price        int              `json:"price" gorm:"not null"`
	AverageStars string           `json:"average_stars" gorm:"not null;default:'0.00'"`
	IsBlock      bool             `json:"is_block" gorm:"not null;default:false"`
	Images       []PortfolioImage `json:"images" gorm:"foreignKey:PortfolioID"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Portfolio) TableName() string { return "portfolios" }

// PortfolioImage rows are owned by their portfolio and only mutated
// through the catalog update operation.
type PortfolioImage struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	PortfolioID int64  `json:"portfolio_id" gorm:"not null;index"`
	Src         string `json:"src" gorm:"not null"`
}

func (PortfolioImage) TableName() string { return "portfolio_images" }
