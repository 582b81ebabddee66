package domain

import "time"

// Review is filed at most once per completed reservation. Portfolio and
// model references are immutable after creation.
type Review struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	PortfolioID int64         `json:"portfolio_id" gorm:"not null;index"`
	ModelID     int64         `json:"model_id" gorm:"not null;index"`
	Star        int           `json:"star" gorm:"not null"`
	Comment     string        `json:"comment" gorm:"size:200"`
	Images      []ReviewImage `json:"images" gorm:"foreignKey:ReviewID"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

type ReviewImage struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	ReviewID int64  `json:"review_id" gorm:"not null;index"`
	Src      string `json:"src" gorm:"not null"`
}

func (ReviewImage) TableName() string { return "review_images" }
