package domain

import "time"

// FavoriteArtist links a model to an artist they saved. The composite
// unique index enforces at most one live row per (model, artist) pair.
type FavoriteArtist struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ModelID   int64     `json:"model_id" gorm:"not null;index;uniqueIndex:idx_model_artist"`
	ArtistID  int64     `json:"artist_id" gorm:"not null;index;uniqueIndex:idx_model_artist"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (FavoriteArtist) TableName() string { return "favorite_artists" }

// FavoritePortfolio is the same protocol for the portfolio target kind.
type FavoritePortfolio struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ModelID     int64     `json:"model_id" gorm:"not null;index;uniqueIndex:idx_model_portfolio"`
	PortfolioID int64     `json:"portfolio_id" gorm:"not null;index;uniqueIndex:idx_model_portfolio"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (FavoritePortfolio) TableName() string { return "favorite_portfolios" }
