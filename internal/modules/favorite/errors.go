package favorite

import "errors"

var (
	ErrModelNotFound     = errors.New("model not found")
	ErrArtistNotFound    = errors.New("artist not found")
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrAlreadyFavorited  = errors.New("already favorited")
	ErrFavoriteNotFound  = errors.New("favorite not found")
)
