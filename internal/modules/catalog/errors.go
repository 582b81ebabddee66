package catalog

import "errors"

var (
	ErrArtistNotFound    = errors.New("artist not found")
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrPortfolioExists   = errors.New("portfolio name already exists")
	ErrPortfolioBlocked  = errors.New("portfolio is blocked")
	ErrNotAuthorized     = errors.New("artist does not own this portfolio")
	ErrImageNotFound     = errors.New("portfolio image not found")
	ErrSearchNotFound    = errors.New("no search results")
	ErrInvalidCategory   = errors.New("invalid category")
)
