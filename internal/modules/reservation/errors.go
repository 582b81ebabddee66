package reservation

import "errors"

var (
	ErrModelNotFound       = errors.New("model not found")
	ErrArtistNotFound      = errors.New("artist not found")
	ErrPortfolioNotFound   = errors.New("portfolio not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrValidation          = errors.New("validation error")
)
