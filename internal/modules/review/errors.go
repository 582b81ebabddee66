package review

import "errors"

var (
	ErrModelNotFound       = errors.New("model not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyReviewed     = errors.New("reservation already reviewed")
	ErrInvalidReviewState  = errors.New("reservation is not complete")
	ErrInvalidRequest      = errors.New("invalid review request")
)
