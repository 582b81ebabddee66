package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	ReservationExpected ReservationStatus = "EXPECTED"
	ReservationAccepted ReservationStatus = "ACCEPTED"
	ReservationRejected ReservationStatus = "REJECTED"
	ReservationCancel   ReservationStatus = "CANCEL"
	ReservationComplete ReservationStatus = "COMPLETE"
)

// ParseReservationStatus validates enum membership only. Any transition
// between valid statuses is allowed, including regressions from COMPLETE.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationExpected, ReservationAccepted, ReservationRejected, ReservationCancel, ReservationComplete:
		return ReservationStatus(s), nil
	}
	return "", fmt.Errorf("unknown reservation status %q", s)
}

// Reservation books a model against a portfolio. HasReview starts false
// and is set to true exactly once, when the review for it is created.
type Reservation struct {
	ID              int64             `json:"id" gorm:"primaryKey"`
	ModelID         int64             `json:"model_id" gorm:"not null;index"`
	PortfolioID     int64             `json:"portfolio_id" gorm:"not null;index"`
	Status          ReservationStatus `json:"status" gorm:"not null"`
	ReservationDate string            `json:"reservation_date" gorm:"not null"`
	ReservationTime string            `json:"reservation_time" gorm:"not null"`
	HasReview       bool              `json:"has_review" gorm:"not null;default:false"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Reservation) TableName() string { return "reservations" }
