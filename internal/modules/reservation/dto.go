package reservation

import "makeupshop/internal/domain"

type CreateReservationRequest struct {
	ModelID         int64  `json:"model_id" binding:"required"`
	PortfolioID     int64  `json:"portfolio_id" binding:"required"`
	ReservationDate string `json:"reservation_date" binding:"required"`
	ReservationTime string `json:"reservation_time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReservationResponse struct {
	ID              int64  `json:"id"`
	ModelID         int64  `json:"model_id"`
	PortfolioID     int64  `json:"portfolio_id"`
	Status          string `json:"status"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	HasReview       bool   `json:"has_review"`
}

func toReservationResponse(rv *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              rv.ID,
		ModelID:         rv.ModelID,
		PortfolioID:     rv.PortfolioID,
		Status:          string(rv.Status),
		ReservationDate: rv.ReservationDate,
		ReservationTime: rv.ReservationTime,
		HasReview:       rv.HasReview,
	}
}

func toReservationResponses(rows []domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toReservationResponse(&rows[i]))
	}
	return out
}
