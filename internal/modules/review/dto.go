package review

import "makeupshop/internal/domain"

type CreateReviewRequest struct {
	ReservationID int64    `json:"reservation_id" binding:"required"`
	Star          int      `json:"star" binding:"required"`
	Comment       string   `json:"comment,omitempty"`
	ImgSrcs       []string `json:"img_srcs,omitempty"`
}

type ReviewResponse struct {
	ID          int64    `json:"id"`
	PortfolioID int64    `json:"portfolio_id"`
	ModelID     int64    `json:"model_id"`
	Star        int      `json:"star"`
	Comment     string   `json:"comment,omitempty"`
	ImgSrcs     []string `json:"img_srcs,omitempty"`
}

func toReviewResponse(rv *domain.Review) ReviewResponse {
	srcs := make([]string, 0, len(rv.Images))
	for _, img := range rv.Images {
		srcs = append(srcs, img.Src)
	}
	return ReviewResponse{
		ID:          rv.ID,
		PortfolioID: rv.PortfolioID,
		ModelID:     rv.ModelID,
		Star:        rv.Star,
		Comment:     rv.Comment,
		ImgSrcs:     srcs,
	}
}
