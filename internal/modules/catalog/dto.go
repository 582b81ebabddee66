package catalog

import "makeupshop/internal/domain"

type CreatePortfolioRequest struct {
	Category   string   `json:"category" binding:"required"`
	MakeupName string   `json:"makeup_name" binding:"required"`
	Info       string   `json:"info"`
	Price      int      `json:"price" binding:"required"`
	ImgSrcs    []string `json:"img_srcs"`
}

// ImageEdit either deletes a portfolio image or replaces its source.
type ImageEdit struct {
	ImageID int64  `json:"image_id" binding:"required"`
	Src     string `json:"src,omitempty"`
	Delete  bool   `json:"delete,omitempty"`
}

// UpdatePortfolioRequest carries optional field updates; nil pointers
// leave the field untouched. Image edits are applied before fields.
type UpdatePortfolioRequest struct {
	Category   *string     `json:"category,omitempty"`
	MakeupName *string     `json:"makeup_name,omitempty"`
	Info       *string     `json:"info,omitempty"`
	Price      *int        `json:"price,omitempty"`
	ImageEdits []ImageEdit `json:"image_edits,omitempty"`
}

type PortfolioImageResponse struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
}

type PortfolioResponse struct {
	ID           int64                    `json:"id"`
	ArtistID     int64                    `json:"artist_id"`
	Category     string                   `json:"category"`
	MakeupName   string                   `json:"makeup_name"`
	Info         string                   `json:"info"`
	Price        int                      `json:"price"`
	AverageStars string                   `json:"average_stars"`
	Images       []PortfolioImageResponse `json:"images"`
}

func toPortfolioResponse(p *domain.Portfolio) PortfolioResponse {
	images := make([]PortfolioImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, PortfolioImageResponse{ID: img.ID, Src: img.Src})
	}
	return PortfolioResponse{
		ID:           p.ID,
		ArtistID:     p.ArtistID,
		Category:     string(p.Category),
		MakeupName:   p.MakeupName,
		Info:         p.Info,
		Price:        p.Price,
		AverageStars: p.AverageStars,
		Images:       images,
	}
}

func toPortfolioResponses(rows []domain.Portfolio) []PortfolioResponse {
	out := make([]PortfolioResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toPortfolioResponse(&rows[i]))
	}
	return out
}

// PortfolioBrief is the summary shape used by the recommend endpoints.
type PortfolioBrief struct {
	ID           int64  `json:"id"`
	ArtistID     int64  `json:"artist_id"`
	MakeupName   string `json:"makeup_name"`
	Category     string `json:"category"`
	Price        int    `json:"price"`
	AverageStars string `json:"average_stars"`
}

func toPortfolioBriefs(rows []domain.Portfolio) []PortfolioBrief {
	out := make([]PortfolioBrief, 0, len(rows))
	for _, p := range rows {
		out = append(out, PortfolioBrief{
			ID:           p.ID,
			ArtistID:     p.ArtistID,
			MakeupName:   p.MakeupName,
			Category:     string(p.Category),
			Price:        p.Price,
			AverageStars: p.AverageStars,
		})
	}
	return out
}
