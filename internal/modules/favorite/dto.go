package favorite

import "makeupshop/internal/domain"

// ArtistSummary is the projection listed under a model's favorite
// artists.
type ArtistSummary struct {
	ArtistID   int64  `json:"artist_id"`
	Nickname   string `json:"nickname"`
	ProfileImg string `json:"profile_img"`
}

func toArtistSummary(a *domain.Artist) ArtistSummary {
	return ArtistSummary{
		ArtistID:   a.ID,
		Nickname:   a.Nickname,
		ProfileImg: a.ProfileImg,
	}
}

type PortfolioSummary struct {
	PortfolioID  int64  `json:"portfolio_id"`
	ArtistID     int64  `json:"artist_id"`
	MakeupName   string `json:"makeup_name"`
	Category     string `json:"category"`
	Price        int    `json:"price"`
	AverageStars string `json:"average_stars"`
}

func toPortfolioSummary(p *domain.Portfolio) PortfolioSummary {
	return PortfolioSummary{
		PortfolioID:  p.ID,
		ArtistID:     p.ArtistID,
		MakeupName:   p.MakeupName,
		Category:     string(p.Category),
		Price:        p.Price,
		AverageStars: p.AverageStars,
	}
}
