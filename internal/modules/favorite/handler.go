package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"makeupshop/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/models/:modelId/favorites")
	{
		favorites.GET("/artists", h.ListArtists)
		favorites.POST("/artists/:artistId", h.AddArtist)
		favorites.DELETE("/artists/:artistId", h.RemoveArtist)
		favorites.GET("/portfolios", h.ListPortfolios)
		favorites.POST("/portfolios/:portfolioId", h.AddPortfolio)
		favorites.DELETE("/portfolios/:portfolioId", h.RemovePortfolio)
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return 0, false
	}
	return id, true
}

func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

func (h *Handler) AddArtist(c *gin.Context) {
	modelID, ok := pathID(c, "modelId")
	if !ok {
		return
	}
	artistID, ok := pathID(c, "artistId")
	if !ok {
		return
	}

	if err := h.service.AddArtist(c.Request.Context(), modelID, artistID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"model_id": modelID, "artist_id": artistID})
}

func (h *Handler) RemoveArtist(c *gin.Context) {
	modelID, ok := pathID(c, "modelId")
	if !ok {
		return
	}
	artistID, ok := pathID(c, "artistId")
	if !ok {
		return
	}

	if err := h.service.RemoveArtist(c.Request.Context(), modelID, artistID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"model_id": modelID, "artist_id": artistID})
}

func (h *Handler) ListArtists(c *gin.Context) {
	modelID, ok := pathID(c, "modelId")
	if !ok {
		return
	}

	page, err := h.service.ListArtists(c.Request.Context(), modelID, pageQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) AddPortfolio(c *gin.Context) {
	modelID, ok := pathID(c, "modelId")
	if !ok {
		return
	}
	portfolioID, ok := pathID(c, "portfolioId")
	if !ok {
		return
	}

	if err := h.service.AddPortfolio(c.Request.Context(), modelID, portfolioID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"model_id": modelID, "portfolio_id": portfolioID})
}

func (h *Handler) RemovePortfolio(c *gin.Context) {
	modelID, ok := pathID(c, "modelId")
	if !ok {
		return
	}
	portfolioID, ok := pathID(c, "portfolioId")
	if !ok {
		return
	}

	if err := h.service.RemovePortfolio(c.Request.Context(), modelID, portfolioID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"model_id": modelID, "portfolio_id": portfolioID})
}

func (h *Handler) ListPortfolios(c *gin.Context) {
	modelID, ok := pathID(c, "modelId")
	if !ok {
		return
	}

	page, err := h.service.ListPortfolios(c.Request.Context(), modelID, pageQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrModelNotFound):
		response.Error(c, http.StatusNotFound, "MODEL_NOT_FOUND", err.Error())
	case errors.Is(err, ErrArtistNotFound):
		response.Error(c, http.StatusNotFound, "ARTIST_NOT_FOUND", err.Error())
	case errors.Is(err, ErrPortfolioNotFound):
		response.Error(c, http.StatusNotFound, "PORTFOLIO_NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyFavorited):
		response.Error(c, http.StatusConflict, "ALREADY_FAVORITED", err.Error())
	case errors.Is(err, ErrFavoriteNotFound):
		response.Error(c, http.StatusNotFound, "FAVORITE_NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}
