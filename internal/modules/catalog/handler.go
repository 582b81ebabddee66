package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"makeupshop/internal/pkg/pagination"
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
	rg.POST("/artists/:artistId/portfolios", h.Create)
	rg.GET("/artists/:artistId/portfolios", h.ListByArtist)
	rg.PATCH("/artists/:artistId/portfolios/:portfolioId", h.Update)
	rg.GET("/portfolios/:portfolioId", h.Details)

	search := rg.Group("/search")
	{
		search.GET("", h.SearchByText)
		search.GET("/category/:category", h.SearchByCategory)
		search.GET("/artist/:artistId", h.SearchByArtist)
		search.GET("/all", h.SearchAll)
	}

	recommend := rg.Group("/recommend")
	{
		recommend.GET("/review", h.RecommendReview)
		recommend.GET("/recent", h.RecommendRecent)
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

func sortQuery(c *gin.Context) string {
	return c.DefaultQuery("sort", "recent")
}

func (h *Handler) Create(c *gin.Context) {
	artistID, ok := pathID(c, "artistId")
	if !ok {
		return
	}

	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), artistID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) ListByArtist(c *gin.Context) {
	artistID, ok := pathID(c, "artistId")
	if !ok {
		return
	}

	page, err := h.service.ListByArtist(c.Request.Context(), artistID, pageQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) Details(c *gin.Context) {
	portfolioID, ok := pathID(c, "portfolioId")
	if !ok {
		return
	}

	p, err := h.service.Details(c.Request.Context(), portfolioID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	artistID, ok := pathID(c, "artistId")
	if !ok {
		return
	}
	portfolioID, ok := pathID(c, "portfolioId")
	if !ok {
		return
	}

	var req UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), artistID, portfolioID, req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"portfolio_id": portfolioID})
}

func (h *Handler) SearchByText(c *gin.Context) {
	page, err := h.service.SearchByText(c.Request.Context(), c.Query("query"), pageQuery(c), sortQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) SearchByCategory(c *gin.Context) {
	page, err := h.service.SearchByCategory(c.Request.Context(), c.Param("category"), pageQuery(c), sortQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) SearchByArtist(c *gin.Context) {
	artistID, ok := pathID(c, "artistId")
	if !ok {
		return
	}

	page, err := h.service.SearchByArtist(c.Request.Context(), artistID, pageQuery(c), sortQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) SearchAll(c *gin.Context) {
	page, err := h.service.SearchAll(c.Request.Context(), pageQuery(c), sortQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) RecommendReview(c *gin.Context) {
	rows, err := h.service.RecommendReview(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) RecommendRecent(c *gin.Context) {
	rows, err := h.service.RecommendRecent(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrArtistNotFound):
		response.Error(c, http.StatusNotFound, "ARTIST_NOT_FOUND", err.Error())
	case errors.Is(err, ErrPortfolioNotFound):
		response.Error(c, http.StatusNotFound, "PORTFOLIO_NOT_FOUND", err.Error())
	case errors.Is(err, ErrImageNotFound):
		response.Error(c, http.StatusNotFound, "PORTFOLIO_IMAGE_NOT_FOUND", err.Error())
	case errors.Is(err, ErrSearchNotFound):
		response.Error(c, http.StatusNotFound, "SEARCH_NOT_FOUND", err.Error())
	case errors.Is(err, ErrPortfolioExists):
		response.Error(c, http.StatusConflict, "PORTFOLIO_ALREADY_EXISTS", err.Error())
	case errors.Is(err, ErrPortfolioBlocked):
		response.Error(c, http.StatusForbidden, "PORTFOLIO_BLOCKED", err.Error())
	case errors.Is(err, ErrNotAuthorized):
		response.Error(c, http.StatusForbidden, "NOT_AUTHORIZED", err.Error())
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, pagination.ErrInvalidSortCriteria):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}
