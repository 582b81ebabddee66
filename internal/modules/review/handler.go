package review

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
	rg.POST("/models/:modelId/reviews", h.Create)
	rg.GET("/models/:modelId/reviews", h.ListByModel)
	rg.GET("/portfolios/:portfolioId/reviews", h.ListByPortfolio)
}

func (h *Handler) Create(c *gin.Context) {
	modelID, err := strconv.ParseInt(c.Param("modelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid model id")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	rv, err := h.service.Create(c.Request.Context(), modelID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) ListByModel(c *gin.Context) {
	modelID, err := strconv.ParseInt(c.Param("modelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid model id")
		return
	}

	rows, err := h.service.ListByModel(c.Request.Context(), modelID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ListByPortfolio(c *gin.Context) {
	portfolioID, err := strconv.ParseInt(c.Param("portfolioId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid portfolio id")
		return
	}

	rows, err := h.service.ListByPortfolio(c.Request.Context(), portfolioID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrModelNotFound):
		response.Error(c, http.StatusNotFound, "MODEL_NOT_FOUND", err.Error())
	case errors.Is(err, ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "RESERVATION_NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyReviewed):
		response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", err.Error())
	case errors.Is(err, ErrInvalidReviewState):
		response.Error(c, http.StatusBadRequest, "INVALID_REVIEW_STATE", err.Error())
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}
