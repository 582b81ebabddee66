package reservation

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
	rg.POST("/reservations", h.Create)
	rg.PATCH("/reservations/:reservationId/status", h.UpdateStatus)
	rg.GET("/artists/:artistId/reservations", h.ListByArtist)
	rg.GET("/models/:modelId/reservations", h.ListByModel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	rv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("reservationId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid reservation id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation_id": id, "status": req.Status})
}

func (h *Handler) ListByArtist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("artistId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid artist id")
		return
	}

	rows, err := h.service.ListByArtist(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ListByModel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("modelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid model id")
		return
	}

	rows, err := h.service.ListByModel(c.Request.Context(), id)
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
	case errors.Is(err, ErrArtistNotFound):
		response.Error(c, http.StatusNotFound, "ARTIST_NOT_FOUND", err.Error())
	case errors.Is(err, ErrPortfolioNotFound):
		response.Error(c, http.StatusNotFound, "PORTFOLIO_NOT_FOUND", err.Error())
	case errors.Is(err, ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "RESERVATION_NOT_FOUND", err.Error())
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}
