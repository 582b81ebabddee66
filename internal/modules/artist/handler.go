package artist

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
	rg.POST("/artists", h.Create)
	rg.GET("/artists/:artistId", h.GetProfile)
	rg.PATCH("/artists/:artistId", h.UpdateProfile)
}

func (h *Handler) Create(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("artistId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid artist id")
		return
	}

	a, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("artistId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid artist id")
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artist_id": id})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrArtistNotFound) {
		response.Error(c, http.StatusNotFound, "ARTIST_NOT_FOUND", err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
}
