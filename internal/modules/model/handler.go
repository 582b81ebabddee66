package model

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
	rg.POST("/models", h.Create)
	rg.GET("/models/:modelId", h.GetProfile)
	rg.PATCH("/models/:modelId", h.UpdateProfile)
}

func (h *Handler) Create(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("modelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid model id")
		return
	}

	m, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("modelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid model id")
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
	response.Success(c, http.StatusOK, gin.H{"model_id": id})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrModelNotFound) {
		response.Error(c, http.StatusNotFound, "MODEL_NOT_FOUND", err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
}
