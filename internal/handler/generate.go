package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"snaptok/internal/model"
	"snaptok/internal/service"
)

// GenerateHandler handles short link generation
type GenerateHandler struct {
	store service.ShortURLStore
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(store service.ShortURLStore) *GenerateHandler {
	return &GenerateHandler{store: store}
}

// Generate handles POST /api/v1/shortlink/generate
// @Summary Generate a short link
// @Description Returns the live short link for the given URL, creating one on first request
// @Tags shortlink
// @Accept json
// @Produce json
// @Param request body model.GenerateRequest true "Generate request"
// @Success 200 {object} Response{data=model.GenerateResponse}
// @Router /api/v1/shortlink/generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	sl, err := h.store.GetOrCreate(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidResource) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid request: empty url",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate short link: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data: model.GenerateResponse{
			Slug:      sl.Slug,
			Shortened: sl.ShortURL,
		},
	})
}

// Health handles GET /health
// @Summary Health check
// @Success 200 {object} Response
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "ok",
	})
}

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
