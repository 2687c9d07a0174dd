package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"snaptok/internal/service"
)

// RedirectHandler serves slug redirects for the self-hosted shortener
type RedirectHandler struct {
	shortener *service.LocalShortener
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(shortener *service.LocalShortener) *RedirectHandler {
	return &RedirectHandler{shortener: shortener}
}

// Redirect handles GET /:slug
// @Summary Redirect to the stored resource
// @Description Redirects to the resource URI stored for the given slug
// @Tags shortlink
// @Param slug path string true "Slug"
// @Success 302
// @Router /:slug [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	slug := c.Param("slug")

	sl, err := h.shortener.Resolve(c.Request.Context(), slug)
	if err != nil {
		status := http.StatusNotFound
		message := "Short link not found"
		if errors.Is(err, service.ErrShortLinkExpired) {
			status = http.StatusGone
			message = "Short link has expired"
		}
		c.JSON(status, ErrorResponse{
			Code:    status,
			Message: message,
		})
		return
	}

	c.Redirect(http.StatusFound, sl.ResourceURI)
}
