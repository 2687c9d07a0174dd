package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"snaptok/internal/mocks"
	"snaptok/internal/model"
	"snaptok/internal/service"
)

func newTestRedirectRouter(h *RedirectHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/:slug", h.Redirect)
	return router
}

func newMockedShortener(ctrl *gomock.Controller) (*service.LocalShortener, *mocks.MockMySQLRepositoryInterface, *mocks.MockRedisRepositoryInterface) {
	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
	mockBloom := mocks.NewMockBloomServiceInterface(ctrl)
	return service.NewLocalShortener(mockMySQL, mockRedis, mockBloom, "https://snap.tok", 10), mockMySQL, mockRedis
}

func TestRedirectHandler_Redirect(t *testing.T) {
	t.Run("known slug redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shortener, _, mockRedis := newMockedShortener(ctrl)
		mockRedis.EXPECT().GetSlugTarget(gomock.Any(), "aB3dE9xK").
			Return("https://v16.tiktokcdn.com/video/play/abc/", nil)

		router := newTestRedirectRouter(NewRedirectHandler(shortener))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/aB3dE9xK", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://v16.tiktokcdn.com/video/play/abc/", w.Header().Get("Location"))
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shortener, mockMySQL, mockRedis := newMockedShortener(ctrl)
		mockRedis.EXPECT().GetSlugTarget(gomock.Any(), "missing0").Return("", assert.AnError)
		mockMySQL.EXPECT().GetShortLinkBySlug(gomock.Any(), "missing0").Return(nil, assert.AnError)

		router := newTestRedirectRouter(NewRedirectHandler(shortener))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/missing0", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("expired slug is 410", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		past := time.Now().Add(-time.Minute)
		shortener, mockMySQL, mockRedis := newMockedShortener(ctrl)
		mockRedis.EXPECT().GetSlugTarget(gomock.Any(), "stale123").Return("", assert.AnError)
		mockMySQL.EXPECT().GetShortLinkBySlug(gomock.Any(), "stale123").Return(&model.ShortLink{
			Slug:      "stale123",
			ExpiresAt: &past,
		}, nil)

		router := newTestRedirectRouter(NewRedirectHandler(shortener))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/stale123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusGone, w.Code)
	})
}
