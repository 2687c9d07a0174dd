package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaptok/internal/mocks"
	"snaptok/internal/model"
	"snaptok/internal/slug"
)

const testResource = "https://v16.tiktokcdn.com/video/play/abc/"

func TestNewLocalShortener(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
	mockBloom := mocks.NewMockBloomServiceInterface(ctrl)

	svc := NewLocalShortener(mockMySQL, mockRedis, mockBloom, "https://snap.tok", 0)

	assert.NotNil(t, svc)
	assert.Equal(t, "https://snap.tok", svc.domain)
	assert.Equal(t, 100, svc.maxRetries)
}

func TestLocalShortener_GetOrCreate(t *testing.T) {
	liveLink := &model.ShortLink{
		Slug:        "aB3dE9xK",
		ResourceURI: testResource,
		ShortURL:    "https://snap.tok/aB3dE9xK",
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name      string
		resource  string
		setupMock func(*mocks.MockMySQLRepositoryInterface, *mocks.MockRedisRepositoryInterface, *mocks.MockBloomServiceInterface)
		wantErr   error
		wantSlug  string
	}{
		{
			name:      "empty resource",
			resource:  "",
			setupMock: func(*mocks.MockMySQLRepositoryInterface, *mocks.MockRedisRepositoryInterface, *mocks.MockBloomServiceInterface) {},
			wantErr:   ErrInvalidResource,
		},
		{
			name:     "cache hit",
			resource: testResource,
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface, bloom *mocks.MockBloomServiceInterface) {
				redis.EXPECT().GetShortURL(gomock.Any(), testResource).Return("https://snap.tok/aB3dE9xK", nil)
				mysql.EXPECT().GetShortLinkByResource(gomock.Any(), testResource).Return(liveLink, nil)
			},
			wantSlug: "aB3dE9xK",
		},
		{
			name:     "database hit refreshes cache",
			resource: testResource,
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface, bloom *mocks.MockBloomServiceInterface) {
				redis.EXPECT().GetShortURL(gomock.Any(), testResource).Return("", errors.New("cache miss"))
				mysql.EXPECT().GetShortLinkByResource(gomock.Any(), testResource).Return(liveLink, nil)
				redis.EXPECT().SaveShortURL(gomock.Any(), testResource, liveLink.ShortURL, gomock.Any()).Return(nil)
				redis.EXPECT().SaveSlugTarget(gomock.Any(), "aB3dE9xK", testResource, gomock.Any()).Return(nil)
			},
			wantSlug: "aB3dE9xK",
		},
		{
			name:     "first request creates entry",
			resource: testResource,
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface, bloom *mocks.MockBloomServiceInterface) {
				redis.EXPECT().GetShortURL(gomock.Any(), testResource).Return("", errors.New("cache miss"))
				mysql.EXPECT().GetShortLinkByResource(gomock.Any(), testResource).Return(nil, errors.New("record not found"))
				bloom.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
				mysql.EXPECT().CheckExistsBySlug(gomock.Any(), gomock.Any()).Return(false, nil)
				mysql.EXPECT().SaveShortLink(gomock.Any(), gomock.Any()).Return(nil)
				redis.EXPECT().SaveShortURL(gomock.Any(), testResource, gomock.Any(), gomock.Any()).Return(nil)
				redis.EXPECT().SaveSlugTarget(gomock.Any(), gomock.Any(), testResource, gomock.Any()).Return(nil)
				bloom.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "collision retries until free slug",
			resource: testResource,
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface, bloom *mocks.MockBloomServiceInterface) {
				redis.EXPECT().GetShortURL(gomock.Any(), testResource).Return("", errors.New("cache miss"))
				mysql.EXPECT().GetShortLinkByResource(gomock.Any(), testResource).Return(nil, errors.New("record not found"))
				// First draw collides in the filter, second is free
				bloom.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil)
				bloom.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
				mysql.EXPECT().CheckExistsBySlug(gomock.Any(), gomock.Any()).Return(false, nil)
				mysql.EXPECT().SaveShortLink(gomock.Any(), gomock.Any()).Return(nil)
				redis.EXPECT().SaveShortURL(gomock.Any(), testResource, gomock.Any(), gomock.Any()).Return(nil)
				redis.EXPECT().SaveSlugTarget(gomock.Any(), gomock.Any(), testResource, gomock.Any()).Return(nil)
				bloom.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "save failure",
			resource: testResource,
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface, bloom *mocks.MockBloomServiceInterface) {
				redis.EXPECT().GetShortURL(gomock.Any(), testResource).Return("", errors.New("cache miss"))
				mysql.EXPECT().GetShortLinkByResource(gomock.Any(), testResource).Return(nil, errors.New("record not found"))
				bloom.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
				mysql.EXPECT().CheckExistsBySlug(gomock.Any(), gomock.Any()).Return(false, nil)
				mysql.EXPECT().SaveShortLink(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: errors.New("failed to save short link"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
			mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
			mockBloom := mocks.NewMockBloomServiceInterface(ctrl)
			tt.setupMock(mockMySQL, mockRedis, mockBloom)

			svc := NewLocalShortener(mockMySQL, mockRedis, mockBloom, "https://snap.tok", 10)
			sl, err := svc.GetOrCreate(context.Background(), tt.resource)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, sl)
			if tt.wantSlug != "" {
				assert.Equal(t, tt.wantSlug, sl.Slug)
			}
			assert.Equal(t, testResource, sl.ResourceURI)
			assert.True(t, slug.NewGenerator().IsValid(sl.Slug))
			assert.Equal(t, "https://snap.tok/"+sl.Slug, sl.ShortURL)
		})
	}
}

func TestLocalShortener_GetOrCreate_ExpiredEntryRegenerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
	mockBloom := mocks.NewMockBloomServiceInterface(ctrl)

	past := time.Now().Add(-time.Hour)
	stale := &model.ShortLink{
		Slug:        "stale123",
		ResourceURI: testResource,
		ShortURL:    "https://snap.tok/stale123",
		ExpiresAt:   &past,
	}

	mockRedis.EXPECT().GetShortURL(gomock.Any(), testResource).Return("", errors.New("cache miss"))
	mockMySQL.EXPECT().GetShortLinkByResource(gomock.Any(), testResource).Return(stale, nil)
	mockBloom.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	mockMySQL.EXPECT().CheckExistsBySlug(gomock.Any(), gomock.Any()).Return(false, nil)
	mockMySQL.EXPECT().ReplaceShortLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sl *model.ShortLink) error {
			assert.Equal(t, testResource, sl.ResourceURI)
			assert.NotEqual(t, "stale123", sl.Slug)
			return nil
		})
	mockRedis.EXPECT().SaveShortURL(gomock.Any(), testResource, gomock.Any(), gomock.Any()).Return(nil)
	mockRedis.EXPECT().SaveSlugTarget(gomock.Any(), gomock.Any(), testResource, gomock.Any()).Return(nil)
	mockBloom.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewLocalShortener(mockMySQL, mockRedis, mockBloom, "https://snap.tok", 10)
	sl, err := svc.GetOrCreate(context.Background(), testResource)

	require.NoError(t, err)
	assert.NotEqual(t, "stale123", sl.Slug)
	assert.Equal(t, testResource, sl.ResourceURI)
}

func TestLocalShortener_GetOrCreate_SlugSpaceExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
	mockBloom := mocks.NewMockBloomServiceInterface(ctrl)

	mockRedis.EXPECT().GetShortURL(gomock.Any(), testResource).Return("", errors.New("cache miss"))
	mockMySQL.EXPECT().GetShortLinkByResource(gomock.Any(), testResource).Return(nil, errors.New("record not found"))
	mockBloom.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)

	svc := NewLocalShortener(mockMySQL, mockRedis, mockBloom, "https://snap.tok", 3)
	_, err := svc.GetOrCreate(context.Background(), testResource)

	assert.ErrorIs(t, err, ErrSlugSpaceExhausted)
}

func TestLocalShortener_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockMySQLRepositoryInterface, *mocks.MockRedisRepositoryInterface)
		wantErr   error
		wantURI   string
	}{
		{
			name: "cache hit",
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface) {
				redis.EXPECT().GetSlugTarget(gomock.Any(), "aB3dE9xK").Return(testResource, nil)
			},
			wantURI: testResource,
		},
		{
			name: "database hit",
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface) {
				redis.EXPECT().GetSlugTarget(gomock.Any(), "aB3dE9xK").Return("", errors.New("cache miss"))
				mysql.EXPECT().GetShortLinkBySlug(gomock.Any(), "aB3dE9xK").Return(&model.ShortLink{
					Slug:        "aB3dE9xK",
					ResourceURI: testResource,
					ShortURL:    "https://snap.tok/aB3dE9xK",
				}, nil)
				redis.EXPECT().SaveShortURL(gomock.Any(), testResource, gomock.Any(), gomock.Any()).Return(nil)
				redis.EXPECT().SaveSlugTarget(gomock.Any(), "aB3dE9xK", testResource, gomock.Any()).Return(nil)
			},
			wantURI: testResource,
		},
		{
			name: "unknown slug",
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface) {
				redis.EXPECT().GetSlugTarget(gomock.Any(), "aB3dE9xK").Return("", errors.New("cache miss"))
				mysql.EXPECT().GetShortLinkBySlug(gomock.Any(), "aB3dE9xK").Return(nil, errors.New("record not found"))
			},
			wantErr: ErrShortLinkNotFound,
		},
		{
			name: "expired slug",
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface, redis *mocks.MockRedisRepositoryInterface) {
				past := time.Now().Add(-time.Minute)
				redis.EXPECT().GetSlugTarget(gomock.Any(), "aB3dE9xK").Return("", errors.New("cache miss"))
				mysql.EXPECT().GetShortLinkBySlug(gomock.Any(), "aB3dE9xK").Return(&model.ShortLink{
					Slug:      "aB3dE9xK",
					ExpiresAt: &past,
				}, nil)
			},
			wantErr: ErrShortLinkExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
			mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
			mockBloom := mocks.NewMockBloomServiceInterface(ctrl)
			tt.setupMock(mockMySQL, mockRedis)

			svc := NewLocalShortener(mockMySQL, mockRedis, mockBloom, "https://snap.tok", 10)
			sl, err := svc.Resolve(context.Background(), "aB3dE9xK")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURI, sl.ResourceURI)
		})
	}
}
