package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaptok/internal/mocks"
	"snaptok/internal/model"
)

func TestGuildConfigService_Get(t *testing.T) {
	existing := &model.GuildConfig{GuildID: "g1", AutoEmbed: true}

	tests := []struct {
		name      string
		setupMock func(*mocks.MockMySQLRepositoryInterface)
		wantErr   bool
		wantCfg   *model.GuildConfig
	}{
		{
			name: "existing config",
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface) {
				mysql.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(existing, nil)
			},
			wantCfg: existing,
		},
		{
			name: "first access creates defaults",
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface) {
				mysql.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(nil, errors.New("record not found"))
				mysql.EXPECT().CreateGuildConfig(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, gc *model.GuildConfig) error {
						assert.Equal(t, "g1", gc.GuildID)
						assert.False(t, gc.AutoEmbed)
						assert.False(t, gc.DeleteOrigin)
						assert.False(t, gc.SuppressOriginEmbed)
						return nil
					})
			},
			wantCfg: &model.GuildConfig{GuildID: "g1"},
		},
		{
			name: "concurrent create falls back to existing row",
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface) {
				mysql.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(nil, errors.New("record not found"))
				mysql.EXPECT().CreateGuildConfig(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
				mysql.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(existing, nil)
			},
			wantCfg: existing,
		},
		{
			name: "create failure",
			setupMock: func(mysql *mocks.MockMySQLRepositoryInterface) {
				mysql.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(nil, errors.New("record not found"))
				mysql.EXPECT().CreateGuildConfig(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
				mysql.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
			tt.setupMock(mockMySQL)

			svc := NewGuildConfigService(mockMySQL)
			cfg, err := svc.Get(context.Background(), "g1")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCfg.GuildID, cfg.GuildID)
			assert.Equal(t, tt.wantCfg.AutoEmbed, cfg.AutoEmbed)
		})
	}
}

func TestGuildConfigService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)

	enabled := true
	updated := &model.GuildConfig{GuildID: "g1", DeleteOrigin: true}

	mockMySQL.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(&model.GuildConfig{GuildID: "g1"}, nil)
	mockMySQL.EXPECT().UpdateGuildConfig(gomock.Any(), "g1", map[string]interface{}{"delete_origin": true}).Return(nil)
	mockMySQL.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(updated, nil)

	svc := NewGuildConfigService(mockMySQL)
	cfg, err := svc.Update(context.Background(), "g1", &model.GuildConfigUpdate{DeleteOrigin: &enabled})

	require.NoError(t, err)
	assert.True(t, cfg.DeleteOrigin)
	assert.False(t, cfg.AutoEmbed)
}

func TestGuildConfigService_Update_EmptyUpdateKeepsConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)

	existing := &model.GuildConfig{GuildID: "g1", AutoEmbed: true}
	mockMySQL.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(existing, nil)
	mockMySQL.EXPECT().UpdateGuildConfig(gomock.Any(), "g1", map[string]interface{}{}).Return(nil)
	mockMySQL.EXPECT().GetGuildConfig(gomock.Any(), "g1").Return(existing, nil)

	svc := NewGuildConfigService(mockMySQL)
	cfg, err := svc.Update(context.Background(), "g1", &model.GuildConfigUpdate{})

	require.NoError(t, err)
	assert.True(t, cfg.AutoEmbed)
}
