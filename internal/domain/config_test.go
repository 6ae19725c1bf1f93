package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultBaseURL, cfg.Server.BaseURL)
	assert.Zero(t, cfg.Server.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DeleteTargetRow, cfg.Board.DeleteTarget)
	assert.Equal(t, DefaultAddr, cfg.Serve.Addr)
	assert.Equal(t, StoreJSON, cfg.Serve.Store)
	assert.Equal(t, DefaultRedisURL, cfg.Serve.RedisURL)
	assert.Empty(t, cfg.Warnings)
}

func TestParseDeleteTarget(t *testing.T) {
	tests := []struct {
		input   string
		want    DeleteTarget
		wantErr bool
	}{
		{"", DeleteTargetRow, false},
		{"row", DeleteTargetRow, false},
		{"draft", DeleteTargetDraft, false},
		{"Row", "", true},
		{"selected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDeleteTarget(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDeleteTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStoreBackend(t *testing.T) {
	tests := []struct {
		input   string
		want    StoreBackend
		wantErr bool
	}{
		{"", StoreJSON, false},
		{"json", StoreJSON, false},
		{"redis", StoreRedis, false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStoreBackend(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStore)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/cfg", "todoboard", "config.toml"), GlobalConfigPath("/cfg"))
	assert.Equal(t, filepath.Join("/work", ".todoboard.toml"), ProjectConfigPath("/work"))
	assert.Equal(t, filepath.Join("/state", "todoboard"), StateDir("/state"))
	assert.Equal(t, filepath.Join("/state", "todoboard", "logs", "todoboard.log"), LogPath(StateDir("/state")))
	assert.Equal(t, filepath.Join("/state", "todoboard", "tasks.json"), StorePath(StateDir("/state")))
}

func TestConfigTemplate(t *testing.T) {
	tmpl := ConfigTemplate()

	assert.Contains(t, tmpl, "[server]")
	assert.Contains(t, tmpl, "delete_target")
	assert.Contains(t, tmpl, "[serve]")
}
