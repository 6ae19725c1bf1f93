package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todoboard/internal/domain"
	"github.com/runoshun/todoboard/internal/infra/jsonstore"
	"github.com/runoshun/todoboard/internal/infra/remote"
	"github.com/runoshun/todoboard/internal/testutil"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestNew_LoadsProjectConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv(domain.EnvBaseURL, "")
	t.Setenv(domain.EnvLogLevel, "")
	require.NoError(t, writeFile(domain.ProjectConfigPath(dir), "[server]\nbase_url = \"http://tasks.test:9000\"\ntimeout = \"3s\"\n"))

	c, err := New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	client, ok := c.Service.(*remote.Client)
	require.True(t, ok)
	assert.Equal(t, "http://tasks.test:9000", client.BaseURL())
	assert.Equal(t, 3*time.Second, c.AppConfig.Server.Timeout)
	assert.NotEmpty(t, c.LogPath())
}

func TestNew_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, writeFile(domain.ProjectConfigPath(dir), "[board]\ndelete_target = \"nowhere\"\n"))

	_, err := New(dir)
	assert.ErrorIs(t, err, domain.ErrInvalidDeleteTarget)
}

func TestContainer_UseBaseURL(t *testing.T) {
	c := NewWithDeps(Config{}, nil, testutil.NewMockTaskService(), &testutil.MockLogger{}, nil)

	c.UseBaseURL("http://other:1234")

	client, ok := c.Service.(*remote.Client)
	require.True(t, ok)
	assert.Equal(t, "http://other:1234", client.BaseURL())
	assert.Equal(t, "http://other:1234", c.AppConfig.Server.BaseURL)
}

func TestContainer_BoardStoreUsesDeleteTarget(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Board.DeleteTarget = domain.DeleteTargetDraft
	c := NewWithDeps(Config{}, cfg, testutil.NewMockTaskService(), &testutil.MockLogger{}, nil)

	assert.Equal(t, domain.DeleteTargetDraft, c.BoardStore().DeleteTarget())
}

func TestContainer_BoardStoreLogsBackend(t *testing.T) {
	logger := &testutil.MockLogger{}
	c := NewWithDeps(Config{}, nil, testutil.NewMockTaskService(), logger, nil)
	c.UseBaseURL("http://other:1234/")

	c.BoardStore()

	infos := logger.ByLevel("INFO")
	require.Len(t, infos, 1)
	assert.Equal(t, "board", infos[0].Category)
	assert.Equal(t, "backend: http://other:1234", infos[0].Msg)
}

func TestContainer_TaskRepository_JSONDefaultPath(t *testing.T) {
	stateDir := t.TempDir()
	c := NewWithDeps(Config{StateDir: stateDir}, nil, nil, &testutil.MockLogger{}, nil)

	repo, closeFn, err := c.TaskRepository(context.Background(), domain.ServeConfig{Store: domain.StoreJSON})
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	store, ok := repo.(*jsonstore.Store)
	require.True(t, ok)
	assert.Equal(t, domain.StorePath(stateDir), store.Path())
	assert.FileExists(t, store.Path())
}

func TestContainer_TaskRepository_JSONExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "tasks.json")
	c := NewWithDeps(Config{}, nil, nil, &testutil.MockLogger{}, nil)

	repo, _, err := c.TaskRepository(context.Background(), domain.ServeConfig{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, repo.(*jsonstore.Store).Path())
}

func TestContainer_TaskRepository_NoPath(t *testing.T) {
	c := NewWithDeps(Config{}, nil, nil, &testutil.MockLogger{}, nil)

	_, _, err := c.TaskRepository(context.Background(), domain.ServeConfig{Store: domain.StoreJSON})
	assert.Error(t, err)
}

func TestContainer_TaskRepository_BadRedisURL(t *testing.T) {
	c := NewWithDeps(Config{}, nil, nil, &testutil.MockLogger{}, nil)

	_, _, err := c.TaskRepository(context.Background(), domain.ServeConfig{Store: domain.StoreRedis, RedisURL: "not a url"})
	assert.Error(t, err)
}

func TestContainer_TaskRepository_UnknownStore(t *testing.T) {
	c := NewWithDeps(Config{}, nil, nil, &testutil.MockLogger{}, nil)

	_, _, err := c.TaskRepository(context.Background(), domain.ServeConfig{Store: "sqlite"})
	assert.ErrorIs(t, err, domain.ErrInvalidStore)
}
