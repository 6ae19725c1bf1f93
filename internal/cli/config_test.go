package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todoboard/internal/domain"
	"github.com/runoshun/todoboard/internal/testutil"
)

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskService())

	out, err := run(t, newConfigCommand(c))

	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "show")
	assert.Contains(t, out, "init")
}

func TestConfigShowCommand(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskService())
	effective := domain.NewDefaultConfig()
	effective.Server.BaseURL = "http://from-file:8080"
	effective.Board.DeleteTarget = domain.DeleteTargetDraft
	c.ConfigLoader = &testutil.MockConfigLoader{Config: effective}
	c.ConfigManager = &testutil.MockConfigManager{
		GlobalInfo:  domain.ConfigInfo{Path: "/home/u/.config/todoboard/config.toml"},
		ProjectInfo: domain.ConfigInfo{Path: "/work/.todoboard.toml", Exists: true},
	}
	c.AppConfig.Server.BaseURL = "http://from-flag:9000"

	out, err := run(t, newConfigShowCommand(c))

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, "- /home/u/.config/todoboard/config.toml (not found)")
	assert.Contains(t, out, "- /work/.todoboard.toml\n")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "http://from-flag:9000")
	assert.NotContains(t, out, "http://from-file:8080")
	assert.Contains(t, out, "draft")
}

func TestConfigShowCommand_SkipsMissingGlobalDir(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskService())
	c.ConfigManager = &testutil.MockConfigManager{
		ProjectInfo: domain.ConfigInfo{Path: "/work/.todoboard.toml"},
	}

	out, err := run(t, newConfigShowCommand(c))

	require.NoError(t, err)
	assert.Contains(t, out, "- /work/.todoboard.toml (not found)")
	assert.NotContains(t, out, "- \n")
	assert.NotContains(t, out, "-  (not found)")
}

func TestConfigInitCommand_Project(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskService())
	manager := &testutil.MockConfigManager{ProjectInfo: domain.ConfigInfo{Path: "/work/.todoboard.toml"}}
	c.ConfigManager = manager

	out, err := run(t, newConfigInitCommand(c))

	require.NoError(t, err)
	assert.Equal(t, "Created config file: /work/.todoboard.toml\n", out)
	assert.True(t, manager.InitedProject)
	assert.False(t, manager.InitedGlobal)
}

func TestConfigInitCommand_Global(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskService())
	manager := &testutil.MockConfigManager{GlobalInfo: domain.ConfigInfo{Path: "/home/u/.config/todoboard/config.toml"}}
	c.ConfigManager = manager

	out, err := run(t, newConfigInitCommand(c), "--global")

	require.NoError(t, err)
	assert.Contains(t, out, "/home/u/.config/todoboard/config.toml")
	assert.True(t, manager.InitedGlobal)
}

func TestConfigInitCommand_AlreadyExists(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskService())
	c.ConfigManager = &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

	_, err := run(t, newConfigInitCommand(c))

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
