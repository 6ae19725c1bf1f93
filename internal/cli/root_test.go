package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todoboard/internal/app"
	"github.com/runoshun/todoboard/internal/domain"
	"github.com/runoshun/todoboard/internal/testutil"
)

// newTestContainer creates an app.Container backed by a mock task service.
func newTestContainer(svc *testutil.MockTaskService) *app.Container {
	c := app.NewWithDeps(app.Config{}, nil, svc, &testutil.MockLogger{}, nil)
	c.ConfigLoader = &testutil.MockConfigLoader{}
	c.ConfigManager = &testutil.MockConfigManager{}
	return c
}

// stubTUI replaces the TUI launcher for the duration of the test.
func stubTUI(t *testing.T) *bool {
	t.Helper()
	original := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = original })

	called := false
	launchTUIFunc = func(*app.Container) error {
		called = true
		return nil
	}
	return &called
}

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	called := stubTUI(t)

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.True(t, *called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_TUISubcommand(t *testing.T) {
	called := stubTUI(t)

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{"tui"})

	require.NoError(t, root.Execute())
	assert.True(t, *called)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	called := stubTUI(t)

	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	assert.False(t, *called)
	assert.Contains(t, buf.String(), "Task Management:")
	assert.Contains(t, buf.String(), "--base-url")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskService())
	c.AppConfig.Warnings = []string{"unknown key in [server]: retries"}

	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"list"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "Warning: unknown key in [server]: retries")
}

func TestNewRootCommand_BaseURLFlag(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"r1","heading":"Remote","description":"","status":"Pending"}]`))
	}))
	defer srv.Close()

	svc := testutil.NewMockTaskService(domain.Task{ID: "local"})
	c := newTestContainer(svc)

	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--base-url", srv.URL, "list"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "GET /todo", gotPath)
	assert.Contains(t, buf.String(), "Remote")
	assert.Equal(t, 0, svc.ListCalls, "mock service should be replaced by the flag")
	assert.Equal(t, srv.URL, c.AppConfig.Server.BaseURL)
}
