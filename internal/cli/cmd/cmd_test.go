package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vomnibar/internal/cli"
	"github.com/bnema/vomnibar/internal/domain/entity"
)

func isolateXDG(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	historyJSON = false
	historyLimit = defaultHistoryLimit
	schemaOutput = ""
	t.Cleanup(func() { app = nil })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigSchema_PrintsSchema(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)

	assert.Contains(t, out, "Vomnibar Configuration")
	assert.Contains(t, out, "search_engines")
}

func TestConfigPath_PointsIntoConfigDir(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), filepath.Join("vomnibar", "config.json")), out)
}

func TestHistory_AddThenListJSON(t *testing.T) {
	isolateXDG(t)

	_, err := execute(t, "history", "add", "https://go.dev", "Go")
	require.NoError(t, err)
	_, err = execute(t, "history", "add", "https://go.dev")
	require.NoError(t, err)

	out, err := execute(t, "history", "list", "--json")
	require.NoError(t, err)

	var entries []entity.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "https://go.dev", entries[0].URL)
	assert.Equal(t, "Go", entries[0].Title)
	assert.Equal(t, int64(2), entries[0].VisitCount)
}

func TestHistoryDelete_RejectsInvalidID(t *testing.T) {
	isolateXDG(t)

	_, err := execute(t, "history", "delete", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestPrintAction(t *testing.T) {
	isolateXDG(t)

	var err error
	app, err = cli.NewApp(cli.LogToStderr)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = app.Close()
		app = nil
	})

	tests := []struct {
		name   string
		action entity.TerminalAction
		want   string
	}{
		{"navigate", entity.Navigate("https://go.dev", false), "https://go.dev\n"},
		{"search", entity.RunSearch("go generics", true), "https://duckduckgo.com/?q=go+generics\n"},
		{"tab", entity.SelectTab(7), "tab:7\n"},
		{"noop", entity.TerminalAction{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &cobra.Command{}
			c.SetOut(&out)

			require.NoError(t, printAction(c, tt.action))
			assert.Equal(t, tt.want, out.String())
		})
	}

	recent, err := app.SearchHistoryUC.GetRecent(app.Ctx(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 2, "navigations and searches are recorded")
}

func TestLoopError_OnlyCancellationIsSwallowed(t *testing.T) {
	assert.NoError(t, loopError(nil))
	assert.NoError(t, loopError(context.Canceled))
	assert.NoError(t, loopError(fmt.Errorf("loop: %w", context.Canceled)))

	failure := errors.New("loop broke")
	assert.ErrorIs(t, loopError(failure), failure)
	assert.ErrorIs(t, loopError(context.DeadlineExceeded), context.DeadlineExceeded)
}
