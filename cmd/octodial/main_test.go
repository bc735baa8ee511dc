package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/octodial/internal/util"
)

func stubUI(t *testing.T, fn func(ctx context.Context, cfg util.Config, logger *slog.Logger) error) {
	t.Helper()
	prev := runUI
	runUI = fn
	t.Cleanup(func() { runUI = prev })
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--theme", "dracula", "version"}, &out, &bytes.Buffer{}))
	require.Equal(t, "octodial "+version+"\n", out.String())
}

func TestRunUnknownCommand(t *testing.T) {
	var stderr bytes.Buffer
	err := run([]string{"--theme", "dracula", "spin"}, &bytes.Buffer{}, &stderr)
	require.ErrorIs(t, err, errUsage)
	require.Contains(t, stderr.String(), "--log-json-file")
}

func TestRunRejectsBadFlags(t *testing.T) {
	require.ErrorIs(t, run([]string{"--bogus"}, &bytes.Buffer{}, &bytes.Buffer{}), errUsage)
	require.Error(t, run([]string{"--theme", "neon", "version"}, &bytes.Buffer{}, &bytes.Buffer{}))
}

func TestRunUIErrorClosesLogs(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "octodial.json")
	textPath := filepath.Join(dir, "octodial.log")
	var got util.Config
	stubUI(t, func(_ context.Context, cfg util.Config, logger *slog.Logger) error {
		got = cfg
		logger.Error("terminal lost")
		return errors.New("program failed")
	})

	err := run([]string{
		"--theme", "gruvbox", "--notation", "ascii", "--log-level", "debug",
		"--log-file", textPath, "--log-json-file", jsonPath, "--no-mouse",
	}, &bytes.Buffer{}, &bytes.Buffer{})
	require.EqualError(t, err, "program failed")

	require.Equal(t, jsonPath, got.LogJSONFile)
	require.Equal(t, "gruvbox", got.Theme)
	require.False(t, got.Mouse)

	js, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(js), `"msg":"terminal lost"`), "json log: %q", js)
	txt, err := os.ReadFile(textPath)
	require.NoError(t, err)
	require.Contains(t, string(txt), "terminal lost")
}
