package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Amr-9/SolHunter/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silenceUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := ui.Out
	ui.Out = &buf
	t.Cleanup(func() { ui.Out = old })
	return &buf
}

func TestConfigCommand(t *testing.T) {
	silenceUI(t)
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "-p", "AB", "-p", "Sol", "-t", "2", "--progress", "none"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "- AB")
	assert.Contains(t, out.String(), "- Sol")
	assert.Contains(t, out.String(), "threads: 2")
	assert.Contains(t, out.String(), "progress: none")
}

func TestConfigCommandRejectsBadPrefix(t *testing.T) {
	silenceUI(t)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"config", "-p", "S0L"})
	require.Error(t, cmd.Execute())
}

func TestSearchCommand(t *testing.T) {
	silenceUI(t)
	path := filepath.Join(t.TempDir(), "matches.txt")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-p", "A", "-p", "B", "-t", "2", "--progress", "none", "--log-level", "error", "-o", path})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	parts := strings.Split(line, " | ")
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "A") || strings.HasPrefix(parts[0], "B"))
}

func TestSearchCommandMaxAttempts(t *testing.T) {
	silenceUI(t)
	t.Setenv("SOLHUNTER_CHECK_INTERVAL", "10")
	t.Setenv("SOLHUNTER_FLUSH_INTERVAL", "10")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-p", "zzzzzzzz", "-t", "1", "--progress", "none", "--log-level", "error", "-o", "", "--max-attempts", "10"})
	require.Error(t, cmd.Execute())
}

func TestBenchCommand(t *testing.T) {
	out := silenceUI(t)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"bench", "-n", "50", "-t", "2"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "50 keypairs")
}

func TestBenchCommandRejectsNegativeCount(t *testing.T) {
	out := silenceUI(t)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"bench", "-n", "-1"})

	require.NotPanics(t, func() {
		require.Error(t, cmd.Execute())
	})
	assert.Contains(t, out.String(), "--count must be non-negative")
}
