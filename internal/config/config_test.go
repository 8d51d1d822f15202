package config

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Prefixes)
	assert.Equal(t, runtime.NumCPU(), cfg.Threads)
	assert.Equal(t, "matches.txt", cfg.Output)
	assert.Equal(t, uint64(generator.DefaultCheckInterval), cfg.CheckInterval)
	assert.Equal(t, uint64(generator.DefaultFlushInterval), cfg.FlushInterval)
	assert.Equal(t, uint64(generator.DefaultReportInterval), cfg.ReportInterval)
	assert.Equal(t, ProgressAuto, cfg.Progress)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solhunter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
prefixes: [Sol, AB]
threads: 3
max_attempts: 1000000
progress: log
log_level: debug
`), 0600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sol", "AB"}, cfg.Prefixes)
	assert.Equal(t, 3, cfg.Threads)
	assert.Equal(t, uint64(1000000), cfg.MaxAttempts)
	assert.Equal(t, ProgressLog, cfg.Progress)

	sc := cfg.SearchConfig()
	assert.Equal(t, cfg.Prefixes, sc.Prefixes)
	assert.Equal(t, 3, sc.Workers)
	assert.Equal(t, uint64(1000000), sc.MaxAttempts)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SOLHUNTER_THREADS", "7")
	t.Setenv("SOLHUNTER_PROGRESS", "none")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Threads)
	assert.Equal(t, ProgressNone, cfg.Progress)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		return cfg
	}

	cfg := valid()
	cfg.Threads = 0
	assert.ErrorContains(t, cfg.Validate(), "threads")

	cfg = valid()
	cfg.Progress = "fancy"
	assert.ErrorContains(t, cfg.Validate(), "fancy")

	cfg = valid()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.FlushInterval = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Prefixes = []string{"S0L"}
	assert.ErrorContains(t, cfg.Validate(), "S0L")

	cfg = valid()
	cfg.Prefixes = []string{"Sol"}
	assert.NoError(t, cfg.Validate())
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	cfg.Prefixes = []string{"AB"}

	data, err := cfg.YAML()
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, logrus.InfoLevel, NewLogger("bogus", &buf).GetLevel())
}
