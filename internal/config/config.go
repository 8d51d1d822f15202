// Package config loads SolHunter settings from flags, environment and an
// optional YAML file through viper.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/Amr-9/SolHunter/pkg/generator/solana"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to environment overrides, e.g. SOLHUNTER_THREADS.
const EnvPrefix = "SOLHUNTER"

// Progress display modes.
const (
	ProgressAuto = "auto"
	ProgressBar  = "bar"
	ProgressLog  = "log"
	ProgressLine = "line"
	ProgressNone = "none"
)

// Config is the effective configuration of one run.
type Config struct {
	Prefixes       []string `mapstructure:"prefixes" yaml:"prefixes"`
	Threads        int      `mapstructure:"threads" yaml:"threads"`
	Output         string   `mapstructure:"output" yaml:"output"`
	MaxAttempts    uint64   `mapstructure:"max_attempts" yaml:"max_attempts"`
	CheckInterval  uint64   `mapstructure:"check_interval" yaml:"check_interval"`
	FlushInterval  uint64   `mapstructure:"flush_interval" yaml:"flush_interval"`
	ReportInterval uint64   `mapstructure:"report_interval" yaml:"report_interval"`
	Progress       string   `mapstructure:"progress" yaml:"progress"`
	LogLevel       string   `mapstructure:"log_level" yaml:"log_level"`
	Priority       bool     `mapstructure:"priority" yaml:"priority"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prefixes", []string{})
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("output", "matches.txt")
	v.SetDefault("max_attempts", 0)
	v.SetDefault("check_interval", generator.DefaultCheckInterval)
	v.SetDefault("flush_interval", generator.DefaultFlushInterval)
	v.SetDefault("report_interval", generator.DefaultReportInterval)
	v.SetDefault("progress", ProgressAuto)
	v.SetDefault("log_level", "info")
	v.SetDefault("priority", false)
}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (when set) into v and returns the validated configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks everything except the prefixes, which may still be
// prompted for interactively. Use ValidatePrefixes once they are known.
func (c *Config) Validate() error {
	var errs []error
	if c.Threads <= 0 {
		errs = append(errs, fmt.Errorf("threads must be positive, got %d", c.Threads))
	}
	if c.CheckInterval == 0 || c.FlushInterval == 0 || c.ReportInterval == 0 {
		errs = append(errs, errors.New("check, flush and report intervals must be positive"))
	}
	switch c.Progress {
	case ProgressAuto, ProgressBar, ProgressLog, ProgressLine, ProgressNone:
	default:
		errs = append(errs, fmt.Errorf("unknown progress mode %q", c.Progress))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(c.Prefixes) > 0 {
		errs = append(errs, solana.ValidatePrefixes(c.Prefixes))
	}
	return errors.Join(errs...)
}

// SearchConfig converts c to the engine configuration.
func (c *Config) SearchConfig() *generator.Config {
	return &generator.Config{
		Prefixes:       c.Prefixes,
		Workers:        c.Threads,
		MaxAttempts:    c.MaxAttempts,
		CheckInterval:  c.CheckInterval,
		FlushInterval:  c.FlushInterval,
		ReportInterval: c.ReportInterval,
	}
}

// YAML renders c as a config file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
