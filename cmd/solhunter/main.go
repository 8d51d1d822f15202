package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Amr-9/SolHunter/internal/config"
	"github.com/Amr-9/SolHunter/internal/ui"
	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/Amr-9/SolHunter/pkg/generator/cpu"
	"github.com/Amr-9/SolHunter/pkg/generator/solana"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const version = "1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string

	root := &cobra.Command{
		Use:   "solhunter",
		Short: "Solana vanity address generator",
		Long: `Searches for an Ed25519 keypair whose Base58 Solana address starts with one
of the given case-sensitive prefixes. The first match stops the search and is
appended to the matches file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				ui.PrintError(err)
				return err
			}
			return runSearch(cmd.Context(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringSliceP("prefix", "p", nil, "address prefix to search for (repeatable, case-sensitive)")
	flags.IntP("threads", "t", 0, "number of worker threads (default: CPU cores)")
	flags.StringP("output", "o", "", `file matches are appended to, "" to disable (default "matches.txt")`)
	flags.Uint64("max-attempts", 0, "give up after this many keys (0: never)")
	flags.String("progress", "", "progress display: auto, bar, log, line or none")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("priority", false, "raise process priority before searching")

	for key, flag := range map[string]string{
		"prefixes":     "prefix",
		"threads":      "threads",
		"output":       "output",
		"max_attempts": "max-attempts",
		"progress":     "progress",
		"log_level":    "log-level",
		"priority":     "priority",
	} {
		bindFlag(v, key, root, flag)
	}

	root.AddCommand(newBenchCmd(v, &configPath), newConfigCmd(v, &configPath))
	return root
}

// bindFlag makes an explicitly set flag override config file and environment.
func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func runSearch(parent context.Context, cfg *config.Config) error {
	logger := config.NewLogger(cfg.LogLevel, os.Stderr)

	if cfg.Priority {
		if err := raisePriority(); err != nil {
			logger.WithError(err).Warn("could not raise process priority")
		}
	}

	ui.PrintWelcomeBanner(version)

	if len(cfg.Prefixes) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			err := errors.New("must specify at least one --prefix")
			ui.PrintError(err)
			return err
		}
		prefixes, err := ui.PromptPrefixes(os.Stdin)
		if err != nil {
			ui.PrintError(err)
			return err
		}
		cfg.Prefixes = prefixes
	}
	if err := solana.ValidatePrefixes(cfg.Prefixes); err != nil {
		ui.PrintError(err)
		return err
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reporter, closeReporter := newReporter(cfg.Progress, logger)
	var gen generator.Searcher = cpu.NewCPUGenerator(cfg.Threads, cpu.WithReporter(reporter), cpu.WithLogger(logger))

	ui.PrintSearchInfo(cfg.Prefixes, cfg.Threads)
	result, err := gen.Search(ctx, cfg.SearchConfig())
	closeReporter()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, cpu.ErrNoResult) {
			ui.PrintCancelled(gen.Stats(), err)
		} else {
			ui.PrintError(err)
		}
		return err
	}

	saved := ""
	if cfg.Output != "" {
		saved, err = ui.SaveMatch(cfg.Output, result)
		if err != nil {
			logger.WithError(err).Error("save failed")
		}
	}
	ui.ClearLine()
	ui.PrintSuccess(result, saved)
	return nil
}

// newReporter picks the progress display. The returned func tears it down.
func newReporter(mode string, logger logrus.FieldLogger) (generator.Reporter, func()) {
	if mode == config.ProgressAuto {
		mode = config.ProgressLog
		if term.IsTerminal(int(os.Stdout.Fd())) {
			mode = config.ProgressBar
		}
	}

	switch mode {
	case config.ProgressBar:
		bar := ui.NewBarReporter(os.Stdout)
		return bar, func() { _ = bar.Close() }
	case config.ProgressLine:
		return ui.NewLineReporter(os.Stdout), func() {}
	case config.ProgressLog:
		return ui.NewLogReporter(logger), func() {}
	default:
		return generator.NopReporter{}, func() {}
	}
}

func newBenchCmd(v *viper.Viper, configPath *string) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure raw keypair generation speed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				err := fmt.Errorf("--count must be non-negative, got %d", count)
				ui.PrintError(err)
				return err
			}
			cfg, err := config.Load(v, *configPath)
			if err != nil {
				ui.PrintError(err)
				return err
			}

			start := time.Now()
			kps, err := cpu.GenerateBatch(cmd.Context(), solana.NewSource, count, cfg.Threads)
			if err != nil {
				ui.PrintError(err)
				return err
			}
			snap := generator.NewSnapshot(uint64(len(kps)), time.Since(start))
			fmt.Fprintf(ui.Out, "    %s keypairs │ %s │ %s │ %d threads\n",
				ui.FormatNumber(snap.Attempts), ui.FormatDuration(snap.Elapsed),
				ui.FormatHashRate(snap.Rate), cfg.Threads)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 100_000, "number of keypairs to generate")
	return cmd
}

func newConfigCmd(v *viper.Viper, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *configPath)
			if err != nil {
				ui.PrintError(err)
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
