package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/leaveatip/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/leaveatip/internal/config"
	"github.com/MrJamesThe3rd/leaveatip/internal/tip"
)

type rootFlags struct {
	altScreen bool
	logFile   string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:          "leaveatip",
		Short:        "Pick a tip from the terminal",
		Long:         `Leave a Tip offers 15/20/25% presets or a custom percentage with a 15% floor.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			return run(cfg)
		},
	}

	cmd.Flags().BoolVar(&flags.altScreen, "alt-screen", true, "run in the terminal's alternate screen")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write debug logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// loadConfig reads .env and the environment, then applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("alt-screen") {
		cfg.UI.AltScreen = flags.altScreen
	}

	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flags.logFile
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

func run(cfg *config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	slog.SetDefault(logger)

	shake := view.NewShake(cfg.Shake.Duration, cfg.Shake.Travel, cfg.Shake.Count)
	flow := tip.NewFlow(
		tip.WithMinimum(cfg.Tip.Minimum),
		tip.WithEffect(shake),
		tip.WithLogger(logger),
	)

	unsubscribe := flow.Subscribe(func(s tip.State) {
		logger.Debug("state changed",
			"screen", s.Screen(),
			"has_error", s.ValidationError != "",
			"shake", s.ShakeTrigger,
		)
	})
	defer unsubscribe()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(view.NewTipModel(cfg.App.Name, flow, shake, cfg.Tip.Presets), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("leaveatip exited", "error", err)
		os.Exit(1)
	}
}
