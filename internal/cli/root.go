package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
	"github.com/smokyabdulrahman/hijri-calendar/internal/config"
	"github.com/smokyabdulrahman/hijri-calendar/internal/display"
)

// Global flags shared across all subcommands.
var (
	FlagAPIURL   string
	FlagJSON     bool
	FlagLogLevel string
	FlagFormat   string
)

// loadedConfig holds the config loaded during PersistentPreRunE, with
// environment overrides applied. Available to all subcommand handlers.
var loadedConfig *config.Config

// NewRootCmd creates the root command for the hijri-calendar CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "hijri-calendar",
		Short:   "Hijri and Gregorian calendar",
		Long:    "Show, convert and serve Hijri/Gregorian dates from a remote calendar API.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(".env"); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.ApplyEnv()
			loadedConfig = cfg

			if FlagJSON {
				display.SetEnabled(false)
			}

			return setupLogging(cmd.ErrOrStderr(), effectiveConfig(cmd).LogLevel)
		},
		// Default action: show today's date.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagAPIURL, "api-url", "", "Calendar API base URL (overrides $"+config.EnvAPIURL+" and config)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.StringVar(&FlagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.StringVar(&FlagFormat, "format", "", fmt.Sprintf("Date format: %v, or a Go template", calendar.Formats))

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > environment > config file > defaults.
// It uses cobra's Changed() to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	var cfg config.Config
	if loadedConfig != nil {
		cfg = *loadedConfig
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "api-url") {
		cfg.APIURL = FlagAPIURL
	}
	if flagWasSet(flags, root, "log-level") {
		cfg.LogLevel = FlagLogLevel
	}
	if flagWasSet(flags, root, "format") {
		cfg.Format = FlagFormat
	}
	if flagWasSet(flags, root, "addr") {
		cfg.ListenAddr, _ = flags.GetString("addr")
	}

	cfg.FillDefaults()
	return &cfg
}

// flagWasSet checks if a flag was explicitly set on either the local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}
