package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/config"
	"github.com/smokyabdulrahman/hijri-calendar/internal/display"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or modify configuration",
		Long:  "Display current configuration, or use subcommands to modify it.\nWhen run without subcommands, shows the current configuration.",
		RunE:  runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: fmt.Sprintf("Set a configuration value. Valid keys: %s\n\nExamples:\n  hijri-calendar config set api_url https://calendar.example.com\n  hijri-calendar config set language ar\n  hijri-calendar config set format hijri\n  hijri-calendar config set format '{{.HijriDay}}/{{.HijriMonth}}/{{.HijriYear}}'",
			strings.Join(config.ValidKeys, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset config to defaults",
		Long:  "Delete the config file and restore all settings to defaults.",
		Args:  cobra.NoArgs,
		RunE:  runConfigReset,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	})

	return cmd
}

// runConfigShow displays the configuration file's values next to the
// values in effect after environment and defaults are applied.
func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	effective := effectiveConfig(cmd)

	if FlagJSON {
		return writeJSON(cmd, effective)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s\n\n", display.Boldf("Configuration (%s)", path))

	for _, key := range config.ValidKeys {
		val, _ := cfg.Get(key)
		eff, _ := effective.Get(key)
		if key == "api_url" && eff == "" {
			eff = api.DefaultBaseURL
		}
		shown := val
		switch {
		case val == "" && eff != "":
			shown = display.Gray(fmt.Sprintf("(not set, using %s)", eff))
		case val == "":
			shown = display.Gray("(not set)")
		case val != eff:
			shown = fmt.Sprintf("%s (overridden: %s)", val, eff)
		}
		fmt.Fprintf(out, "  %-12s %s\n", key, shown)
	}
	return nil
}

// runConfigSet sets a config key to the given value.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", display.Green("Set"), key, value)
	return nil
}

// runConfigReset deletes the config file.
func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
