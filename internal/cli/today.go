package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
	"github.com/smokyabdulrahman/hijri-calendar/internal/config"
	"github.com/smokyabdulrahman/hijri-calendar/internal/display"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's date in both calendars",
		Args:  cobra.NoArgs,
		RunE:  runToday,
	}
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	client := api.NewClient(cfg.APIURL)

	d, err := client.GetCurrentDate(cmd.Context())
	if err != nil {
		return err
	}
	return printDate(cmd, cfg, "Today", *d)
}

// printDate writes d as JSON, as the two-row table for the default format,
// or as a single line for any other format.
func printDate(cmd *cobra.Command, cfg *config.Config, heading string, d api.CalendarDate) error {
	out := cmd.OutOrStdout()

	if FlagJSON {
		return writeJSON(cmd, d)
	}
	if cfg.Format == calendar.FormatBoth {
		fmt.Fprint(out, display.RenderDate(heading, d))
		return nil
	}
	fmt.Fprintln(out, calendar.FormatDate(d, cfg.Format))
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
