package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
	"github.com/smokyabdulrahman/hijri-calendar/internal/display"
)

func newMonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month [year month]",
		Short: "Show a month as a calendar grid",
		Long: "Show a month with each day in both calendars. Without arguments, shows the current month.\n\n" +
			"Examples:\n  hijri-calendar month --hijri\n  hijri-calendar month 2024 3\n  hijri-calendar month 1445 9 --hijri",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s) (year month), received %d", len(args))
			}
			return nil
		},
		RunE: runMonth,
	}

	cmd.Flags().Bool("hijri", false, "Year and month are Hijri; lay the grid out by Hijri day")

	return cmd
}

func runMonth(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	client := api.NewClient(cfg.APIURL)
	ctx := cmd.Context()
	isHijri, _ := cmd.Flags().GetBool("hijri")

	// Today decides the month when none is given, and is highlighted
	// otherwise if the service can tell us.
	today, todayErr := client.GetCurrentDate(ctx)

	var ym calendar.YearMonth
	if len(args) == 2 {
		nums, err := parseInts([]string{"year", "month"}, args)
		if err != nil {
			return err
		}
		ym = calendar.YearMonth{Year: nums[0], Month: nums[1]}
		if todayErr != nil {
			log.Debug().Err(todayErr).Msg("today unavailable, not highlighting it")
			today = nil
		}
	} else {
		if todayErr != nil {
			return todayErr
		}
		ym = calendar.MonthOf(*today, isHijri)
	}

	m, err := client.FetchCalendarMonth(ctx, ym.Year, ym.Month, isHijri)
	if err != nil {
		return err
	}
	if err := m.Validate(isHijri); err != nil {
		log.Warn().Err(err).
			Int("year", ym.Year).
			Int("month", ym.Month).
			Str("calendar", api.SystemName(isHijri)).
			Msg("calendar service returned an inconsistent month")
	}

	if FlagJSON {
		return writeJSON(cmd, m)
	}
	fmt.Fprint(cmd.OutOrStdout(), display.RenderMonth(*m, isHijri, today))
	return nil
}
