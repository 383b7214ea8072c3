package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <year> <month> <day>",
		Short: "Convert a date between calendars",
		Long: "Convert one date into both calendars. The date is Gregorian unless --hijri is given.\n\n" +
			"Examples:\n  hijri-calendar convert 2024 3 21\n  hijri-calendar convert 1445 9 11 --hijri",
		Args: cobra.ExactArgs(3),
		RunE: runConvert,
	}

	cmd.Flags().Bool("hijri", false, "Treat the input date as Hijri")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	nums, err := parseInts([]string{"year", "month", "day"}, args)
	if err != nil {
		return err
	}
	req := api.ConvertRequest{Year: nums[0], Month: nums[1], Day: nums[2]}
	if cmd.Flags().Changed("hijri") {
		isHijri, _ := cmd.Flags().GetBool("hijri")
		req.IsHijri = &isHijri
	}

	d, err := api.NewClient(cfg.APIURL).ConvertDate(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printDate(cmd, cfg, "Converted", *d)
}

// parseInts parses positional arguments named by names. Range checks are
// left to the calendar service.
func parseInts(names, args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: must be an integer", names[i], a)
		}
		out[i] = n
	}
	return out, nil
}
