// Command tmux-hijri-date prints today's date for a tmux status line, e.g.
//
//	set -g status-right '#(tmux-hijri-date --format hijri)'
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
	"github.com/smokyabdulrahman/hijri-calendar/internal/config"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

func main() {
	apiURL := flag.String("api-url", "", "Calendar API base URL (default: $"+config.EnvAPIURL+", then "+api.DefaultBaseURL+")")
	format := flag.String("format", calendar.FormatHijri, "Display format: "+strings.Join(calendar.Formats, ", ")+", or a custom Go template (e.g. '{{.HijriDay}} {{.HijriMonthName}}'). Template fields are those of the API's date record.")

	showVersion := flag.Bool("version", false, "Print version and exit")
	listFormats := flag.Bool("list-formats", false, "Print the built-in formats with an example and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("tmux-hijri-date %s\n", version)
		return
	}

	if *listFormats {
		printFormats(os.Stdout)
		return
	}

	if *apiURL == "" {
		*apiURL = os.Getenv(config.EnvAPIURL)
	}

	if err := run(context.Background(), os.Stdout, *apiURL, *format); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// exampleDate is used to show what each format looks like.
var exampleDate = api.CalendarDate{
	HijriDay: 11, HijriMonth: 9, HijriYear: 1445, HijriMonthName: "Ramadan",
	GregorianDay: 21, GregorianMonth: 3, GregorianYear: 2024, GregorianMonthName: "March",
	Weekday: 4, WeekdayName: "Thursday",
}

// printFormats prints the table of built-in formats.
func printFormats(w io.Writer) {
	fmt.Fprintln(w, "Built-in formats:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-10s %s\n", "Format", "Example")
	fmt.Fprintf(w, "  %-10s %s\n", "──────", "───────")
	for _, f := range calendar.Formats {
		fmt.Fprintf(w, "  %-10s %s\n", f, calendar.FormatDate(exampleDate, f))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Any format containing {{ is run as a Go template.")
}

// run prints today's date without a trailing newline, as tmux expects.
func run(ctx context.Context, w io.Writer, apiURL, format string) error {
	if !calendar.ValidFormat(format) {
		return fmt.Errorf("invalid format %q", format)
	}

	d, err := api.NewClient(apiURL).GetCurrentDate(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(w, calendar.FormatDate(*d, format))
	return nil
}
