// Package display renders calendar data for the terminal.
//
// Styling uses raw ANSI escape codes and is switched off when stdout is not a
// terminal or NO_COLOR is set (https://no-color.org/). FORCE_COLOR turns it
// back on for tests and pagers.
package display

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
	fgGray = "\033[90m"
)

var enabled = detectColor()

func detectColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetEnabled overrides the detected color state, e.g. for --json output.
func SetEnabled(b bool) {
	enabled = b
}

// Enabled reports whether color output is currently active.
func Enabled() bool {
	return enabled
}

func style(text string, codes ...string) string {
	if !enabled || len(codes) == 0 {
		return text
	}
	var prefix string
	for _, c := range codes {
		prefix += c
	}
	return prefix + text + reset
}

// Bold returns text rendered in bold.
func Bold(text string) string { return style(text, bold) }

// Dim returns text rendered faint.
func Dim(text string) string { return style(text, dim) }

// Green returns text rendered in green.
func Green(text string) string { return style(text, green) }

// Red returns text rendered in red.
func Red(text string) string { return style(text, red) }

// Gray returns text rendered in bright black.
func Gray(text string) string { return style(text, fgGray) }

// Accent highlights today: bold cyan.
func Accent(text string) string { return style(text, bold, cyan) }

// Boldf formats and bolds a string.
func Boldf(format string, a ...any) string {
	return Bold(fmt.Sprintf(format, a...))
}
