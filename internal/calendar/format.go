// Package calendar holds presentation helpers shared by the terminal and web
// surfaces: date formatting modes, month navigation and week layout.
// It performs no calendar arithmetic between systems; that is the API's job.
package calendar

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
)

// Format constants for display modes.
const (
	FormatBoth      = "both"
	FormatHijri     = "hijri"
	FormatGregorian = "gregorian"
	FormatISO       = "iso"
)

// Formats lists the built-in modes, for help text and config validation.
var Formats = []string{FormatBoth, FormatHijri, FormatGregorian, FormatISO}

// HijriString returns the date as "11 Ramadan 1445 AH".
func HijriString(d api.CalendarDate) string {
	name := d.HijriMonthName
	if name == "" {
		name = fmt.Sprintf("%02d", d.HijriMonth)
	}
	return fmt.Sprintf("%d %s %d AH", d.HijriDay, name, d.HijriYear)
}

// GregorianString returns the date as "Thursday 21 March 2024".
// The weekday is omitted when the API did not name it.
func GregorianString(d api.CalendarDate) string {
	name := d.GregorianMonthName
	if name == "" {
		name = fmt.Sprintf("%02d", d.GregorianMonth)
	}
	s := fmt.Sprintf("%d %s %d", d.GregorianDay, name, d.GregorianYear)
	if d.WeekdayName != "" {
		s = d.WeekdayName + " " + s
	}
	return s
}

// FormatDate renders d according to mode.
//
// If mode contains "{{", it is treated as a custom Go template executed
// against the CalendarDate, e.g. "{{.HijriDay}}/{{.HijriMonth}}/{{.HijriYear}}".
// Unknown modes fall back to FormatBoth.
func FormatDate(d api.CalendarDate, mode string) string {
	if strings.Contains(mode, "{{") {
		return formatCustom(mode, d)
	}

	switch mode {
	case FormatHijri:
		return HijriString(d)
	case FormatGregorian:
		return GregorianString(d)
	case FormatISO:
		return fmt.Sprintf("%04d-%02d-%02d / %04d-%02d-%02d",
			d.GregorianYear, d.GregorianMonth, d.GregorianDay,
			d.HijriYear, d.HijriMonth, d.HijriDay)
	default:
		return GregorianString(d) + " | " + HijriString(d)
	}
}

// ValidFormat reports whether mode is a built-in mode or a template.
func ValidFormat(mode string) bool {
	if strings.Contains(mode, "{{") {
		return true
	}
	for _, f := range Formats {
		if f == mode {
			return true
		}
	}
	return false
}

func formatCustom(tmpl string, d api.CalendarDate) string {
	t, err := template.New("custom").Parse(tmpl)
	if err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	return buf.String()
}
