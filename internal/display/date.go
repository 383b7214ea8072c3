package display

import (
	"strings"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
)

// RenderDate prints a single date in both calendars under a heading.
func RenderDate(heading string, d api.CalendarDate) string {
	var sb strings.Builder
	sb.WriteString("\n  " + Bold(heading) + "\n\n")

	tbl := NewTable([]string{"Calendar", "Date"})
	tbl.AddRow([]string{"Gregorian", calendar.GregorianString(d)})
	tbl.AddRow([]string{"Hijri", calendar.HijriString(d)})
	tbl.SetHighlightRow(1)

	sb.WriteString(tbl.Render())
	return sb.String()
}
