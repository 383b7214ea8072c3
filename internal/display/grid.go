package display

import (
	"strconv"
	"strings"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
)

// WeekdayHeaders are the grid column labels, Sunday first.
var WeekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderMonth draws a month as a weekday grid. Each cell shows the day in the
// primary calendar followed by the other calendar's day, e.g. "11·21".
// today, when it falls inside the month, is highlighted.
func RenderMonth(m api.CalendarMonth, isHijri bool, today *api.CalendarDate) string {
	var sb strings.Builder

	sb.WriteString("\n  " + Bold(calendar.Title(m, isHijri)))
	if sub := calendar.Subtitle(m, isHijri); sub != "" {
		sb.WriteString("  " + Gray(sub))
	}
	sb.WriteString("\n\n")

	weeks := calendar.Weeks(m)
	if len(weeks) == 0 {
		sb.WriteString("  " + Dim("(no dates)") + "\n")
		return sb.String()
	}

	tbl := NewTable(WeekdayHeaders)
	for r, week := range weeks {
		row := make([]string, len(week))
		for c, d := range week {
			if d == nil {
				continue
			}
			row[c] = cell(*d, isHijri)
			if today != nil && d.SameDay(*today) {
				tbl.SetHighlightCell(r, c)
			}
		}
		tbl.AddRow(row)
	}

	sb.WriteString(tbl.Render())
	return sb.String()
}

func cell(d api.CalendarDate, isHijri bool) string {
	return strconv.Itoa(d.Day(isHijri)) + "·" + strconv.Itoa(d.Day(!isHijri))
}
