package ui

import (
	"html/template"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
)

// CalendarGrid renders a month as a seven-column table, Sunday first.
// Dates appear in the order the API returned them.
type CalendarGrid struct {
	Month   api.CalendarMonth
	IsHijri bool
	Today   *api.CalendarDate
	// Weekdays are the column headers, Sunday first.
	Weekdays []string
}

type gridCell struct {
	Empty     bool
	Primary   int
	Secondary int
	Today     bool
	Label     string
}

type gridView struct {
	Title    string
	Subtitle string
	Weekdays []string
	Weeks    [][]gridCell
}

// Render returns the grid markup.
func (g CalendarGrid) Render() (template.HTML, error) {
	v := gridView{
		Title:    calendar.Title(g.Month, g.IsHijri),
		Subtitle: calendar.Subtitle(g.Month, g.IsHijri),
		Weekdays: g.Weekdays,
	}

	for _, week := range calendar.Weeks(g.Month) {
		row := make([]gridCell, len(week))
		for i, d := range week {
			if d == nil {
				row[i] = gridCell{Empty: true}
				continue
			}
			row[i] = gridCell{
				Primary:   d.Day(g.IsHijri),
				Secondary: d.Day(!g.IsHijri),
				Today:     g.Today != nil && d.SameDay(*g.Today),
				Label:     calendar.FormatDate(*d, calendar.FormatBoth),
			}
		}
		v.Weeks = append(v.Weeks, row)
	}

	return render("grid", v)
}
