package calendar

import (
	"strconv"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
)

// YearMonth identifies a month in either calendar. Both systems have twelve
// months, so navigation is the same for each.
type YearMonth struct {
	Year  int
	Month int
}

// Prev returns the month before ym.
func (ym YearMonth) Prev() YearMonth {
	if ym.Month <= 1 {
		return YearMonth{Year: ym.Year - 1, Month: 12}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// Next returns the month after ym.
func (ym YearMonth) Next() YearMonth {
	if ym.Month >= 12 {
		return YearMonth{Year: ym.Year + 1, Month: 1}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// MonthOf returns the month containing d in the requested calendar.
func MonthOf(d api.CalendarDate, isHijri bool) YearMonth {
	if isHijri {
		return YearMonth{Year: d.HijriYear, Month: d.HijriMonth}
	}
	return YearMonth{Year: d.GregorianYear, Month: d.GregorianMonth}
}

// Weeks lays out the month's dates in rows of seven, Sunday first. Cells
// before the first date and after the last are nil. Dates keep the order the
// API returned them in; a date's weekday only decides the first row's offset.
func Weeks(m api.CalendarMonth) [][]*api.CalendarDate {
	if len(m.Dates) == 0 {
		return nil
	}

	offset := m.Dates[0].Weekday
	if offset < 0 || offset > 6 {
		offset = 0
	}

	cells := make([]*api.CalendarDate, offset, offset+len(m.Dates)+6)
	for i := range m.Dates {
		cells = append(cells, &m.Dates[i])
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	weeks := make([][]*api.CalendarDate, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// Title returns "Ramadan 1445" or "March 2024" for the month header.
func Title(m api.CalendarMonth, isHijri bool) string {
	if isHijri {
		return joinName(m.HijriMonthName, m.HijriYear)
	}
	return joinName(m.GregorianMonthName, m.GregorianYear)
}

// Subtitle returns the other calendar's month name and year.
func Subtitle(m api.CalendarMonth, isHijri bool) string {
	return Title(m, !isHijri)
}

func joinName(name string, year int) string {
	if name == "" {
		return strconv.Itoa(year)
	}
	return name + " " + strconv.Itoa(year)
}
