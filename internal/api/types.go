package api

import "fmt"

// Calendar system names as the API expects them in query parameters.
const (
	SystemHijri     = "hijri"
	SystemGregorian = "gregorian"
)

// SystemName returns the query value for the given calendar flag.
func SystemName(isHijri bool) string {
	if isHijri {
		return SystemHijri
	}
	return SystemGregorian
}

// CalendarDate is a single day in both calendars, as returned by the API.
type CalendarDate struct {
	HijriDay           int    `json:"hijriDay"`
	HijriMonth         int    `json:"hijriMonth"`
	HijriYear          int    `json:"hijriYear"`
	GregorianDay       int    `json:"gregorianDay"`
	GregorianMonth     int    `json:"gregorianMonth"`
	GregorianYear      int    `json:"gregorianYear"`
	HijriMonthName     string `json:"hijriMonthName"`
	GregorianMonthName string `json:"gregorianMonthName"`
	Weekday            int    `json:"weekday"` // 0 = Sunday
	WeekdayName        string `json:"weekdayName"`
}

// SameDay reports whether d and o describe the same Gregorian day.
func (d CalendarDate) SameDay(o CalendarDate) bool {
	return d.GregorianYear == o.GregorianYear &&
		d.GregorianMonth == o.GregorianMonth &&
		d.GregorianDay == o.GregorianDay
}

// Day returns the day-of-month in the requested calendar.
func (d CalendarDate) Day(isHijri bool) int {
	if isHijri {
		return d.HijriDay
	}
	return d.GregorianDay
}

// CalendarMonth is a month listing. Dates are in calendar-day order.
type CalendarMonth struct {
	HijriYear          int            `json:"hijriYear"`
	HijriMonth         int            `json:"hijriMonth"`
	GregorianYear      int            `json:"gregorianYear"`
	GregorianMonth     int            `json:"gregorianMonth"`
	Dates              []CalendarDate `json:"dates"`
	HijriMonthName     string         `json:"hijriMonthName"`
	GregorianMonthName string         `json:"gregorianMonthName"`
}

// Validate checks that every date belongs to the month window of the given
// calendar and that days are strictly increasing. The client never calls it;
// the remote service is trusted and callers decide what to do with a mismatch.
func (m CalendarMonth) Validate(isHijri bool) error {
	year, month := m.GregorianYear, m.GregorianMonth
	if isHijri {
		year, month = m.HijriYear, m.HijriMonth
	}

	prev := 0
	for i, d := range m.Dates {
		dy, dm := d.GregorianYear, d.GregorianMonth
		if isHijri {
			dy, dm = d.HijriYear, d.HijriMonth
		}
		if dy != year || dm != month {
			return fmt.Errorf("date %d (%d-%02d) outside month window %d-%02d", i, dy, dm, year, month)
		}
		day := d.Day(isHijri)
		if day <= prev {
			return fmt.Errorf("date %d out of order: day %d after day %d", i, day, prev)
		}
		prev = day
	}
	return nil
}

// ConvertRequest holds the parameters of a single-date conversion.
// A nil IsHijri means the source date is Gregorian.
type ConvertRequest struct {
	Year    int
	Month   int
	Day     int
	IsHijri *bool
}

// Source returns the calendar system the request converts from.
func (r ConvertRequest) Source() string {
	if r.IsHijri != nil && *r.IsHijri {
		return SystemHijri
	}
	return SystemGregorian
}
