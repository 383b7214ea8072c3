package web

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/calendar"
	"github.com/smokyabdulrahman/hijri-calendar/internal/i18n"
	"github.com/smokyabdulrahman/hijri-calendar/internal/ui"
)

// Roles offered on the home page, in display order.
var Roles = []string{"visitor", "student", "teacher", "admin"}

type homeBody struct {
	Roles template.HTML
}

func (s *Server) home(c *gin.Context) {
	p := s.newPage(c, "home")
	l := p.L

	selected := ""
	roles := make([]ui.Role, len(Roles))
	for i, id := range Roles {
		roles[i] = ui.Role{
			ID:          id,
			Label:       l.T("role." + id),
			Description: l.T("role." + id + ".description"),
			Href:        href(c, "/", url.Values{"role": {id}}),
		}
		if id == c.Query("role") {
			selected = id
		}
	}

	html, err := ui.RoleSelector{Roles: roles, Selected: selected}.Render()
	if err != nil {
		s.fail(c, err)
		return
	}
	p.Body = homeBody{Roles: html}

	if selected != "" {
		p.setToast(c, ui.Toast{
			Open:        true,
			Variant:     ui.ToastSuccess,
			Title:       l.T("toast.role.title"),
			Description: "**" + l.T("role."+selected) + "**: " + l.T("role."+selected+".description"),
			Action:      l.T("toast.role.action"),
			ActionHref:  href(c, "/calendar", nil),
		})
	}

	c.HTML(http.StatusOK, "home.html", p)
}

type calendarBody struct {
	Grid   template.HTML
	Prev   link
	Next   link
	Switch link
}

func (s *Server) calendar(c *gin.Context) {
	p := s.newPage(c, "calendar")
	l := p.L
	body := &calendarBody{}
	p.Body = body

	isHijri := c.Query("calendar") != api.SystemGregorian

	year, hasYear, err := intQuery(c, "year")
	if err != nil {
		c.HTML(p.badInput(c), "calendar.html", p)
		return
	}
	month, hasMonth, err := intQuery(c, "month")
	if err != nil {
		c.HTML(p.badInput(c), "calendar.html", p)
		return
	}

	ctx := c.Request.Context()

	// Today is only needed to fill in a missing year or month; otherwise
	// it just highlights a cell and the page works without it.
	today, err := s.client.GetCurrentDate(ctx)
	if err != nil {
		if !hasYear || !hasMonth {
			c.HTML(p.upstreamError(c, err), "calendar.html", p)
			return
		}
		requestLog(c).Warn().Err(err).Msg("today unavailable, not highlighting it")
		today = nil
	}

	ym := calendar.YearMonth{Year: year, Month: month}
	if today != nil {
		current := calendar.MonthOf(*today, isHijri)
		if !hasYear {
			ym.Year = current.Year
		}
		if !hasMonth {
			ym.Month = current.Month
		}
	}

	m, err := s.client.FetchCalendarMonth(ctx, ym.Year, ym.Month, isHijri)
	if err != nil {
		c.HTML(p.upstreamError(c, err), "calendar.html", p)
		return
	}
	if err := m.Validate(isHijri); err != nil {
		requestLog(c).Warn().Err(err).
			Int("year", ym.Year).
			Int("month", ym.Month).
			Str("calendar", api.SystemName(isHijri)).
			Msg("calendar service returned an inconsistent month")
	}

	grid, err := ui.CalendarGrid{
		Month:    *m,
		IsHijri:  isHijri,
		Today:    today,
		Weekdays: weekdays(l),
	}.Render()
	if err != nil {
		s.fail(c, err)
		return
	}

	body.Grid = grid
	body.Prev = monthLink(c, l.T("nav.prev"), ym.Prev(), isHijri)
	body.Next = monthLink(c, l.T("nav.next"), ym.Next(), isHijri)

	switchLabel := l.T("nav.switch." + api.SystemName(!isHijri))
	if len(m.Dates) > 0 {
		body.Switch = monthLink(c, switchLabel, calendar.MonthOf(m.Dates[0], !isHijri), !isHijri)
	} else {
		body.Switch = link{
			Label: switchLabel,
			Href:  href(c, "/calendar", url.Values{"calendar": {api.SystemName(!isHijri)}}),
		}
	}

	c.HTML(http.StatusOK, "calendar.html", p)
}

// dateCard shows one date in both calendars.
type dateCard struct {
	HijriLabel     string
	Hijri          string
	GregorianLabel string
	Gregorian      string
	ISO            string
}

func newDateCard(l *i18n.Catalog, d api.CalendarDate) *dateCard {
	return &dateCard{
		HijriLabel:     l.T("system.hijri"),
		Hijri:          calendar.HijriString(d),
		GregorianLabel: l.T("system.gregorian"),
		Gregorian:      calendar.GregorianString(d),
		ISO:            calendar.FormatDate(d, calendar.FormatISO),
	}
}

func (s *Server) today(c *gin.Context) {
	p := s.newPage(c, "today")

	d, err := s.client.GetCurrentDate(c.Request.Context())
	if err != nil {
		c.HTML(p.upstreamError(c, err), "today.html", p)
		return
	}
	p.Body = newDateCard(p.L, *d)

	c.HTML(http.StatusOK, "today.html", p)
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type convertBody struct {
	Year    string
	Month   string
	Day     string
	Systems []option
	Result  *dateCard
}

func (s *Server) convert(c *gin.Context) {
	p := s.newPage(c, "convert")
	l := p.L

	from := c.Query("from")
	body := &convertBody{
		Year:  c.Query("year"),
		Month: c.Query("month"),
		Day:   c.Query("day"),
	}
	for _, sys := range []string{api.SystemGregorian, api.SystemHijri} {
		body.Systems = append(body.Systems, option{
			Value:    sys,
			Label:    l.T("system." + sys),
			Selected: sys == from,
		})
	}
	p.Body = body

	if body.Year == "" && body.Month == "" && body.Day == "" {
		c.HTML(http.StatusOK, "convert.html", p)
		return
	}

	var req api.ConvertRequest
	var ok bool
	var err error
	for _, f := range []struct {
		key string
		dst *int
	}{{"year", &req.Year}, {"month", &req.Month}, {"day", &req.Day}} {
		*f.dst, ok, err = intQuery(c, f.key)
		if err != nil || !ok {
			c.HTML(p.badInput(c), "convert.html", p)
			return
		}
	}

	switch from {
	case "":
	case api.SystemHijri, api.SystemGregorian:
		isHijri := from == api.SystemHijri
		req.IsHijri = &isHijri
	default:
		c.HTML(p.badInput(c), "convert.html", p)
		return
	}

	d, err := s.client.ConvertDate(c.Request.Context(), req)
	if err != nil {
		c.HTML(p.upstreamError(c, err), "convert.html", p)
		return
	}
	body.Result = newDateCard(l, *d)

	c.HTML(http.StatusOK, "convert.html", p)
}

func (s *Server) fail(c *gin.Context, err error) {
	requestLog(c).Error().Err(err).Msg("failed to render page")
	c.String(http.StatusInternalServerError, "internal error")
}

// intQuery parses an optional integer query parameter. ok is false when the
// parameter is absent or blank.
func intQuery(c *gin.Context, key string) (v int, ok bool, err error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func monthLink(c *gin.Context, label string, ym calendar.YearMonth, isHijri bool) link {
	return link{
		Label: label,
		Href: href(c, "/calendar", url.Values{
			"calendar": {api.SystemName(isHijri)},
			"year":     {strconv.Itoa(ym.Year)},
			"month":    {strconv.Itoa(ym.Month)},
		}),
	}
}

func weekdays(l *i18n.Catalog) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = l.T("weekday." + strconv.Itoa(i))
	}
	return out
}
