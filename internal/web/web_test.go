package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// today1445 is 21 March 2024, 11 Ramadan 1445.
func today1445() api.CalendarDate {
	return api.CalendarDate{
		HijriDay: 11, HijriMonth: 9, HijriYear: 1445,
		GregorianDay: 21, GregorianMonth: 3, GregorianYear: 2024,
		HijriMonthName: "Ramadan", GregorianMonthName: "March",
		Weekday: 4, WeekdayName: "Thursday",
	}
}

// ramadan1445 lists Ramadan 1445, which starts on Monday 11 March 2024.
func ramadan1445() api.CalendarMonth {
	m := api.CalendarMonth{
		HijriYear: 1445, HijriMonth: 9, GregorianYear: 2024, GregorianMonth: 3,
		HijriMonthName: "Ramadan", GregorianMonthName: "March",
	}
	for i := 0; i < 30; i++ {
		d := today1445()
		d.HijriDay = i + 1
		d.GregorianDay = 11 + i
		d.GregorianMonth = 3
		if d.GregorianDay > 31 {
			d.GregorianDay -= 31
			d.GregorianMonth = 4
		}
		d.Weekday = (1 + i) % 7
		d.WeekdayName = ""
		m.Dates = append(m.Dates, d)
	}
	return m
}

// fakeAPI serves the three calendar endpoints. Requests are recorded so
// tests can check what the pages asked for.
type fakeAPI struct {
	mu       sync.Mutex
	requests []*url.URL
	fail     map[string]int // path -> status
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL)
	status, failing := f.fail[r.URL.Path]
	f.mu.Unlock()
	if failing {
		http.Error(w, "upstream broke", status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/calendar/today", "/api/calendar/convert":
		json.NewEncoder(w).Encode(today1445())
	case "/api/calendar/month":
		json.NewEncoder(w).Encode(ramadan1445())
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) setFail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[path] = status
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) last(path string) *url.URL {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].Path == path {
			return f.requests[i]
		}
	}
	return nil
}

func newTestServer(t *testing.T) (http.Handler, *fakeAPI) {
	t.Helper()
	fake := &fakeAPI{fail: map[string]int{}}
	upstream := httptest.NewServer(fake)
	t.Cleanup(upstream.Close)

	bundle, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("i18n.Load() error: %v", err)
	}
	return NewServer(api.NewClient(upstream.URL), bundle).Handler(), fake
}

func get(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestHealthz(t *testing.T) {
	h, _ := newTestServer(t)

	w := get(t, h, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("GET /healthz = %d %q", w.Code, w.Body.String())
	}
}

func TestHome_ListsRolesInOrder(t *testing.T) {
	h, fake := newTestServer(t)

	w := get(t, h, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()

	assertContains(t, body,
		"<title>Choose your role · Hijri Calendar</title>",
		`<meta name="description" content="Pick how you use the calendar to get started.">`,
		`lang="en" dir="ltr"`,
	)

	last := -1
	for _, label := range []string{"Visitor", "Student", "Teacher", "Administrator"} {
		i := strings.Index(body, `<span class="role-label">`+label+`</span>`)
		if i < 0 {
			t.Fatalf("role %q missing", label)
		}
		if i < last {
			t.Errorf("role %q out of order", label)
		}
		last = i
	}

	if strings.Contains(body, "selected") || strings.Contains(body, `class="toast`) {
		t.Error("nothing should be selected without ?role=")
	}
	if fake.count() != 0 {
		t.Errorf("home page should not call the calendar service, made %d calls", fake.count())
	}
}

func TestHome_SelectedRole(t *testing.T) {
	h, _ := newTestServer(t)

	body := get(t, h, "/?role=teacher").Body.String()
	assertContains(t, body,
		`class="role-card selected" href="/?role=teacher" aria-current="true"`,
		`class="toast toast-success"`,
		"<strong>Teacher</strong>",
		`<a class="toast-action" href="/calendar">Open the calendar</a>`,
	)
}

func TestHome_UnknownRoleIgnored(t *testing.T) {
	h, _ := newTestServer(t)

	body := get(t, h, "/?role=root").Body.String()
	if strings.Contains(body, "role-card selected") || strings.Contains(body, "toast-success") {
		t.Error("unknown role should not be selected")
	}
}

func TestLanguage(t *testing.T) {
	h, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
		header []string
		want   string
	}{
		{"query", "/?lang=ar", nil, `lang="ar" dir="rtl"`},
		{"accept-language", "/", []string{"Accept-Language", "ar-SA,ar;q=0.9"}, `lang="ar" dir="rtl"`},
		{"query beats header", "/?lang=en", []string{"Accept-Language", "ar"}, `lang="en" dir="ltr"`},
		{"unsupported falls back", "/", []string{"Accept-Language", "fr-FR"}, `lang="en" dir="ltr"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := get(t, h, tt.target, tt.header...).Body.String()
			assertContains(t, body, tt.want)
		})
	}
}

func TestLanguage_CarriedInLinks(t *testing.T) {
	h, _ := newTestServer(t)

	body := get(t, h, "/?lang=ar").Body.String()
	assertContains(t, body, `href="/calendar?lang=ar"`, "اختر دورك", "العربية", "English")
}

func TestCalendar_DefaultsToCurrentHijriMonth(t *testing.T) {
	h, fake := newTestServer(t)

	w := get(t, h, "/calendar")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	q := fake.last("/api/calendar/month").Query()
	if q.Get("year") != "1445" || q.Get("month") != "9" || q.Get("calendar") != "hijri" {
		t.Errorf("month request query = %v", q)
	}

	assertContains(t, w.Body.String(),
		`<span class="grid-title">Ramadan 1445</span>`,
		`aria-current="date"`,
		`href="/calendar?calendar=hijri&amp;month=8&amp;year=1445"`,
		`href="/calendar?calendar=hijri&amp;month=10&amp;year=1445"`,
		`href="/calendar?calendar=gregorian&amp;month=3&amp;year=2024"`,
	)
}

func TestCalendar_ExplicitGregorianMonth(t *testing.T) {
	h, fake := newTestServer(t)

	w := get(t, h, "/calendar?calendar=gregorian&year=2024&month=12")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	q := fake.last("/api/calendar/month").Query()
	if q.Get("year") != "2024" || q.Get("month") != "12" || q.Get("calendar") != "gregorian" {
		t.Errorf("month request query = %v", q)
	}
	assertContains(t, w.Body.String(), `href="/calendar?calendar=gregorian&amp;month=1&amp;year=2025"`)
}

func TestCalendar_BadQuery(t *testing.T) {
	h, fake := newTestServer(t)

	for _, target := range []string{"/calendar?year=abc", "/calendar?year=1445&month=9.5"} {
		w := get(t, h, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", target, w.Code)
		}
		assertContains(t, w.Body.String(), `class="toast toast-destructive"`, "Invalid date")
	}
	if fake.count() != 0 {
		t.Errorf("bad input should not reach the calendar service, made %d calls", fake.count())
	}
}

func TestCalendar_UpstreamError(t *testing.T) {
	h, fake := newTestServer(t)
	fake.setFail("/api/calendar/month", http.StatusInternalServerError)

	w := get(t, h, "/calendar?year=1445&month=9")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	body := w.Body.String()
	assertContains(t, body,
		"Could not reach the calendar service",
		"API returned status 500: upstream broke",
		`<a class="toast-action" href="/calendar?year=1445&amp;month=9">Try again</a>`,
	)
	if strings.Contains(body, "calendar-grid") {
		t.Error("no grid should be rendered on error")
	}
}

func TestCalendar_TodayUnavailable(t *testing.T) {
	t.Run("month given renders without highlight", func(t *testing.T) {
		h, fake := newTestServer(t)
		fake.setFail("/api/calendar/today", http.StatusServiceUnavailable)

		w := get(t, h, "/calendar?year=1445&month=9")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if strings.Contains(w.Body.String(), `aria-current="date"`) {
			t.Error("no cell should be highlighted")
		}
	})

	t.Run("month missing fails", func(t *testing.T) {
		h, fake := newTestServer(t)
		fake.setFail("/api/calendar/today", http.StatusServiceUnavailable)

		w := get(t, h, "/calendar")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", w.Code)
		}
		if fake.last("/api/calendar/month") != nil {
			t.Error("month should not be fetched without a year and month")
		}
	})
}

func TestToday(t *testing.T) {
	h, _ := newTestServer(t)

	w := get(t, h, "/today")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	assertContains(t, w.Body.String(),
		"<title>Today · Hijri Calendar</title>",
		"11 Ramadan 1445 AH",
		"Thursday 21 March 2024",
		"2024-03-21 / 1445-09-11",
	)
}

func TestToday_UpstreamError(t *testing.T) {
	h, fake := newTestServer(t)
	fake.setFail("/api/calendar/today", http.StatusServiceUnavailable)

	w := get(t, h, "/today")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if strings.Contains(w.Body.String(), "date-card") {
		t.Error("no date card should be rendered on error")
	}
}

func TestConvert_FormOnly(t *testing.T) {
	h, fake := newTestServer(t)

	w := get(t, h, "/convert")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	assertContains(t, w.Body.String(), `<form class="convert"`, `<option value="hijri">Hijri</option>`)
	if fake.count() != 0 {
		t.Error("empty form should not call the calendar service")
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantFrom string
	}{
		{"from omitted", "/convert?year=2024&month=3&day=21", "gregorian"},
		{"from gregorian", "/convert?year=2024&month=3&day=21&from=gregorian", "gregorian"},
		{"from hijri", "/convert?year=1445&month=9&day=11&from=hijri", "hijri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fake := newTestServer(t)

			w := get(t, h, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if got := fake.last("/api/calendar/convert").Query().Get("from"); got != tt.wantFrom {
				t.Errorf("from = %q, want %q", got, tt.wantFrom)
			}
			assertContains(t, w.Body.String(), "11 Ramadan 1445 AH", "Thursday 21 March 2024")
		})
	}
}

func TestConvert_BadInput(t *testing.T) {
	h, fake := newTestServer(t)

	for _, target := range []string{
		"/convert?year=2024&month=3",
		"/convert?year=2024&month=3&day=x",
		"/convert?year=2024&month=3&day=21&from=julian",
	} {
		w := get(t, h, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", target, w.Code)
		}
	}
	if fake.count() != 0 {
		t.Errorf("bad input should not reach the calendar service, made %d calls", fake.count())
	}
}

func TestConvert_ForwardsOutOfRange(t *testing.T) {
	h, fake := newTestServer(t)
	fake.setFail("/api/calendar/convert", http.StatusBadRequest)

	w := get(t, h, "/convert?year=2024&month=13&day=40")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	q := fake.last("/api/calendar/convert").Query()
	if q.Get("month") != "13" || q.Get("day") != "40" {
		t.Errorf("out-of-range values should be forwarded, got %v", q)
	}
}

func TestStaticStylesheet(t *testing.T) {
	h, _ := newTestServer(t)

	w := get(t, h, "/static/style.css")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), ".calendar-grid") {
		t.Error("stylesheet content missing")
	}
}
