package web

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/smokyabdulrahman/hijri-calendar/internal/i18n"
	"github.com/smokyabdulrahman/hijri-calendar/internal/ui"
)

// Meta is the static document metadata of a page.
type Meta struct {
	Title       string
	Description string
}

// metaFor returns the localized metadata of the named page. Each page has a
// "<name>.title" and "<name>.description" entry in the catalogues.
func metaFor(l *i18n.Catalog, name string) Meta {
	return Meta{
		Title:       l.T(name+".title") + " · " + l.T("app.name"),
		Description: l.T(name + ".description"),
	}
}

type link struct {
	Label   string
	Href    string
	Current bool
}

// pageData is what the layout templates see. Body holds the page's own view.
type pageData struct {
	Meta      Meta
	Heading   string
	L         *i18n.Catalog
	Lang      string
	Dir       string
	Nav       []link
	Languages []link
	Toast     template.HTML
	Body      any
}

var navPages = []struct {
	path string
	key  string
}{
	{"/", "nav.home"},
	{"/calendar", "calendar.title"},
	{"/today", "nav.today"},
	{"/convert", "nav.convert"},
}

// newPage prepares the layout for the page called name served at path.
func (s *Server) newPage(c *gin.Context, name string) *pageData {
	l := s.catalog(c)
	p := &pageData{
		Meta:    metaFor(l, name),
		Heading: l.T(name + ".title"),
		L:       l,
		Lang:    l.Lang(),
		Dir:     "ltr",
	}
	if l.RTL() {
		p.Dir = "rtl"
	}

	for _, n := range navPages {
		p.Nav = append(p.Nav, link{
			Label:   l.T(n.key),
			Href:    href(c, n.path, nil),
			Current: c.Request.URL.Path == n.path,
		})
	}

	for _, cat := range s.bundle.Catalogs() {
		q := c.Request.URL.Query()
		q.Set("lang", cat.Lang())
		p.Languages = append(p.Languages, link{
			Label:   cat.Name(),
			Href:    c.Request.URL.Path + "?" + q.Encode(),
			Current: cat.Lang() == l.Lang(),
		})
	}
	return p
}

func (s *Server) catalog(c *gin.Context) *i18n.Catalog {
	return s.bundle.Match(c.Query("lang"), c.GetHeader("Accept-Language"))
}

// setToast renders t into the page. A toast that fails to render is logged
// and left out; the page itself is still served.
func (p *pageData) setToast(c *gin.Context, t ui.Toast) {
	html, err := t.Render()
	if err != nil {
		requestLog(c).Error().Err(err).Msg("failed to render toast")
		return
	}
	p.Toast = html
}

// badInput marks the page as a 400 response caused by malformed query values.
func (p *pageData) badInput(c *gin.Context) int {
	p.setToast(c, ui.Toast{
		Open:        true,
		Variant:     ui.ToastDestructive,
		Title:       p.L.T("toast.badinput.title"),
		Description: p.L.T("toast.badinput.description"),
	})
	return http.StatusBadRequest
}

// upstreamError marks the page as a 502 response caused by a failed call to
// the calendar service.
func (p *pageData) upstreamError(c *gin.Context, err error) int {
	requestLog(c).Error().Err(err).Msg("calendar service call failed")
	p.setToast(c, ui.Toast{
		Open:        true,
		Variant:     ui.ToastDestructive,
		Title:       p.L.T("toast.error.title"),
		Description: "`" + err.Error() + "`",
		Action:      p.L.T("toast.error.action"),
		ActionHref:  c.Request.URL.RequestURI(),
	})
	return http.StatusBadGateway
}

// href builds a local link, carrying an explicit ?lang= choice along.
func href(c *gin.Context, path string, q url.Values) string {
	if lang := c.Query("lang"); lang != "" {
		if q == nil {
			q = url.Values{}
		}
		q.Set("lang", lang)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
