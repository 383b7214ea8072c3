// Package web serves the calendar pages over HTTP.
//
// Pages are rendered on the server from the ui components. Every request
// that needs calendar data makes its own calls to the calendar service;
// nothing is shared between requests except the client, the templates and
// the string catalogues.
package web

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// CalendarService is the subset of the calendar API the pages use.
// *api.Client satisfies it.
type CalendarService interface {
	FetchCalendarMonth(ctx context.Context, year, month int, isHijri bool) (*api.CalendarMonth, error)
	ConvertDate(ctx context.Context, req api.ConvertRequest) (*api.CalendarDate, error)
	GetCurrentDate(ctx context.Context) (*api.CalendarDate, error)
}

// Server holds what the page handlers share.
type Server struct {
	client CalendarService
	bundle *i18n.Bundle
}

// NewServer creates a Server backed by client, translating pages with bundle.
func NewServer(client CalendarService, bundle *i18n.Bundle) *Server {
	return &Server{client: client, bundle: bundle}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes attaches the page routes to r.
func (s *Server) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", s.home)
	r.GET("/calendar", s.calendar)
	r.GET("/today", s.today)
	r.GET("/convert", s.convert)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}
