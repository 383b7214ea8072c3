package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newMiddlewareEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := newMiddlewareEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("response id %q is not a UUID: %v", id, err)
	}
	if w.Body.String() != id {
		t.Errorf("handler saw %q, header has %q", w.Body.String(), id)
	}
}

func TestRequestID_KeepsClientID(t *testing.T) {
	r := newMiddlewareEngine()
	want := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, want)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != want {
		t.Errorf("request id = %q, want %q", got, want)
	}
}

func TestRequestID_ReplacesMalformedID(t *testing.T) {
	r := newMiddlewareEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get(RequestIDHeader)
	if got == "<script>" {
		t.Fatal("malformed id should be replaced")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("replacement %q is not a UUID", got)
	}
}
