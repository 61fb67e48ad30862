package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard/internal/requestid"
)

func newRouter(mw ...gin.HandlerFunc) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		seen = requestid.FromContext(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})
	return r, &seen
}

func TestRequestID_Generated(t *testing.T) {
	r, seen := newRouter(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	got := w.Header().Get(requestid.Header)
	if got == "" {
		t.Fatal("response has no request id")
	}
	if *seen != got {
		t.Errorf("context id %q != header id %q", *seen, got)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	r, seen := newRouter(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestid.Header, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(requestid.Header); got != "abc-123" {
		t.Errorf("header = %q, want abc-123", got)
	}
	if *seen != "abc-123" {
		t.Errorf("context = %q, want abc-123", *seen)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r, _ := newRouter(CORS())
	r.OPTIONS("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing allow-origin")
	}
}
