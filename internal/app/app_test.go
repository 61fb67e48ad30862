package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/config"
	"taskboard/internal/requestid"
)

// upstream fakes the task API and records what it was sent.
type upstream struct {
	mu       sync.Mutex
	requests []string
	reqIDs   []string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.requests = append(u.requests, r.Method+" "+r.URL.Path)
	u.reqIDs = append(u.reqIDs, r.Header.Get(requestid.Header))
	u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/tasks":
		_, _ = w.Write([]byte(`[{"id": 1, "title": "Upstream task", "status": "pending", "priority": "low",
			"due_date": "2026-10-21T09:00:00", "assigned_to": null}]`))
	case r.Method == http.MethodGet && r.URL.Path == "/api/users":
		_, _ = w.Write([]byte(`[{"id": 1, "username": "alice", "email": "a@example.com"}]`))
	case r.Method == http.MethodPut && r.URL.Path == "/api/tasks/1":
		_, _ = w.Write([]byte(`{"id": 1, "title": "Renamed"}`))
	case r.Method == http.MethodPost && r.URL.Path == "/api/tasks":
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Title is required"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not found"}`))
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *upstream) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	up := &upstream{}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		API:      config.APIConfig{BaseURL: srv.URL, Timeout: time.Second},
		Calendar: config.CalendarConfig{Timezone: "UTC", MaxVisible: 3, DeadlineDays: 7},
	}
	router, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return router, up
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("health = %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get(requestid.Header) == "" {
		t.Error("missing request id header")
	}
}

func TestRouter_TaskListFromUpstream(t *testing.T) {
	router, up := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(requestid.Header, "trace-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Upstream task") {
		t.Fatalf("tasks page = %d", w.Code)
	}
	for _, id := range up.reqIDs {
		if id != "trace-42" {
			t.Errorf("upstream saw request id %q", id)
		}
	}
}

func TestRouter_SaveCreatesAndUpdates(t *testing.T) {
	router, up := newTestRouter(t)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := post(url.Values{"id": {"1"}, "title": {"Renamed"}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/tasks" {
		t.Errorf("update = %d %q", w.Code, w.Header().Get("Location"))
	}

	w = post(url.Values{"title": {"New"}})
	if loc := w.Header().Get("Location"); loc != "/tasks/new?alert=Title+is+required" {
		t.Errorf("create failure Location = %q", loc)
	}

	want := []string{"PUT /api/tasks/1", "POST /api/tasks"}
	if len(up.requests) != len(want) {
		t.Fatalf("upstream requests = %v", up.requests)
	}
	for i := range want {
		if up.requests[i] != want[i] {
			t.Errorf("request %d = %q, want %q", i, up.requests[i], want[i])
		}
	}
}

func TestRouter_CalendarAPI(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar?year=2026&month=10", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"title":"October 2026"`) {
		t.Errorf("calendar api = %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing on /api")
	}
}
