package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskboard/internal/requestid"
)

func TestDo_SendsJSONAndHeaders(t *testing.T) {
	var got struct {
		method, path, contentType, auth, reqID string
		body                                   map[string]any
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.contentType = r.Header.Get("Content-Type")
		got.auth = r.Header.Get("Authorization")
		got.reqID = r.Header.Get(requestid.Header)
		_ = json.NewDecoder(r.Body).Decode(&got.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "title": "new"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second, "s3cret")
	ctx := requestid.WithID(context.Background(), "req-1")

	var out struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	if err := c.Post(ctx, "/api/tasks", map[string]string{"title": "new"}, &out); err != nil {
		t.Fatalf("Post: %v", err)
	}

	if got.method != http.MethodPost || got.path != "/api/tasks" {
		t.Errorf("request = %s %s", got.method, got.path)
	}
	if got.contentType != "application/json" {
		t.Errorf("content-type = %q", got.contentType)
	}
	if got.body["title"] != "new" {
		t.Errorf("body = %v", got.body)
	}
	if got.reqID != "req-1" {
		t.Errorf("request id = %q", got.reqID)
	}
	if out.ID != 7 || out.Title != "new" {
		t.Errorf("decoded = %+v", out)
	}

	raw := strings.TrimPrefix(got.auth, "Bearer ")
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) { return []byte("s3cret"), nil },
		jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		t.Fatalf("service token invalid: %v", err)
	}
	if claims.Issuer != "taskboard" || claims.Subject != "frontend" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestDo_NoTokenWithoutSecret(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var out []any
	if err := New(srv.URL, time.Second, "").Get(context.Background(), "/api/users", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if auth != "" {
		t.Errorf("unexpected Authorization %q", auth)
	}
}

func TestDo_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		notFound bool
	}{
		{"server message", http.StatusBadRequest, `{"error": "Title is required"}`, "Title is required", false},
		{"not found", http.StatusNotFound, `{"error": "Task not found"}`, "Task not found", true},
		{"html body", http.StatusInternalServerError, `<html>oops</html>`, "", false},
		{"empty body", http.StatusBadGateway, ``, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := New(srv.URL, time.Second, "").Delete(context.Background(), "/api/tasks/1")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.Status != tt.status || apiErr.Message != tt.wantMsg {
				t.Errorf("got status=%d msg=%q", apiErr.Status, apiErr.Message)
			}
			if IsNotFound(err) != tt.notFound {
				t.Errorf("IsNotFound = %v", IsNotFound(err))
			}
		})
	}
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New(url, time.Second, "").Get(context.Background(), "/api/tasks", nil)
	if err == nil {
		t.Fatal("expected an error from a closed server")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not be an APIError: %v", err)
	}
}
