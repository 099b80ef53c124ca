package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestApp_KnownRoutes(t *testing.T) {
	app := NewApp()

	status, body := app.HandleRequest("/app/status", "GET")
	if status != http.StatusOK || body != "Ok" {
		t.Fatalf("expected (200, Ok), got (%d, %q)", status, body)
	}

	status, body = app.HandleRequest("/create/user", "POST")
	if status != http.StatusCreated || body != "User Created" {
		t.Fatalf("expected (201, User Created), got (%d, %q)", status, body)
	}
}

func TestApp_UnknownRouteOrMethodIs404(t *testing.T) {
	app := NewApp()

	status, body := app.HandleRequest("/create/user", "GET")
	if status != http.StatusNotFound || body != "Not Ok" {
		t.Fatalf("expected (404, Not Ok) for wrong method, got (%d, %q)", status, body)
	}

	status, body = app.HandleRequest("/nada", "GET")
	if status != http.StatusNotFound || body != "Not Ok" {
		t.Fatalf("expected (404, Not Ok) for unknown path, got (%d, %q)", status, body)
	}
}

func TestApp_ServeHTTP(t *testing.T) {
	app := NewApp()

	r := httptest.NewRequest(http.MethodPost, "http://example/create/user", nil)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	got, _ := io.ReadAll(w.Result().Body)
	if string(got) != "User Created" {
		t.Fatalf("expected body %q, got %q", "User Created", string(got))
	}
}
