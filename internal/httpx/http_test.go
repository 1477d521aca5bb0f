package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func TestReadBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"survey"}`))
	body, err := ReadBody[payload](req)
	if err != nil {
		t.Fatalf("ReadBody failed: %v", err)
	}
	if body.Name != "survey" {
		t.Fatalf("body = %+v", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{broken"))
	if _, err := ReadBody[payload](req); err == nil {
		t.Fatal("malformed body must fail")
	}
}

func TestJSONAndError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"id": 7})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}

	rec = httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "Question not found")
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if rec.Code != http.StatusNotFound || resp.Error != "Question not found" {
		t.Fatalf("status = %d, error = %q", rec.Code, resp.Error)
	}
}

func TestPathInt(t *testing.T) {
	router := mux.NewRouter()
	var got int
	var ok bool
	router.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, ok = PathInt(w, r, "id")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	if !ok || got != 42 {
		t.Fatalf("PathInt = %d, %v", got, ok)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	if ok {
		t.Fatal("PathInt must fail on non-numeric input")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
