package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/julisunkan/sbp-pwa/internal/config"
	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/storage"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	cfg := &config.Config{}
	router, err := Router(context.Background(), store, cfg)
	if err != nil {
		t.Fatalf("Router failed: %v", err)
	}
	return router
}

func do(t *testing.T, router *mux.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func addQuestion(t *testing.T, router *mux.Router, kind string) domains.Question {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/api/survey/questions", map[string]string{"type": kind})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add question status = %d, body %s", rec.Code, rec.Body)
	}
	var question domains.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &question); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	return question
}

func TestGetSurveyEmpty(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/survey", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var snapshot domains.SurveySnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snapshot.Questions) != 0 || snapshot.CurrentQuestionID != 0 {
		t.Fatalf("snapshot = %+v", snapshot)
	}
}

func TestQuestionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	question := addQuestion(t, router, "short-answer")
	if question.ID != 1 || question.Title != "Short Answer Question" {
		t.Fatalf("created question = %+v", question)
	}

	rec := do(t, router, http.MethodPatch, "/api/survey/questions/1",
		map[string]any{"title": "Your name", "required": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body)
	}
	var patched domains.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &patched); err != nil {
		t.Fatalf("decode patched question: %v", err)
	}
	if patched.Title != "Your name" || !patched.Required {
		t.Fatalf("patched question = %+v", patched)
	}

	rec = do(t, router, http.MethodDelete, "/api/survey/questions/1", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = do(t, router, http.MethodDelete, "/api/survey/questions/1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", rec.Code)
	}
}

func TestAddQuestionRequiresType(t *testing.T) {
	router := newTestRouter(t)
	rec := do(t, router, http.MethodPost, "/api/survey/questions", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestUpdateQuestionBadID(t *testing.T) {
	router := newTestRouter(t)
	rec := do(t, router, http.MethodPatch, "/api/survey/questions/abc", map[string]any{"title": "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestOptionEndpoints(t *testing.T) {
	router := newTestRouter(t)
	addQuestion(t, router, "radio")

	rec := do(t, router, http.MethodPost, "/api/survey/questions/1/options", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add option status = %d, body %s", rec.Code, rec.Body)
	}

	rec = do(t, router, http.MethodPut, "/api/survey/questions/1/options/0",
		map[string]string{"value": "Strongly agree"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update option status = %d, body %s", rec.Code, rec.Body)
	}
	var updated domains.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	if updated.Options[0] != "Strongly agree" {
		t.Fatalf("options = %v", updated.Options)
	}

	rec = do(t, router, http.MethodPut, "/api/survey/questions/1/options/9",
		map[string]string{"value": "x"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("out of range update status = %d", rec.Code)
	}

	// Shrink to one option, then hit the floor.
	do(t, router, http.MethodDelete, "/api/survey/questions/1/options/2", nil)
	do(t, router, http.MethodDelete, "/api/survey/questions/1/options/1", nil)
	rec = do(t, router, http.MethodDelete, "/api/survey/questions/1/options/0", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("last option delete status = %d, body %s", rec.Code, rec.Body)
	}
}

func TestSurveyInfoUpdate(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPut, "/api/survey",
		map[string]string{"title": "Feedback", "description": "Quarterly"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var survey domains.Survey
	if err := json.Unmarshal(rec.Body.Bytes(), &survey); err != nil {
		t.Fatalf("decode survey: %v", err)
	}
	if survey.Title != "Feedback" || survey.Description != "Quarterly" {
		t.Fatalf("survey = %+v", survey)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPut, "/api/settings",
		map[string]string{"userId": "bad id!", "serviceId": "svc", "templateId": "tpl"})
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, body %s", rec.Code, rec.Body)
	}
	var saved SettingsSaveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(saved.Warnings) != 1 || saved.Warnings[0] != "User ID contains invalid characters" {
		t.Fatalf("warnings = %v", saved.Warnings)
	}
	if saved.Settings.LastUpdated == nil {
		t.Fatal("save must stamp lastUpdated")
	}

	rec = do(t, router, http.MethodGet, "/api/settings", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var loaded domains.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &loaded); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if loaded.UserID != "bad id!" {
		t.Fatalf("settings = %+v", loaded)
	}

	rec = do(t, router, http.MethodDelete, "/api/settings", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", rec.Code)
	}
}

func TestRenderEndpoints(t *testing.T) {
	router := newTestRouter(t)
	addQuestion(t, router, "short-answer")

	rec := do(t, router, http.MethodGet, "/api/preview", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Short Answer Question") {
		t.Fatalf("preview status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("preview content type = %q", ct)
	}

	rec = do(t, router, http.MethodGet, "/api/editor", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `data-question-id="1"`) {
		t.Fatalf("editor status = %d, body %s", rec.Code, rec.Body)
	}

	rec = do(t, router, http.MethodGet, "/api/survey/questions/1/editor", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("editor block status = %d", rec.Code)
	}
	rec = do(t, router, http.MethodGet, "/api/survey/questions/42/editor", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown editor block status = %d", rec.Code)
	}

	rec = do(t, router, http.MethodGet, "/api/embed", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Fatalf("embed status = %d", rec.Code)
	}
}

func TestDownloadBundle(t *testing.T) {
	router := newTestRouter(t)
	addQuestion(t, router, "short-answer")

	rec := do(t, router, http.MethodGet, "/api/export/bundle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("content type = %q", ct)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="survey-`) || !strings.HasSuffix(disposition, `.zip"`) {
		t.Fatalf("content disposition = %q", disposition)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("bundle body is empty")
	}
}
