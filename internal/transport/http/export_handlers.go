package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/julisunkan/sbp-pwa/internal/httpx"
	"github.com/julisunkan/sbp-pwa/internal/service"
)

type ExportHandlers struct {
	service ExportServices
}

type ExportServices interface {
	Preview() string
	Editor() string
	EditorBlock(id int) (string, error)
	EmbedDocument(ctx context.Context) (string, error)
	Bundle(ctx context.Context) (string, []byte, error)
}

func NewExportHandlers(service ExportServices) *ExportHandlers {
	return &ExportHandlers{service: service}
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (h *ExportHandlers) GetPreview(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.service.Preview())
}

func (h *ExportHandlers) GetEditor(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.service.Editor())
}

func (h *ExportHandlers) GetEditorBlock(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt(w, r, "id")
	if !ok {
		return
	}

	block, err := h.service.EditorBlock(id)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			httpx.Error(w, http.StatusNotFound, "Question not found")
			return
		}
		slog.Error("GetEditorBlock failed", "err", err, "question_id", id)
		httpx.Error(w, http.StatusInternalServerError, "Failed to render the question")
		return
	}
	writeHTML(w, block)
}

func (h *ExportHandlers) GetEmbed(w http.ResponseWriter, r *http.Request) {
	document, err := h.service.EmbedDocument(r.Context())
	if err != nil {
		slog.Error("GetEmbed failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to generate the embed code")
		return
	}
	writeHTML(w, document)
}

func (h *ExportHandlers) DownloadBundle(w http.ResponseWriter, r *http.Request) {
	name, data, err := h.service.Bundle(r.Context())
	if err != nil {
		slog.Error("DownloadBundle failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to generate ZIP file")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
