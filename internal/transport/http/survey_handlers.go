package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/httpx"
	"github.com/julisunkan/sbp-pwa/internal/service"
)

type BuilderHandlers struct {
	service BuilderServices
}

type BuilderServices interface {
	Snapshot() domains.SurveySnapshot
	SetSurveyInfo(ctx context.Context, update domains.SurveyUpdate) domains.Survey
	AddQuestion(ctx context.Context, kind domains.QuestionKind) domains.Question
	UpdateQuestion(ctx context.Context, id int, patch domains.QuestionPatch) (domains.Question, error)
	DeleteQuestion(ctx context.Context, id int) error
	AddOption(ctx context.Context, id int) (domains.Question, error)
	UpdateOption(ctx context.Context, id, index int, value string) (domains.Question, error)
	RemoveOption(ctx context.Context, id, index int) (domains.Question, error)
}

func NewBuilderHandlers(service BuilderServices) *BuilderHandlers {
	return &BuilderHandlers{service: service}
}

func (h *BuilderHandlers) GetSurvey(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Snapshot())
}

func (h *BuilderHandlers) UpdateSurveyInfo(w http.ResponseWriter, r *http.Request) {
	update, err := httpx.ReadBody[domains.SurveyUpdate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	survey := h.service.SetSurveyInfo(r.Context(), update)
	httpx.JSON(w, http.StatusOK, survey)
}

func (h *BuilderHandlers) AddQuestion(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.ReadBody[AddQuestionRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Type == "" {
		httpx.Error(w, http.StatusBadRequest, "type is required")
		return
	}

	question := h.service.AddQuestion(r.Context(), domains.QuestionKind(body.Type))
	httpx.JSON(w, http.StatusCreated, question)
}

func (h *BuilderHandlers) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt(w, r, "id")
	if !ok {
		return
	}

	patch, err := httpx.ReadBody[domains.QuestionPatch](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(), id, patch)
	if err != nil {
		h.writeQuestionError(w, err, "UpdateQuestion", id)
		return
	}
	httpx.JSON(w, http.StatusOK, question)
}

func (h *BuilderHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		h.writeQuestionError(w, err, "DeleteQuestion", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BuilderHandlers) AddOption(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt(w, r, "id")
	if !ok {
		return
	}

	question, err := h.service.AddOption(r.Context(), id)
	if err != nil {
		h.writeQuestionError(w, err, "AddOption", id)
		return
	}
	httpx.JSON(w, http.StatusCreated, question)
}

func (h *BuilderHandlers) UpdateOption(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt(w, r, "id")
	if !ok {
		return
	}
	index, ok := httpx.PathInt(w, r, "index")
	if !ok {
		return
	}

	body, err := httpx.ReadBody[OptionValueRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	question, err := h.service.UpdateOption(r.Context(), id, index, body.Value)
	if err != nil {
		h.writeQuestionError(w, err, "UpdateOption", id)
		return
	}
	httpx.JSON(w, http.StatusOK, question)
}

func (h *BuilderHandlers) RemoveOption(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt(w, r, "id")
	if !ok {
		return
	}
	index, ok := httpx.PathInt(w, r, "index")
	if !ok {
		return
	}

	question, err := h.service.RemoveOption(r.Context(), id, index)
	if err != nil {
		h.writeQuestionError(w, err, "RemoveOption", id)
		return
	}
	httpx.JSON(w, http.StatusOK, question)
}

func (h *BuilderHandlers) writeQuestionError(w http.ResponseWriter, err error, op string, id int) {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		httpx.Error(w, http.StatusNotFound, "Question not found")
	case errors.Is(err, domains.ErrOptionNotFound):
		httpx.Error(w, http.StatusNotFound, "Option not found")
	case errors.Is(err, domains.ErrLastOption):
		httpx.Error(w, http.StatusConflict, "A question must have at least one option")
	default:
		slog.Error(op+" failed", "err", err, "question_id", id)
		httpx.Error(w, http.StatusInternalServerError, "Failed to update the survey")
	}
}
