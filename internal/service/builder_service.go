package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/julisunkan/sbp-pwa/internal/domains"
)

// SnapshotProvider persists the builder state between sessions.
type SnapshotProvider interface {
	Load(ctx context.Context) (domains.SurveySnapshot, error)
	Save(ctx context.Context, snapshot domains.SurveySnapshot) error
	Clear(ctx context.Context) error
}

// BuilderService owns the in-memory survey being edited. All mutations go
// through it, every successful one writes the snapshot back to the provider.
// Persistence failures are logged, never surfaced, editing keeps working on
// the in-memory state.
type BuilderService struct {
	provider SnapshotProvider

	mu             sync.Mutex
	questions      []domains.Question
	title          string
	description    string
	lastQuestionID int
}

func NewBuilderService(provider SnapshotProvider) *BuilderService {
	return &BuilderService{provider: provider}
}

// Restore loads the persisted snapshot into memory. The id counter resumes
// past the highest stored value so restored questions never collide with new
// ones.
func (s *BuilderService) Restore(ctx context.Context) error {
	snapshot, err := s.provider.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = snapshot.Survey().Questions
	s.title = snapshot.SurveyTitle
	s.description = snapshot.SurveyDescription
	s.lastQuestionID = snapshot.CurrentQuestionID
	for _, question := range s.questions {
		if question.ID > s.lastQuestionID {
			s.lastQuestionID = question.ID
		}
	}
	return nil
}

// Survey returns a copy of the current editing state.
func (s *BuilderService) Survey() domains.Survey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surveyLocked()
}

// Snapshot returns the persistable form of the current state.
func (s *BuilderService) Snapshot() domains.SurveySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *BuilderService) surveyLocked() domains.Survey {
	questions := make([]domains.Question, len(s.questions))
	copy(questions, s.questions)
	return domains.Survey{
		Title:       s.title,
		Description: s.description,
		Questions:   questions,
	}
}

func (s *BuilderService) snapshotLocked() domains.SurveySnapshot {
	questions := make([]domains.Question, len(s.questions))
	copy(questions, s.questions)
	return domains.SurveySnapshot{
		Questions:         questions,
		CurrentQuestionID: s.lastQuestionID,
		SurveyTitle:       s.title,
		SurveyDescription: s.description,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *BuilderService) persistLocked(ctx context.Context) {
	if err := s.provider.Save(ctx, s.snapshotLocked()); err != nil {
		slog.Warn("save snapshot failed", "err", err)
	}
}

// SetSurveyInfo applies title and description changes.
func (s *BuilderService) SetSurveyInfo(ctx context.Context, update domains.SurveyUpdate) domains.Survey {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.HasChanges() {
		if update.Title != nil {
			s.title = *update.Title
		}
		if update.Description != nil {
			s.description = *update.Description
		}
		s.persistLocked(ctx)
	}
	return s.surveyLocked()
}

// AddQuestion appends a new question of the given kind with its defaults.
// Unknown kinds get the base shape, they are kept rather than rejected.
func (s *BuilderService) AddQuestion(ctx context.Context, kind domains.QuestionKind) domains.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastQuestionID++
	question := domains.NewQuestion(s.lastQuestionID, kind)
	s.questions = append(s.questions, question)
	s.persistLocked(ctx)
	return question
}

// UpdateQuestion applies a field-subset patch to the question with the given
// id.
func (s *BuilderService) UpdateQuestion(ctx context.Context, id int, patch domains.QuestionPatch) (domains.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domains.Question{}, ErrQuestionNotFound
	}
	if !patch.HasChanges() {
		return s.questions[idx], nil
	}

	s.questions[idx] = domains.ApplyPatch(s.questions[idx], patch)
	s.persistLocked(ctx)
	return s.questions[idx], nil
}

// DeleteQuestion removes the question with the given id.
func (s *BuilderService) DeleteQuestion(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return ErrQuestionNotFound
	}

	s.questions = append(s.questions[:idx], s.questions[idx+1:]...)
	s.persistLocked(ctx)
	return nil
}

// Question returns the question with the given id.
func (s *BuilderService) Question(id int) (domains.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domains.Question{}, ErrQuestionNotFound
	}
	return s.questions[idx], nil
}

// AddOption appends a placeholder option to a choice question.
func (s *BuilderService) AddOption(ctx context.Context, id int) (domains.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domains.Question{}, ErrQuestionNotFound
	}

	s.questions[idx].AddOption()
	s.persistLocked(ctx)
	return s.questions[idx], nil
}

// UpdateOption sets the text of one option.
func (s *BuilderService) UpdateOption(ctx context.Context, id, index int, value string) (domains.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domains.Question{}, ErrQuestionNotFound
	}
	if index < 0 || index >= len(s.questions[idx].Options) {
		return domains.Question{}, domains.ErrOptionNotFound
	}

	s.questions[idx].UpdateOption(index, value)
	s.persistLocked(ctx)
	return s.questions[idx], nil
}

// RemoveOption removes one option, refusing to empty the list.
func (s *BuilderService) RemoveOption(ctx context.Context, id, index int) (domains.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domains.Question{}, ErrQuestionNotFound
	}
	if err := s.questions[idx].RemoveOption(index); err != nil {
		return domains.Question{}, err
	}

	s.persistLocked(ctx)
	return s.questions[idx], nil
}

func (s *BuilderService) indexLocked(id int) int {
	for i, question := range s.questions {
		if question.ID == id {
			return i
		}
	}
	return -1
}
