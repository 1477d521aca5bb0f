package domains

import (
	"fmt"
	"time"
)

type QuestionKind string

const (
	KindShortAnswer  QuestionKind = "short-answer"
	KindParagraph    QuestionKind = "paragraph"
	KindRadio        QuestionKind = "radio"
	KindCheckbox     QuestionKind = "checkbox"
	KindDropdown     QuestionKind = "dropdown"
	KindMultiSelect  QuestionKind = "multi-select"
	KindInstruction  QuestionKind = "instruction"
	KindSectionBreak QuestionKind = "section-break"
	KindPageBreak    QuestionKind = "page-break"
)

// Input reports whether the kind produces a submittable form field.
// Instructions and breaks are structural content only.
func (k QuestionKind) Input() bool {
	switch k {
	case KindInstruction, KindSectionBreak, KindPageBreak:
		return false
	default:
		return true
	}
}

// HasOptions reports whether the kind carries an option list.
func (k QuestionKind) HasOptions() bool {
	switch k {
	case KindRadio, KindCheckbox, KindDropdown, KindMultiSelect:
		return true
	default:
		return false
	}
}

// Multi reports whether the kind can submit more than one value, which
// changes the generated field name to question_<id>[].
func (k QuestionKind) Multi() bool {
	return k == KindCheckbox || k == KindMultiSelect
}

type Question struct {
	ID          int          `json:"id"`
	Type        QuestionKind `json:"type"`
	Title       string       `json:"title"`
	Required    bool         `json:"required"`
	CreatedAt   time.Time    `json:"createdAt"`
	Placeholder string       `json:"placeholder,omitempty"`
	Rows        int          `json:"rows,omitempty"`
	Options     []string     `json:"options,omitempty"`
	Content     string       `json:"content,omitempty"`
	Description string       `json:"description,omitempty"`
}

// FieldName is the correlation key between the model, the editor markup and
// the generated form fields.
func (q Question) FieldName() string {
	name := fmt.Sprintf("question_%d", q.ID)
	if q.Type.Multi() {
		name += "[]"
	}
	return name
}

// NewQuestion builds a question with kind-appropriate defaults. Unknown kinds
// degrade to the base shape instead of failing.
func NewQuestion(id int, kind QuestionKind) Question {
	question := Question{
		ID:        id,
		Type:      kind,
		Title:     DefaultTitle(kind),
		Required:  false,
		CreatedAt: time.Now().UTC(),
	}

	switch kind {
	case KindShortAnswer:
		question.Placeholder = "Enter your answer..."
	case KindParagraph:
		question.Placeholder = "Enter your detailed response..."
		question.Rows = 4
	case KindRadio, KindCheckbox, KindDropdown, KindMultiSelect:
		question.Options = []string{"Option 1", "Option 2"}
	case KindInstruction:
		question.Content = "Enter your instruction text here..."
	case KindSectionBreak:
		question.Description = "Optional section description"
	case KindPageBreak:
		question.Description = "This will create a new page in the form"
	}

	return question
}

var defaultTitles = map[QuestionKind]string{
	KindShortAnswer:  "Short Answer Question",
	KindParagraph:    "Paragraph Question",
	KindRadio:        "Multiple Choice Question",
	KindCheckbox:     "Checkbox Question",
	KindDropdown:     "Dropdown Question",
	KindMultiSelect:  "Multi-Select Question",
	KindInstruction:  "Instruction Title",
	KindSectionBreak: "Section Title",
	KindPageBreak:    "Page Break",
}

func DefaultTitle(kind QuestionKind) string {
	if title, ok := defaultTitles[kind]; ok {
		return title
	}
	return "Question"
}

var displayNames = map[QuestionKind]string{
	KindShortAnswer:  "Short Answer",
	KindParagraph:    "Paragraph",
	KindRadio:        "Multiple Choice",
	KindCheckbox:     "Checkboxes",
	KindDropdown:     "Dropdown",
	KindMultiSelect:  "Multi-Select",
	KindInstruction:  "Instruction",
	KindSectionBreak: "Section Break",
	KindPageBreak:    "Page Break",
}

func DisplayName(kind QuestionKind) string {
	if name, ok := displayNames[kind]; ok {
		return name
	}
	return string(kind)
}

// UpdateOption overwrites the option at index. The index always originates
// from enumerating the existing options, so bounds are the caller's problem.
func (q *Question) UpdateOption(index int, value string) {
	q.Options[index] = value
}

// AddOption appends "Option N" where N is the new list length.
func (q *Question) AddOption() {
	q.Options = append(q.Options, fmt.Sprintf("Option %d", len(q.Options)+1))
}

// RemoveOption removes the option at index unless it is the last one left.
func (q *Question) RemoveOption(index int) error {
	if len(q.Options) <= 1 {
		return ErrLastOption
	}
	if index < 0 || index >= len(q.Options) {
		return ErrOptionNotFound
	}
	q.Options = append(q.Options[:index], q.Options[index+1:]...)
	return nil
}

type QuestionPatch struct {
	Title       *string  `json:"title,omitempty"`
	Required    *bool    `json:"required,omitempty"`
	Placeholder *string  `json:"placeholder,omitempty"`
	Rows        *int     `json:"rows,omitempty"`
	Content     *string  `json:"content,omitempty"`
	Description *string  `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
}

func (p QuestionPatch) HasChanges() bool {
	return p.Title != nil || p.Required != nil || p.Placeholder != nil ||
		p.Rows != nil || p.Content != nil || p.Description != nil || p.Options != nil
}

// ApplyPatch merges the set fields of the patch into the question. The id,
// kind and creation time never change.
func ApplyPatch(question Question, patch QuestionPatch) Question {
	if patch.Title != nil {
		question.Title = *patch.Title
	}
	if patch.Required != nil {
		question.Required = *patch.Required
	}
	if patch.Placeholder != nil {
		question.Placeholder = *patch.Placeholder
	}
	if patch.Rows != nil {
		question.Rows = *patch.Rows
	}
	if patch.Content != nil {
		question.Content = *patch.Content
	}
	if patch.Description != nil {
		question.Description = *patch.Description
	}
	if patch.Options != nil {
		question.Options = patch.Options
	}
	return question
}
