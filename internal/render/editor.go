package render

import (
	"fmt"
	"strings"

	"github.com/julisunkan/sbp-pwa/internal/domains"
)

// Editor renders the editable blocks for every question in order.
func Editor(survey domains.Survey) string {
	var b strings.Builder
	for _, question := range survey.Questions {
		b.WriteString(EditorBlock(question))
	}
	return b.String()
}

// EditorBlock renders one question's editable block. Every control carries a
// class hook matching exactly one model field; the builder UI wires those
// hooks to patch requests keyed by the data-question-id attribute. After a
// structural change (option add/remove) the whole block is re-rendered and
// swapped in, never patched piecemeal.
func EditorBlock(question domains.Question) string {
	var content string
	switch question.Type {
	case domains.KindRadio, domains.KindCheckbox, domains.KindDropdown, domains.KindMultiSelect:
		content = editorOptions(question)
	case domains.KindInstruction:
		content = editorInstruction(question)
	case domains.KindSectionBreak:
		content = editorSectionBreak(question)
	case domains.KindPageBreak:
		content = editorPageBreak(question)
	default:
		// short-answer, paragraph and unknown kinds share the text editor.
		content = editorText(question)
	}

	return fmt.Sprintf(`
<div class="question-item fade-in" data-question-id="%d">
    <div class="question-header">
        <div class="d-flex align-items-center flex-grow-1">
            <span class="question-type-badge me-2">%s</span>
            <small class="text-muted">ID: %d</small>
        </div>
        <div class="question-actions">
            <button type="button" class="btn btn-outline-primary btn-sm edit-question-btn">
                <i data-feather="edit-2"></i>
            </button>
            <button type="button" class="btn btn-outline-danger btn-sm delete-question-btn">
                <i data-feather="trash-2"></i>
            </button>
        </div>
    </div>
    <div class="question-content">%s
    </div>
</div>`,
		question.ID, domains.DisplayName(question.Type), question.ID, content)
}

func editorTitleField(question domains.Question, label, placeholder string) string {
	return fmt.Sprintf(`
        <div class="mb-3">
            <label class="form-label fw-semibold">%s</label>
            <input type="text" class="form-control question-title-input" value="%s" placeholder="%s">
        </div>`,
		label, EscapeHTML(question.Title), placeholder)
}

func editorRequiredToggle(question domains.Question) string {
	checked := ""
	if question.Required {
		checked = " checked"
	}
	return fmt.Sprintf(`
        <div class="form-check">
            <input class="form-check-input question-required-input" type="checkbox"%s>
            <label class="form-check-label">Required field</label>
        </div>`, checked)
}

func editorText(question domains.Question) string {
	var b strings.Builder
	b.WriteString(editorTitleField(question, "Question Title", "Enter question title"))

	if question.Type == domains.KindParagraph {
		rows := question.Rows
		if rows == 0 {
			rows = 1
		}
		fmt.Fprintf(&b, `
        <div class="mb-3">
            <label class="form-label fw-semibold">Number of Rows</label>
            <input type="number" class="form-control question-rows-input" value="%d" min="1" max="10">
        </div>`, rows)
	}

	fmt.Fprintf(&b, `
        <div class="mb-3">
            <label class="form-label fw-semibold">Placeholder Text</label>
            <input type="text" class="form-control question-placeholder-input" value="%s" placeholder="Enter placeholder text">
        </div>`, EscapeHTML(question.Placeholder))

	b.WriteString(editorRequiredToggle(question))
	return b.String()
}

func editorOptions(question domains.Question) string {
	var options strings.Builder
	// A remove affordance always renders; the model rejects shrinking the
	// list below one entry.
	for i, option := range question.Options {
		fmt.Fprintf(&options, `
                <div class="option-item">
                    <input type="text" class="form-control option-input" data-option-index="%d" value="%s" placeholder="Option %d">
                    <button type="button" class="option-remove" data-option-index="%d">
                        <i data-feather="x"></i>
                    </button>
                </div>`,
			i, EscapeHTML(option), i+1, i)
	}

	var b strings.Builder
	b.WriteString(editorTitleField(question, "Question Title", "Enter question title"))
	fmt.Fprintf(&b, `
        <div class="mb-3">
            <label class="form-label fw-semibold">Options</label>
            <div class="options-list">%s
            </div>
            <button type="button" class="btn btn-outline-primary btn-sm mt-2 add-option-btn">
                <i data-feather="plus"></i> Add Option
            </button>
        </div>`, options.String())
	b.WriteString(editorRequiredToggle(question))
	return b.String()
}

func editorInstruction(question domains.Question) string {
	return editorTitleField(question, "Instruction Title", "Enter instruction title") + fmt.Sprintf(`
        <div class="mb-3">
            <label class="form-label fw-semibold">Instruction Content</label>
            <textarea class="form-control question-content-input" rows="3" placeholder="Enter instruction content">%s</textarea>
        </div>`,
		EscapeHTML(question.Content))
}

func editorSectionBreak(question domains.Question) string {
	return editorTitleField(question, "Section Title", "Enter section title") + fmt.Sprintf(`
        <div class="mb-3">
            <label class="form-label fw-semibold">Section Description (Optional)</label>
            <textarea class="form-control question-description-input" rows="2" placeholder="Enter section description">%s</textarea>
        </div>`,
		EscapeHTML(question.Description))
}

func editorPageBreak(question domains.Question) string {
	return editorTitleField(question, "Page Break Title", "Enter page break title") + fmt.Sprintf(`
        <div class="mb-3">
            <label class="form-label fw-semibold">Description</label>
            <textarea class="form-control question-description-input" rows="2" placeholder="Enter description">%s</textarea>
        </div>`,
		EscapeHTML(question.Description))
}
