package render

import (
	"fmt"
	"strings"

	"github.com/julisunkan/sbp-pwa/internal/domains"
)

// Preview renders the read-only WYSIWYG reflection of the survey. All controls
// are disabled. It is a pure function of its input and safe to call on every
// keystroke.
func Preview(survey domains.Survey) string {
	if len(survey.Questions) == 0 && survey.Title == "" && survey.Description == "" {
		return emptyPreview
	}

	var b strings.Builder
	b.WriteString(`<div class="preview-form">`)

	if survey.Title != "" {
		fmt.Fprintf(&b, "\n    <h4 class=\"mb-3\">%s</h4>", EscapeHTML(survey.Title))
	}
	if survey.Description != "" {
		fmt.Fprintf(&b, "\n    <p class=\"text-muted mb-4\">%s</p>", EscapeHTML(survey.Description))
	}

	// Question numbers are positional: non-input variants display no number
	// but still advance the index.
	for i, question := range survey.Questions {
		b.WriteString(previewQuestion(question, i+1))
	}

	if survey.HasInputQuestions() {
		b.WriteString(`
    <div class="mt-4">
        <button type="button" class="btn btn-gradient" disabled>
            Submit Response
        </button>
    </div>`)
	}

	b.WriteString("\n</div>")
	return b.String()
}

const emptyPreview = `<div class="text-center text-muted py-4">
    <i data-feather="monitor" style="width: 32px; height: 32px; opacity: 0.5;"></i>
    <p class="mt-2 mb-0 small">Preview will appear here</p>
</div>`

func previewQuestion(question domains.Question, number int) string {
	switch question.Type {
	case domains.KindShortAnswer:
		return previewShortAnswer(question, number)
	case domains.KindParagraph:
		return previewParagraph(question, number)
	case domains.KindRadio:
		return previewRadio(question, number)
	case domains.KindCheckbox:
		return previewCheckbox(question, number)
	case domains.KindDropdown:
		return previewDropdown(question, number)
	case domains.KindMultiSelect:
		return previewMultiSelect(question, number)
	case domains.KindInstruction:
		return previewInstruction(question)
	case domains.KindSectionBreak:
		return previewSectionBreak(question)
	case domains.KindPageBreak:
		return previewPageBreak(question)
	default:
		return ""
	}
}

func requiredMark(question domains.Question) string {
	if question.Required {
		return ` <span class="text-danger">*</span>`
	}
	return ""
}

func placeholderOr(question domains.Question, fallback string) string {
	if question.Placeholder != "" {
		return question.Placeholder
	}
	return fallback
}

func previewShortAnswer(question domains.Question, number int) string {
	placeholder := placeholderOr(question, "Enter your answer...")
	return fmt.Sprintf(`
    <div class="form-group mb-3">
        <label class="form-label">
            <strong>%d.</strong> %s%s
        </label>
        <input type="text" class="form-control" placeholder="%s" disabled>
    </div>`,
		number, EscapeHTML(question.Title), requiredMark(question), EscapeHTML(placeholder))
}

func previewParagraph(question domains.Question, number int) string {
	placeholder := placeholderOr(question, "Enter your detailed response...")
	rows := question.Rows
	if rows == 0 {
		rows = 4
	}
	return fmt.Sprintf(`
    <div class="form-group mb-3">
        <label class="form-label">
            <strong>%d.</strong> %s%s
        </label>
        <textarea class="form-control" rows="%d" placeholder="%s" disabled></textarea>
    </div>`,
		number, EscapeHTML(question.Title), requiredMark(question), rows, EscapeHTML(placeholder))
}

func previewRadio(question domains.Question, number int) string {
	var options strings.Builder
	for _, option := range question.Options {
		fmt.Fprintf(&options, `
        <div class="form-check">
            <input class="form-check-input" type="radio" name="question_%d" disabled>
            <label class="form-check-label">%s</label>
        </div>`, question.ID, EscapeHTML(option))
	}
	return fmt.Sprintf(`
    <div class="form-group mb-3">
        <label class="form-label">
            <strong>%d.</strong> %s%s
        </label>%s
    </div>`,
		number, EscapeHTML(question.Title), requiredMark(question), options.String())
}

func previewCheckbox(question domains.Question, number int) string {
	var options strings.Builder
	for _, option := range question.Options {
		fmt.Fprintf(&options, `
        <div class="form-check">
            <input class="form-check-input" type="checkbox" disabled>
            <label class="form-check-label">%s</label>
        </div>`, EscapeHTML(option))
	}
	return fmt.Sprintf(`
    <div class="form-group mb-3">
        <label class="form-label">
            <strong>%d.</strong> %s%s
        </label>%s
    </div>`,
		number, EscapeHTML(question.Title), requiredMark(question), options.String())
}

func previewDropdown(question domains.Question, number int) string {
	var options strings.Builder
	options.WriteString(`<option value="">Select an option...</option>`)
	for _, option := range question.Options {
		fmt.Fprintf(&options, `<option value="%s">%s</option>`, EscapeHTML(option), EscapeHTML(option))
	}
	return fmt.Sprintf(`
    <div class="form-group mb-3">
        <label class="form-label">
            <strong>%d.</strong> %s%s
        </label>
        <select class="form-select" disabled>
            %s
        </select>
    </div>`,
		number, EscapeHTML(question.Title), requiredMark(question), options.String())
}

func previewMultiSelect(question domains.Question, number int) string {
	var options strings.Builder
	for _, option := range question.Options {
		fmt.Fprintf(&options, `<option value="%s">%s</option>`, EscapeHTML(option), EscapeHTML(option))
	}
	return fmt.Sprintf(`
    <div class="form-group mb-3">
        <label class="form-label">
            <strong>%d.</strong> %s%s
        </label>
        <select class="form-select" multiple size="4" disabled>
            %s
        </select>
        <div class="form-text">Hold Ctrl (or Cmd on Mac) to select multiple options</div>
    </div>`,
		number, EscapeHTML(question.Title), requiredMark(question), options.String())
}

func previewInstruction(question domains.Question) string {
	return fmt.Sprintf(`
    <div class="instruction-text">
        <h6>%s</h6>
        <p class="mb-0">%s</p>
    </div>`,
		EscapeHTML(question.Title), EscapeHTML(question.Content))
}

func previewSectionBreak(question domains.Question) string {
	description := ""
	if question.Description != "" {
		description = fmt.Sprintf("\n        <p class=\"mb-0 small\">%s</p>", EscapeHTML(question.Description))
	}
	return fmt.Sprintf(`
    <div class="section-break">
        <h5 class="mb-1">%s</h5>%s
    </div>`,
		EscapeHTML(question.Title), description)
}

func previewPageBreak(question domains.Question) string {
	description := question.Description
	if description == "" {
		description = "This will create a new page in the form"
	}
	return fmt.Sprintf(`
    <div class="page-break">
        <h6 class="mb-1">%s</h6>
        <p class="mb-0 small">%s</p>
    </div>`,
		EscapeHTML(question.Title), EscapeHTML(description))
}
