package render

import (
	"fmt"
	"strings"

	"github.com/julisunkan/sbp-pwa/internal/delivery"
	"github.com/julisunkan/sbp-pwa/internal/domains"
)

// EmbedFragment renders the survey as a live, submittable form fragment.
// Unlike the preview, controls are enabled, named question_<id> (with a []
// suffix for multi-value kinds) and carry native required attributes.
func EmbedFragment(survey domains.Survey) string {
	var b strings.Builder
	b.WriteString(`                <div class="survey-container">`)

	if survey.Title != "" {
		fmt.Fprintf(&b, "\n                    <h2 class=\"survey-title\">%s</h2>", EscapeHTML(survey.Title))
	}
	if survey.Description != "" {
		fmt.Fprintf(&b, "\n                    <p class=\"survey-description\">%s</p>", EscapeHTML(survey.Description))
	}

	b.WriteString("\n                    <form id=\"surveyForm\" novalidate>")

	for _, question := range survey.Questions {
		b.WriteString(embedQuestion(question))
	}

	if survey.HasInputQuestions() {
		b.WriteString(`
                        <div class="text-center mt-4">
                            <button type="submit" id="submitBtn" class="btn btn-primary btn-lg">
                                Submit Response
                            </button>
                        </div>`)
	}

	b.WriteString("\n                    </form>\n                </div>")
	return b.String()
}

// EmbedDocument wraps the fragment, the inline styles and the delivery script
// into one self-contained page.
func EmbedDocument(survey domains.Survey, settings domains.Settings) string {
	title := survey.Title
	if title == "" {
		title = "Survey"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <link href="https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;500;600;700&display=swap" rel="stylesheet">
    <style>
%s
    </style>
</head>
<body>
    <div class="container">
        <div class="row justify-content-center">
            <div class="col-lg-8">
%s
            </div>
        </div>
    </div>

    <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/js/bootstrap.bundle.min.js"></script>
    <script src="https://cdn.jsdelivr.net/npm/@emailjs/browser@3/dist/email.min.js"></script>
    <script>
%s
    </script>
</body>
</html>`,
		EscapeHTML(title), EmbedCSS, EmbedFragment(survey), delivery.EmbedJS(settings))
}

// SeparateDocument is the split bundle variant referencing styles.css and
// script.js as sibling files.
func SeparateDocument(survey domains.Survey) string {
	title := survey.Title
	if title == "" {
		title = "Survey"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <div class="container">
%s
    </div>

    <script src="https://cdn.jsdelivr.net/npm/@emailjs/browser@3/dist/email.min.js"></script>
    <script src="script.js"></script>
</body>
</html>`,
		EscapeHTML(title), EmbedFragment(survey))
}

func embedQuestion(question domains.Question) string {
	switch question.Type {
	case domains.KindShortAnswer:
		return embedShortAnswer(question)
	case domains.KindParagraph:
		return embedParagraph(question)
	case domains.KindRadio:
		return embedRadio(question)
	case domains.KindCheckbox:
		return embedCheckbox(question)
	case domains.KindDropdown:
		return embedDropdown(question)
	case domains.KindMultiSelect:
		return embedMultiSelect(question)
	case domains.KindInstruction:
		return embedInstruction(question)
	case domains.KindSectionBreak:
		return embedSectionBreak(question)
	case domains.KindPageBreak:
		return embedPageBreak(question)
	default:
		return ""
	}
}

func requiredAttr(question domains.Question) string {
	if question.Required {
		return " required"
	}
	return ""
}

func requiredIndicator(question domains.Question) string {
	if question.Required {
		return ` <span class="required-indicator">*</span>`
	}
	return ""
}

func embedShortAnswer(question domains.Question) string {
	placeholder := placeholderOr(question, "Enter your answer...")
	fieldName := fmt.Sprintf("question_%d", question.ID)
	return fmt.Sprintf(`
                        <div class="question-group">
                            <label for="%s" class="question-title">
                                %s%s
                            </label>
                            <input type="text" id="%s" name="%s" class="form-control" placeholder="%s"%s>
                        </div>`,
		fieldName, EscapeHTML(question.Title), requiredIndicator(question),
		fieldName, fieldName, EscapeHTML(placeholder), requiredAttr(question))
}

func embedParagraph(question domains.Question) string {
	placeholder := placeholderOr(question, "Enter your detailed response...")
	rows := question.Rows
	if rows == 0 {
		rows = 4
	}
	fieldName := fmt.Sprintf("question_%d", question.ID)
	return fmt.Sprintf(`
                        <div class="question-group">
                            <label for="%s" class="question-title">
                                %s%s
                            </label>
                            <textarea id="%s" name="%s" class="form-control" rows="%d" placeholder="%s"%s></textarea>
                        </div>`,
		fieldName, EscapeHTML(question.Title), requiredIndicator(question),
		fieldName, fieldName, rows, EscapeHTML(placeholder), requiredAttr(question))
}

func embedRadio(question domains.Question) string {
	fieldName := fmt.Sprintf("question_%d", question.ID)
	var options strings.Builder
	for i, option := range question.Options {
		optionID := fmt.Sprintf("%s_%d", fieldName, i)
		fmt.Fprintf(&options, `
                            <div class="form-check">
                                <input class="form-check-input" type="radio" name="%s" id="%s" value="%s"%s>
                                <label class="form-check-label" for="%s">
                                    %s
                                </label>
                            </div>`,
			fieldName, optionID, EscapeHTML(option), requiredAttr(question),
			optionID, EscapeHTML(option))
	}
	return fmt.Sprintf(`
                        <div class="question-group">
                            <div class="question-title">
                                %s%s
                            </div>%s
                        </div>`,
		EscapeHTML(question.Title), requiredIndicator(question), options.String())
}

func embedCheckbox(question domains.Question) string {
	fieldName := fmt.Sprintf("question_%d", question.ID)
	var options strings.Builder
	for i, option := range question.Options {
		optionID := fmt.Sprintf("%s_%d", fieldName, i)
		// Browsers cannot express "at least one box checked" natively, so
		// checkbox groups never carry the required attribute.
		fmt.Fprintf(&options, `
                            <div class="form-check">
                                <input class="form-check-input" type="checkbox" name="%s[]" id="%s" value="%s">
                                <label class="form-check-label" for="%s">
                                    %s
                                </label>
                            </div>`,
			fieldName, optionID, EscapeHTML(option),
			optionID, EscapeHTML(option))
	}
	return fmt.Sprintf(`
                        <div class="question-group">
                            <div class="question-title">
                                %s%s
                            </div>%s
                        </div>`,
		EscapeHTML(question.Title), requiredIndicator(question), options.String())
}

func embedDropdown(question domains.Question) string {
	fieldName := fmt.Sprintf("question_%d", question.ID)
	var options strings.Builder
	options.WriteString(`<option value="">Select an option...</option>`)
	for _, option := range question.Options {
		fmt.Fprintf(&options, `<option value="%s">%s</option>`, EscapeHTML(option), EscapeHTML(option))
	}
	return fmt.Sprintf(`
                        <div class="question-group">
                            <label for="%s" class="question-title">
                                %s%s
                            </label>
                            <select id="%s" name="%s" class="form-select"%s>
                                %s
                            </select>
                        </div>`,
		fieldName, EscapeHTML(question.Title), requiredIndicator(question),
		fieldName, fieldName, requiredAttr(question), options.String())
}

func embedMultiSelect(question domains.Question) string {
	fieldName := fmt.Sprintf("question_%d", question.ID)
	var options strings.Builder
	for _, option := range question.Options {
		fmt.Fprintf(&options, `<option value="%s">%s</option>`, EscapeHTML(option), EscapeHTML(option))
	}
	return fmt.Sprintf(`
                        <div class="question-group">
                            <label for="%s" class="question-title">
                                %s%s
                            </label>
                            <select id="%s" name="%s[]" class="form-select" multiple size="4"%s>
                                %s
                            </select>
                            <div class="form-text">Hold Ctrl (or Cmd on Mac) to select multiple options</div>
                        </div>`,
		fieldName, EscapeHTML(question.Title), requiredIndicator(question),
		fieldName, fieldName, requiredAttr(question), options.String())
}

func embedInstruction(question domains.Question) string {
	return fmt.Sprintf(`
                        <div class="instruction-text">
                            <h6>%s</h6>
                            <p class="mb-0">%s</p>
                        </div>`,
		EscapeHTML(question.Title), EscapeHTML(question.Content))
}

func embedSectionBreak(question domains.Question) string {
	description := ""
	if question.Description != "" {
		description = fmt.Sprintf("\n                            <p class=\"mb-0 small\">%s</p>", EscapeHTML(question.Description))
	}
	return fmt.Sprintf(`
                        <div class="section-break">
                            <h5 class="mb-1">%s</h5>%s
                        </div>`,
		EscapeHTML(question.Title), description)
}

func embedPageBreak(question domains.Question) string {
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
