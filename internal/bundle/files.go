package bundle

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/render"
)

const readmeFileList = "## Files Included\n\n" +
	"### HTML Files\n" +
	"- `survey.html` - Complete survey with inline CSS and JavaScript\n" +
	"- `survey-separate.html` - Survey that uses external CSS and JavaScript files\n\n" +
	"### Assets\n" +
	"- `styles.css` - Standalone CSS file\n" +
	"- `script.js` - Standalone JavaScript file\n\n" +
	"### Configuration\n" +
	"- `survey-config.json` - Survey configuration data\n" +
	"- `emailjs-template.txt` - Sample EmailJS template\n" +
	"- `README.md` - This file\n\n" +
	"## Setup Instructions\n\n" +
	"### Option 1: Quick Setup (Recommended)\n" +
	"1. Upload `survey.html` to your web server\n" +
	"2. Open the file in a web browser\n" +
	"3. That's it! The survey is ready to use.\n\n" +
	"### Option 2: Separate Files Setup\n" +
	"1. Upload all files to your web server\n" +
	"2. Open `survey-separate.html` in a web browser\n" +
	"3. Ensure all files are in the same directory\n\n"

const readmeEmailSetup = "EmailJS is not configured. To enable form submissions:\n\n" +
	"1. Create a free account at [EmailJS.com](https://www.emailjs.com/)\n" +
	"2. Set up an email service (Gmail, Outlook, etc.)\n" +
	"3. Create an email template\n" +
	"4. Update the JavaScript files with your EmailJS credentials:\n" +
	"   - User ID\n" +
	"   - Service ID\n" +
	"   - Template ID\n\n" +
	"### Sample EmailJS Template Variables\n" +
	"You can use these variables in your EmailJS template:\n"

const readmeFooter = "\n## Browser Compatibility\n\n" +
	"This survey is compatible with:\n" +
	"- Chrome 60+\n" +
	"- Firefox 55+\n" +
	"- Safari 11+\n" +
	"- Edge 79+\n" +
	"- Mobile browsers (iOS Safari, Chrome Mobile)\n\n" +
	"## Customization\n\n" +
	"### Styling\n" +
	"- Edit `styles.css` to customize the appearance\n" +
	"- The survey uses the Poppins font family from Google Fonts\n" +
	"- Bootstrap classes are available for additional styling\n\n" +
	"### JavaScript\n" +
	"- Edit `script.js` to add custom functionality\n" +
	"- Form validation is included by default\n" +
	"- EmailJS integration handles form submissions\n\n" +
	"### HTML Structure\n" +
	"- Questions are contained in `.question-group` divs\n" +
	"- Form fields use standard HTML5 input types\n" +
	"- Responsive design works on all devices\n\n" +
	"## Security Notes\n\n" +
	"- All user inputs are properly escaped to prevent XSS attacks\n" +
	"- Form validation prevents empty required fields\n" +
	"- EmailJS handles secure email transmission\n\n" +
	"## Support\n\n" +
	"For questions about Survey Builder Pro, visit our documentation or contact support.\n\n" +
	"---\n\n" +
	"**Generated by Survey Builder Pro**  \n" +
	"*A responsive survey/quiz builder web application*\n"

// Readme documents the bundle contents, setup steps and the survey itself.
// Configured EmailJS credentials are echoed here so the recipient can verify
// them; the machine-readable config masks them instead.
func Readme(survey domains.Survey, settings domains.Settings, now time.Time) string {
	title := survey.Title
	if title == "" {
		title = "Survey"
	}
	description := survey.Description
	if description == "" {
		description = "No description provided."
	}
	configured := "No"
	if settings.Configured() {
		configured = "Yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `# %s

Generated by **Survey Builder Pro** on %s

## Description

%s

## Survey Statistics

- **Total Questions**: %d
- **Input Questions**: %d
- **EmailJS Configured**: %s

`, title, now.Format("1/2/2006, 3:04:05 PM"), description,
		len(survey.Questions), len(survey.InputQuestions()), configured)

	b.WriteString(readmeFileList)

	b.WriteString("## EmailJS Configuration\n\n")
	if settings.Configured() {
		fmt.Fprintf(&b, `Your EmailJS settings are already configured in the generated files:
- **User ID**: %s
- **Service ID**: %s
- **Template ID**: %s

The survey will automatically send responses to your configured email.

`, settings.UserID, settings.ServiceID, settings.TemplateID)
	} else {
		b.WriteString(readmeEmailSetup)
		for _, question := range survey.Questions {
			fmt.Fprintf(&b, "- `{{question_%d}}` - %s\n", question.ID, question.Title)
		}
		b.WriteString("- `{{form_title}}` - Survey title\n" +
			"- `{{submission_date}}` - Submission timestamp\n" +
			"- `{{user_agent}}` - User's browser information\n")
	}

	b.WriteString("\n## Question Types\n\nThis survey includes the following question types:\n\n")
	for i, question := range survey.Questions {
		fmt.Fprintf(&b, "%d. **%s** (%s)", i+1, render.EscapeHTML(question.Title), domains.DisplayName(question.Type))
		if question.Required {
			b.WriteString(" *Required*")
		}
		b.WriteString("\n")
	}

	b.WriteString(readmeFooter)
	return b.String()
}

// EmailTemplate produces the sample EmailJS template. Only input questions
// appear; layout-only entries have no submitted value to reference.
func EmailTemplate(survey domains.Survey) string {
	title := survey.Title
	if title == "" {
		title = "Survey"
	}
	input := survey.InputQuestions()

	responses := make([]string, 0, len(input))
	variables := make([]string, 0, len(input))
	for _, question := range input {
		required := ""
		if question.Required {
			required = " (Required)"
		}
		responses = append(responses,
			fmt.Sprintf("\n%s%s\nAnswer: {{question_%d}}\n", question.Title, required, question.ID))
		variables = append(variables,
			fmt.Sprintf("- {{question_%d}} - %s", question.ID, question.Title))
	}

	return fmt.Sprintf(`EmailJS Template for: %s
===============================================

Subject: New Survey Response - {{form_title}}

Dear Administrator,

You have received a new response for your survey "%s".

Submission Details:
- Survey: {{form_title}}
- Submitted: {{submission_date}}
- Browser: {{user_agent}}

Responses:
%s

---
This email was sent automatically by Survey Builder Pro.

How to use this template:
1. Copy this content
2. Create a new email template in your EmailJS dashboard
3. Paste the content and customize as needed
4. Save the template and use its ID in your survey settings

Available Variables:
%s
- {{form_title}} - Survey title
- {{submission_date}} - When the form was submitted
- {{user_agent}} - User's browser information

You can customize this template with HTML formatting, add your logo, or include additional fields as needed.
`,
		title, title,
		strings.Join(responses, "\n"),
		strings.Join(variables, "\n"))
}

type configFile struct {
	Survey    configSurvey     `json:"survey"`
	Questions []configQuestion `json:"questions"`
	Settings  configSettings   `json:"settings"`
	Metadata  configMetadata   `json:"metadata"`
}

type configSurvey struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Created     string `json:"created"`
	Version     string `json:"version"`
}

type configQuestion struct {
	ID          int                  `json:"id"`
	Type        domains.QuestionKind `json:"type"`
	Title       string               `json:"title"`
	Required    bool                 `json:"required"`
	Options     []string             `json:"options"`
	Placeholder *string              `json:"placeholder"`
	Rows        *int                 `json:"rows"`
	Content     *string              `json:"content"`
	Description *string              `json:"description"`
}

type configSettings struct {
	EmailJS configEmailJS `json:"emailjs"`
}

type configEmailJS struct {
	Configured bool   `json:"configured"`
	UserID     string `json:"userId"`
	ServiceID  string `json:"serviceId"`
	TemplateID string `json:"templateId"`
}

type configMetadata struct {
	Generator      string `json:"generator"`
	GeneratedAt    string `json:"generatedAt"`
	TotalQuestions int    `json:"totalQuestions"`
	InputQuestions int    `json:"inputQuestions"`
}

// ConfigJSON serializes the survey into the machine-readable config shipped
// with the bundle. Absent per-question fields encode as null and EmailJS
// credentials are masked, the config only records whether each one is set.
func ConfigJSON(survey domains.Survey, settings domains.Settings, now time.Time) (string, error) {
	questions := make([]configQuestion, 0, len(survey.Questions))
	for _, q := range survey.Questions {
		questions = append(questions, configQuestion{
			ID:          q.ID,
			Type:        q.Type,
			Title:       q.Title,
			Required:    q.Required,
			Options:     q.Options,
			Placeholder: strOrNull(q.Placeholder),
			Rows:        intOrNull(q.Rows),
			Content:     strOrNull(q.Content),
			Description: strOrNull(q.Description),
		})
	}

	cfg := configFile{
		Survey: configSurvey{
			Title:       survey.Title,
			Description: survey.Description,
			Created:     now.UTC().Format(time.RFC3339),
			Version:     "1.0.0",
		},
		Questions: questions,
		Settings: configSettings{
			EmailJS: configEmailJS{
				Configured: settings.Configured(),
				UserID:     mask(settings.UserID),
				ServiceID:  mask(settings.ServiceID),
				TemplateID: mask(settings.TemplateID),
			},
		},
		Metadata: configMetadata{
			Generator:      "Survey Builder Pro",
			GeneratedAt:    now.UTC().Format(time.RFC3339),
			TotalQuestions: len(survey.Questions),
			InputQuestions: len(survey.InputQuestions()),
		},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal survey config: %w", err)
	}
	return string(data), nil
}

func strOrNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intOrNull(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
