package domains

import "regexp"

// Settings holds the EmailJS delivery credentials. All three identifiers must
// be present before a generated form attempts dispatch.
type Settings struct {
	UserID      string  `json:"userId"`
	ServiceID   string  `json:"serviceId"`
	TemplateID  string  `json:"templateId"`
	LastUpdated *string `json:"lastUpdated"`
}

func (s Settings) Configured() bool {
	return s.UserID != "" && s.ServiceID != "" && s.TemplateID != ""
}

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validate returns a list of warnings. Settings are saved regardless; the
// warnings are surfaced to the user, never enforced.
func (s Settings) Validate() []string {
	var warnings []string
	if s.UserID == "" {
		warnings = append(warnings, "User ID is required")
	} else if !identifierPattern.MatchString(s.UserID) {
		warnings = append(warnings, "User ID contains invalid characters")
	}
	if s.ServiceID == "" {
		warnings = append(warnings, "Service ID is required")
	} else if !identifierPattern.MatchString(s.ServiceID) {
		warnings = append(warnings, "Service ID contains invalid characters")
	}
	if s.TemplateID == "" {
		warnings = append(warnings, "Template ID is required")
	} else if !identifierPattern.MatchString(s.TemplateID) {
		warnings = append(warnings, "Template ID contains invalid characters")
	}
	return warnings
}
