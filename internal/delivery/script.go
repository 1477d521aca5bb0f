// Package delivery generates the JavaScript that wires a generated form to
// the EmailJS dispatch client. Missing configuration never fails a render:
// the generated page stays inert and logs a console note instead.
package delivery

import (
	"fmt"

	"github.com/julisunkan/sbp-pwa/internal/domains"
)

// InitScript returns the EmailJS bootstrap snippet. With no account id the
// snippet is empty and the page never initializes the client.
func InitScript(settings domains.Settings) string {
	if settings.UserID == "" {
		return ""
	}
	return fmt.Sprintf(`
// Initialize EmailJS
(function() {
    emailjs.init('%s');
})();`, settings.UserID)
}

// SubmissionScript returns the submit handler. Unless all three identifiers
// are configured, the handler is replaced with a passive warning so the form
// renders but never attempts network dispatch.
func SubmissionScript(settings domains.Settings) string {
	if !settings.Configured() {
		return warningScript
	}
	return fmt.Sprintf(submissionScript, settings.ServiceID, settings.TemplateID)
}

// EmbedJS combines the init and submission snippets for inlining into a
// generated page.
func EmbedJS(settings domains.Settings) string {
	return InitScript(settings) + "\n\n" + SubmissionScript(settings)
}

const warningScript = `
// EmailJS not configured - form will not submit
console.warn('EmailJS settings not configured. Please configure EmailJS to enable form submissions.');`

const submissionScript = `
// Handle form submission
document.getElementById('surveyForm').addEventListener('submit', function(e) {
    e.preventDefault();

    const submitBtn = document.getElementById('submitBtn');
    const originalText = submitBtn.innerHTML;

    // Show loading state
    submitBtn.innerHTML = '<span class="spinner-border spinner-border-sm me-2"></span>Submitting...';
    submitBtn.disabled = true;

    // Collect form data
    const formData = new FormData(this);
    const templateParams = {};

    // Repeated names (checkbox groups) aggregate into ordered lists
    for (let [key, value] of formData.entries()) {
        if (templateParams[key]) {
            if (Array.isArray(templateParams[key])) {
                templateParams[key].push(value);
            } else {
                templateParams[key] = [templateParams[key], value];
            }
        } else {
            templateParams[key] = value;
        }
    }

    // Add metadata
    templateParams.form_title = document.querySelector('h1, h2, h3, h4, h5, h6').textContent || 'Survey Response';
    templateParams.submission_date = new Date().toLocaleString();
    templateParams.user_agent = navigator.userAgent;

    // Send email
    emailjs.send('%s', '%s', templateParams)
        .then(function(response) {
            console.log('SUCCESS!', response.status, response.text);

            const successAlert = document.createElement('div');
            successAlert.className = 'alert alert-success';
            successAlert.innerHTML = '<strong>Success!</strong> Your response has been submitted successfully.';

            const form = document.getElementById('surveyForm');
            form.parentNode.insertBefore(successAlert, form);

            form.reset();

            successAlert.scrollIntoView({ behavior: 'smooth' });

        }, function(error) {
            console.error('FAILED...', error);

            const errorAlert = document.createElement('div');
            errorAlert.className = 'alert alert-danger';
            errorAlert.innerHTML = '<strong>Error!</strong> Failed to submit your response. Please try again.';

            const form = document.getElementById('surveyForm');
            form.parentNode.insertBefore(errorAlert, form);

            errorAlert.scrollIntoView({ behavior: 'smooth' });

        }).finally(function() {
            submitBtn.innerHTML = originalText;
            submitBtn.disabled = false;
        });
});`
