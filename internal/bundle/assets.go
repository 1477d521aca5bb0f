package bundle

import (
	"fmt"
	"time"

	"github.com/julisunkan/sbp-pwa/internal/delivery"
	"github.com/julisunkan/sbp-pwa/internal/domains"
)

// StandaloneCSS is the styles.css shipped with the split bundle variant.
func StandaloneCSS(now time.Time) string {
	return fmt.Sprintf(`/* Survey Builder Pro - Generated CSS */
/* Generated on: %s */

@import url('https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;500;600;700&display=swap');

body {
    font-family: 'Poppins', sans-serif;
    background-color: #f8fafc;
    color: #1e293b;
    line-height: 1.6;
    margin: 0;
    padding: 20px;
}

.container {
    max-width: 800px;
    margin: 0 auto;
}

.survey-container {
    background: white;
    border-radius: 12px;
    box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);
    padding: 2rem;
    margin: 2rem 0;
}

.survey-title {
    color: #6366f1;
    font-weight: 600;
    margin-bottom: 1rem;
    font-size: 2rem;
}

.survey-description {
    color: #6b7280;
    margin-bottom: 2rem;
    font-size: 1.1rem;
}

.question-group {
    margin-bottom: 2rem;
    padding-bottom: 1.5rem;
    border-bottom: 1px solid #f3f4f6;
}

.question-group:last-of-type {
    border-bottom: none;
}

.question-title {
    font-weight: 500;
    color: #374151;
    margin-bottom: 0.75rem;
    font-size: 1.1rem;
}

.required-indicator {
    color: #ef4444;
    margin-left: 0.25rem;
}

.form-control, .form-select {
    width: 100%%;
    padding: 0.75rem;
    border: 1px solid #d1d5db;
    border-radius: 8px;
    font-size: 1rem;
    font-family: 'Poppins', sans-serif;
    transition: border-color 0.15s ease-in-out, box-shadow 0.15s ease-in-out;
}

.form-control:focus, .form-select:focus {
    border-color: #6366f1;
    outline: 0;
    box-shadow: 0 0 0 0.2rem rgba(99, 102, 241, 0.25);
}

.form-check {
    margin-bottom: 0.5rem;
}

.form-check-input {
    margin-right: 0.5rem;
}

.form-check-label {
    cursor: pointer;
}

.form-text {
    font-size: 0.875rem;
    color: #6b7280;
    margin-top: 0.25rem;
}

.btn {
    display: inline-block;
    font-weight: 500;
    text-align: center;
    text-decoration: none;
    vertical-align: middle;
    cursor: pointer;
    border: 1px solid transparent;
    padding: 0.75rem 2rem;
    font-size: 1rem;
    border-radius: 8px;
    transition: all 0.15s ease-in-out;
}

.btn-primary {
    background: linear-gradient(135deg, #6366f1 0%%, #8b5cf6 100%%);
    border: none;
    color: white;
}

.btn-primary:hover {
    background: linear-gradient(135deg, #5855eb 0%%, #7c3aed 100%%);
    transform: translateY(-1px);
    box-shadow: 0 4px 12px rgba(99, 102, 241, 0.4);
}

.btn-primary:disabled {
    opacity: 0.6;
    cursor: not-allowed;
    transform: none;
}

.btn-lg {
    padding: 1rem 2.5rem;
    font-size: 1.125rem;
}

.text-center {
    text-align: center;
}

.mt-4 {
    margin-top: 1.5rem;
}

.instruction-text {
    background-color: #fef3c7;
    border-left: 4px solid #f59e0b;
    padding: 1rem;
    border-radius: 0 8px 8px 0;
    font-style: italic;
    margin-bottom: 1.5rem;
}

.instruction-text h6 {
    margin-bottom: 0.5rem;
    color: #92400e;
}

.section-break {
    background: linear-gradient(135deg, #10b981 0%%, #06b6d4 100%%);
    color: white;
    text-align: center;
    padding: 1.5rem;
    border-radius: 8px;
    font-weight: 600;
    margin-bottom: 2rem;
}

.section-break h5 {
    margin-bottom: 0.5rem;
}

.page-break {
    background: linear-gradient(135deg, #6b7280 0%%, #4b5563 100%%);
    color: white;
    text-align: center;
    padding: 1.5rem;
    border-radius: 8px;
    border: 2px dashed rgba(255, 255, 255, 0.3);
    margin: 2rem 0;
}

.page-break h6 {
    margin-bottom: 0.5rem;
}

.alert {
    padding: 1rem;
    margin-bottom: 1rem;
    border: 1px solid transparent;
    border-radius: 8px;
}

.alert-success {
    color: #065f46;
    background-color: #d1fae5;
    border-color: #a7f3d0;
}

.alert-danger {
    color: #991b1b;
    background-color: #fee2e2;
    border-color: #fecaca;
}

.spinner-border-sm {
    width: 1rem;
    height: 1rem;
    border-width: 0.125rem;
}

.spinner-border {
    display: inline-block;
    width: 2rem;
    height: 2rem;
    vertical-align: text-bottom;
    border: 0.25em solid currentColor;
    border-right-color: transparent;
    border-radius: 50%%;
    animation: spinner-border 0.75s linear infinite;
}

@keyframes spinner-border {
    to { transform: rotate(360deg); }
}

/* Responsive Design */
@media (max-width: 768px) {
    body {
        padding: 10px;
    }

    .survey-container {
        padding: 1.5rem;
        margin: 1rem 0;
    }

    .survey-title {
        font-size: 1.5rem;
    }

    .btn-lg {
        padding: 0.75rem 2rem;
        font-size: 1rem;
    }
}

@media (max-width: 480px) {
    .survey-container {
        padding: 1rem;
    }

    .survey-title {
        font-size: 1.25rem;
    }

    .question-title {
        font-size: 1rem;
    }
}`, now.UTC().Format(time.RFC3339))
}

// StandaloneJS is the script.js shipped with the split bundle variant. It
// wraps the delivery scripts in a DOM-ready handler and adds client-side
// required-field validation.
func StandaloneJS(settings domains.Settings, now time.Time) string {
	return fmt.Sprintf(`/* Survey Builder Pro - Generated JavaScript */
/* Generated on: %s */

// Wait for DOM to be ready
document.addEventListener('DOMContentLoaded', function() {
    console.log('Survey form loaded successfully');
    %s
    %s

    // Form validation
    const form = document.getElementById('surveyForm');
    if (form) {
        form.addEventListener('submit', function(e) {
            const requiredFields = form.querySelectorAll('[required]');
            let isValid = true;

            requiredFields.forEach(function(field) {
                if (!field.value.trim()) {
                    field.classList.add('is-invalid');
                    isValid = false;
                } else {
                    field.classList.remove('is-invalid');
                }
            });

            if (!isValid) {
                e.preventDefault();
                alert('Please fill in all required fields.');
            }
        });

        // Remove validation errors on input
        const inputs = form.querySelectorAll('input, textarea, select');
        inputs.forEach(function(input) {
            input.addEventListener('input', function() {
                this.classList.remove('is-invalid');
            });
        });
    }
});`,
		now.UTC().Format(time.RFC3339),
		delivery.InitScript(settings),
		delivery.SubmissionScript(settings))
}
