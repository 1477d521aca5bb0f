package render

// EmbedCSS is inlined into the single-file embed document. The indentation
// matches the surrounding <style> block of the generated page.
const EmbedCSS = `        body {
            font-family: 'Poppins', sans-serif;
            background-color: #f8fafc;
            color: #1e293b;
            line-height: 1.6;
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
        }

        .survey-description {
            color: #6b7280;
            margin-bottom: 2rem;
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
        }

        .required-indicator {
            color: #ef4444;
            margin-left: 0.25rem;
        }

        .form-control, .form-select {
            border-radius: 8px;
            border: 1px solid #d1d5db;
            font-family: 'Poppins', sans-serif;
        }

        .form-control:focus, .form-select:focus {
            border-color: #6366f1;
            box-shadow: 0 0 0 0.2rem rgba(99, 102, 241, 0.25);
        }

        .btn-primary {
            background: linear-gradient(135deg, #6366f1 0%, #8b5cf6 100%);
            border: none;
            border-radius: 8px;
            font-weight: 500;
            padding: 0.75rem 2rem;
        }

        .btn-primary:hover {
            background: linear-gradient(135deg, #5855eb 0%, #7c3aed 100%);
            transform: translateY(-1px);
        }

        .instruction-text {
            background-color: #fef3c7;
            border-left: 4px solid #f59e0b;
            padding: 1rem;
            border-radius: 0 8px 8px 0;
            font-style: italic;
            margin-bottom: 1.5rem;
        }

        .section-break {
            background: linear-gradient(135deg, #10b981 0%, #06b6d4 100%);
            color: white;
            text-align: center;
            padding: 1.5rem;
            border-radius: 8px;
            font-weight: 600;
            margin-bottom: 2rem;
        }

        .page-break {
            background: linear-gradient(135deg, #6b7280 0%, #4b5563 100%);
            color: white;
            text-align: center;
            padding: 1.5rem;
            border-radius: 8px;
            border: 2px dashed rgba(255, 255, 255, 0.3);
            margin: 2rem 0;
        }

        .alert {
            border-radius: 8px;
            border: none;
        }

        .spinner-border-sm {
            width: 1rem;
            height: 1rem;
        }

        @media (max-width: 768px) {
            .survey-container {
                padding: 1.5rem;
                margin: 1rem 0;
            }
        }`
