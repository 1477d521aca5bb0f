package httptransport

import "github.com/julisunkan/sbp-pwa/internal/domains"

type AddQuestionRequest struct {
	Type string `json:"type"`
}

type OptionValueRequest struct {
	Value string `json:"value"`
}

type SettingsSaveResponse struct {
	Settings domains.Settings `json:"settings"`
	Warnings []string         `json:"warnings"`
}
