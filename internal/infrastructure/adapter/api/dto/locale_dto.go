package dto

// LocaleResponse describes one available locale
type LocaleResponse struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"displayName"`
	Active      bool   `json:"active"`
}

// LocalesResponse lists the available locales
type LocalesResponse struct {
	Active  string           `json:"active"`
	Locales []LocaleResponse `json:"locales"`
}

// SetLocaleRequest represents the API request for switching the active locale
type SetLocaleRequest struct {
	Identifier string `json:"identifier"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status   string `json:"status"`
	Locale   string `json:"locale"`
	Database any    `json:"database,omitempty"`
}
