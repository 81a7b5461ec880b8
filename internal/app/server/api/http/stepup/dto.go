package stepup

type settingsOutput struct {
	Body SettingsResponse
}

type SettingsResponse struct {
	Enabled         bool   `json:"enabled"`
	RememberMinutes int    `json:"remember_minutes"`
	Status          string `json:"status"`
}

type enableInput struct {
	Body EnableRequest
}

type EnableRequest struct {
	Secret          string `json:"secret" minLength:"6" doc:"Secondary password to set"`
	RememberMinutes int    `json:"remember_minutes,omitempty" minimum:"0" maximum:"1440" doc:"Verification validity window, 0 means every access re-prompts"`
}

type verifyInput struct {
	Body VerifyRequest
}

type VerifyRequest struct {
	Secret string `json:"secret" doc:"Secondary password candidate"`
}

type verifyOutput struct {
	Body VerifyResponse
}

type VerifyResponse struct {
	Valid           bool   `json:"valid"`
	RememberMinutes int    `json:"remember_minutes"`
	Status          string `json:"status"`
}

type updateSettingsInput struct {
	Body UpdateSettingsRequest
}

type UpdateSettingsRequest struct {
	RememberMinutes int `json:"remember_minutes" minimum:"0" maximum:"1440" doc:"New verification validity window"`
}

type statusOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}
