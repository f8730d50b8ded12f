package config

import (
	"fmt"
	"transcript-summary-api/utils"
)

const (
	DefaultAppPort           = "8000"
	DefaultFrontendDir       = "../frontend"
	DefaultOpenRouterURL     = "https://openrouter.ai/api/v1/chat/completions"
	DefaultOpenRouterModel   = "mistral-7b-instruct"
	DefaultOpenRouterReferer = "https://summary-app-backend.onrender.com"
	DefaultMailPort          = 587
)

// Settings is read once at startup and shared read-only by every handler.
type Settings struct {
	AppPort     string
	FrontendDir string
	OpenRouter  OpenRouterSettings
	Mail        MailSettings
}

type OpenRouterSettings struct {
	APIKey  string
	URL     string
	Model   string
	Referer string
}

type MailSettings struct {
	Username string
	Password string
	From     string
	Server   string
	Port     int
}

// Load reads Settings from the environment. Missing credentials are not an
// error here; the endpoints that need them report it per request.
func Load() (Settings, error) {
	port, err := utils.GetEnvIntOrDefault("MAIL_PORT", DefaultMailPort)
	if err != nil {
		return Settings{}, err
	}
	if port <= 0 || port > 65535 {
		return Settings{}, fmt.Errorf("MAIL_PORT out of range: %d", port)
	}

	username := utils.GetEnv("MAIL_USERNAME")

	return Settings{
		AppPort:     utils.GetEnvOrDefault("APP_PORT", DefaultAppPort),
		FrontendDir: utils.GetEnvOrDefault("FRONTEND_DIR", DefaultFrontendDir),
		OpenRouter: OpenRouterSettings{
			APIKey:  utils.GetEnv("OPENROUTER_API_KEY"),
			URL:     utils.GetEnvOrDefault("OPENROUTER_URL", DefaultOpenRouterURL),
			Model:   utils.GetEnvOrDefault("OPENROUTER_MODEL", DefaultOpenRouterModel),
			Referer: utils.GetEnvOrDefault("OPENROUTER_REFERER", DefaultOpenRouterReferer),
		},
		Mail: MailSettings{
			Username: username,
			Password: utils.GetEnv("MAIL_PASSWORD"),
			From:     utils.GetEnvOrDefault("MAIL_FROM", username),
			Server:   utils.GetEnv("MAIL_SERVER"),
			Port:     port,
		},
	}, nil
}
