package config

import (
	"fyne.io/fyne/v2"

	"github.com/newscast/news-podcast/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL = "api_base_url"
	KeyAutoplay   = "autoplay_enabled"
	KeyExportDir  = "export_directory"
	KeyLanguage   = "app_language"
)

// Default values
const (
	DefaultAPIBaseURL = "https://ai-news-podcast.fly.dev"
	DefaultAutoplay   = true
	DefaultLanguage   = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the configured backend base URL
func (s *Settings) GetAPIBaseURL() string {
	baseURL := s.app.Preferences().String(KeyAPIBaseURL)
	if baseURL == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return baseURL
}

// SetAPIBaseURL sets the backend base URL
func (s *Settings) SetAPIBaseURL(baseURL string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, baseURL)
}

// GetAutoplayEnabled returns whether playback starts automatically when the
// player screen becomes visible
func (s *Settings) GetAutoplayEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoplay, DefaultAutoplay)
}

// SetAutoplayEnabled sets whether playback starts automatically
func (s *Settings) SetAutoplayEnabled(autoplay bool) {
	s.app.Preferences().SetBool(KeyAutoplay, autoplay)
}

// GetExportDirectory returns the directory episodes are saved into
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeMusicDir()
		if err != nil {
			defaultDir = "/tmp/newscast"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the episode export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
