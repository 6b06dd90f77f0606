package driving

import "github.com/sdvotes/runoff/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling defaults.
	Get() (*domain.AppSettings, error)

	// Set validates and stores a single configuration key.
	Set(key, value string) error

	// Keys returns every recognised configuration key.
	Keys() []string

	// Raw returns the stored value of a key as text, and whether it is set.
	Raw(key string) (string, bool)

	// Path returns the configuration file path.
	Path() string
}
