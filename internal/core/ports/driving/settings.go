package driving

import "github.com/custodia-labs/fundamentus-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get resolves current settings, filling defaults for unset keys.
	Get() (*domain.Settings, error)

	// Set validates and persists a single configuration key.
	Set(key, value string) error

	// Keys lists the configuration keys accepted by Set.
	Keys() []string

	// Path returns the configuration file path.
	Path() string
}
