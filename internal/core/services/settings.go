package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// EnvCookie names the environment variable holding the session cookie.
//
//nolint:gosec // G101: This is an environment variable name, not a credential.
const EnvCookie = "FUNDAMENTUS_COOKIE"

// Config keys for settings storage.
const (
	keySourceURL            = "source.url"
	keySourceTimeout        = "source.timeout_seconds"
	keySourceUserAgent      = "source.user_agent"
	keySourceAccept         = "source.accept"
	keySourceAcceptLanguage = "source.accept_language"
	keyDecoderThreshold     = "decoder.replacement_threshold"
	keyColumnsNumeric       = "columns.numeric"
	keyColumnsCurated       = "columns.curated"
	keyOutputDir            = "output.dir"
	keyOutputFullCSV        = "output.full_csv"
	keyOutputCuratedCSV     = "output.curated_csv"
	keyOutputHTML           = "output.html"
	keyOutputXLSX           = "output.xlsx"
	keyOutputXLSXFile       = "output.xlsx_file"
	keyOutputSite           = "output.site"
)

type keyKind int

const (
	kindString keyKind = iota
	kindPositiveInt
	kindBool
	kindList
)

var settingKeys = map[string]keyKind{
	keySourceURL:            kindString,
	keySourceTimeout:        kindPositiveInt,
	keySourceUserAgent:      kindString,
	keySourceAccept:         kindString,
	keySourceAcceptLanguage: kindString,
	keyDecoderThreshold:     kindPositiveInt,
	keyColumnsNumeric:       kindList,
	keyColumnsCurated:       kindList,
	keyOutputDir:            kindString,
	keyOutputFullCSV:        kindString,
	keyOutputCuratedCSV:     kindString,
	keyOutputHTML:           kindString,
	keyOutputXLSX:           kindBool,
	keyOutputXLSXFile:       kindString,
	keyOutputSite:           kindBool,
}

// SettingsService resolves settings from the config store and environment.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
// getenv supplies secrets that are never persisted; nil disables them.
func NewSettingsService(configStore driven.ConfigStore, getenv func(string) string) *SettingsService {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &SettingsService{
		configStore: configStore,
		getenv:      getenv,
	}
}

// Get resolves current settings, filling defaults for unset keys.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Source: domain.SourceSettings{
			URL:            s.getString(keySourceURL, defaults.Source.URL),
			Timeout:        s.getSeconds(keySourceTimeout, defaults.Source.Timeout),
			UserAgent:      s.getString(keySourceUserAgent, defaults.Source.UserAgent),
			Accept:         s.getString(keySourceAccept, defaults.Source.Accept),
			AcceptLanguage: s.getString(keySourceAcceptLanguage, defaults.Source.AcceptLanguage),
			Cookie:         strings.TrimSpace(s.getenv(EnvCookie)),
		},
		Decoder: domain.DecoderSettings{
			ReplacementThreshold: s.getInt(keyDecoderThreshold, defaults.Decoder.ReplacementThreshold),
		},
		Columns: domain.ColumnSet{
			Numeric: s.getList(keyColumnsNumeric, defaults.Columns.Numeric),
			Curated: s.getList(keyColumnsCurated, defaults.Columns.Curated),
		},
		Output: domain.OutputSettings{
			Dir:        s.getString(keyOutputDir, defaults.Output.Dir),
			FullCSV:    s.getString(keyOutputFullCSV, defaults.Output.FullCSV),
			CuratedCSV: s.getString(keyOutputCuratedCSV, defaults.Output.CuratedCSV),
			HTML:       s.getString(keyOutputHTML, defaults.Output.HTML),
			XLSX:       s.getBool(keyOutputXLSX, defaults.Output.XLSX),
			XLSXFile:   s.getString(keyOutputXLSXFile, defaults.Output.XLSXFile),
			Site:       s.getBool(keyOutputSite, defaults.Output.Site),
		},
	}

	return settings, nil
}

// Set validates and persists a single configuration key.
// Lists are comma separated.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var stored any
	switch kind {
	case kindPositiveInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		stored = n
	case kindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		stored = b
	case kindList:
		list := splitList(value)
		if len(list) == 0 {
			return fmt.Errorf("%w: %s needs at least one column", domain.ErrInvalidInput, key)
		}
		stored = list
	default:
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		stored = value
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the configuration keys accepted by Set.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getList(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return append([]string(nil), defaultVal...)
	}
	return val
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
