// Package pagination computes page counts, row offsets, visible page ranges
// and "displaying X-Y of Z" bounds for offset-based listings, and rewrites
// URLs to point at another page.
package pagination

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"simple-pagination/internal/pkg/config"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid pagination config")

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or a YAML file.
type Config struct {
	DefaultPage     int    `yaml:"default_page"`      // Page used when none is set or supplied (typically 1)
	DefaultLimit    int    `yaml:"default_limit"`     // Items per page when no limit was set (typically 25)
	DefaultMidRange int    `yaml:"default_mid_range"` // Width of the page-number window (typically 5)
	MaxLimit        int    `yaml:"max_limit"`         // Upper bound for DefaultLimit only; SetLimit is not capped
	PageParam       string `yaml:"page_param"`        // Query parameter carrying the page number
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=25, mid range=5, max=100, param="page"
func DefaultConfig() Config {
	return Config{
		DefaultPage:     1,
		DefaultLimit:    25,
		DefaultMidRange: 5,
		MaxLimit:        100,
		PageParam:       "page",
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if err := config.ValidatePositiveInt(c.DefaultPage); err != nil {
		return fmt.Errorf("%w: default_page: %v", ErrInvalidConfig, err)
	}
	if err := config.ValidatePositiveInt(c.MaxLimit); err != nil {
		return fmt.Errorf("%w: max_limit: %v", ErrInvalidConfig, err)
	}
	if err := config.ValidateIntRange(c.DefaultLimit, 1, c.MaxLimit); err != nil {
		return fmt.Errorf("%w: default_limit: %v", ErrInvalidConfig, err)
	}
	if err := config.ValidatePositiveInt(c.DefaultMidRange); err != nil {
		return fmt.Errorf("%w: default_mid_range: %v", ErrInvalidConfig, err)
	}
	if err := config.ValidateParamName(c.PageParam); err != nil {
		return fmt.Errorf("%w: page_param: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_DEFAULT_MID_RANGE: Default page-number window width
//   - PAGINATION_MAX_LIMIT: Maximum items per page
//   - PAGINATION_PAGE_PARAM: Query parameter name for the page number
//
// Invalid values fall back to DefaultConfig() and are reported as warnings.
func LoadFromEnv() (Config, []string) {
	def := DefaultConfig()
	var warnings []string

	collect := func(field string, result config.ConfigLoadResult) config.ConfigLoadResult {
		if configMetrics.Observe(field, result) {
			warnings = append(warnings, result.Warnings...)
		}
		return result
	}

	maxLimit := collect("max_limit",
		config.LoadEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit, config.ValidatePositiveInt)).Value.(int)

	cfg := Config{
		DefaultPage: collect("default_page",
			config.LoadEnvInt("PAGINATION_DEFAULT_PAGE", def.DefaultPage, config.ValidatePositiveInt)).Value.(int),
		DefaultLimit: collect("default_limit",
			config.LoadEnvInt("PAGINATION_DEFAULT_LIMIT", min(def.DefaultLimit, maxLimit), func(v int) error {
				return config.ValidateIntRange(v, 1, maxLimit)
			})).Value.(int),
		DefaultMidRange: collect("default_mid_range",
			config.LoadEnvInt("PAGINATION_DEFAULT_MID_RANGE", def.DefaultMidRange, config.ValidatePositiveInt)).Value.(int),
		MaxLimit: maxLimit,
		PageParam: collect("page_param",
			config.LoadEnvWithFallback("PAGINATION_PAGE_PARAM", def.PageParam, config.ValidateParamName)).Value.(string),
	}

	configMetrics.RecordLoadTimestamp()
	configMetrics.SetFallbackActive(len(warnings) > 0)

	return cfg, warnings
}

// LoadFromFile reads a YAML config file. Fields missing from the file keep
// their DefaultConfig() values. The result is validated.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator supplied
	if err != nil {
		return Config{}, fmt.Errorf("read pagination config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse pagination config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	configMetrics.RecordLoadTimestamp()
	configMetrics.SetFallbackActive(false)

	return cfg, nil
}

// WithDefaults fills zero or negative fields from DefaultConfig.
//
// Rules:
//   - If a numeric field is <= 0, use the default
//   - If PageParam is empty, use "page"
//   - If DefaultLimit > MaxLimit, cap to MaxLimit
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.DefaultPage <= 0 {
		c.DefaultPage = def.DefaultPage
	}
	if c.MaxLimit <= 0 {
		c.MaxLimit = def.MaxLimit
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = min(def.DefaultLimit, c.MaxLimit)
	}
	if c.DefaultLimit > c.MaxLimit {
		c.DefaultLimit = c.MaxLimit
	}
	if c.DefaultMidRange <= 0 {
		c.DefaultMidRange = def.DefaultMidRange
	}
	if c.PageParam == "" {
		c.PageParam = def.PageParam
	}
	return c
}
