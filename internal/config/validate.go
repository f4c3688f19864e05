package config

import (
	"errors"
	"fmt"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

var (
	// ErrNoDefaultLocale is returned when i18n.default_locale is missing.
	ErrNoDefaultLocale = errors.New("i18n.default_locale is required")
	// ErrNoLocales is returned when i18n.locales is empty.
	ErrNoLocales = errors.New("i18n.locales must list at least one locale")
)

// Validate checks the configuration and resolves the locale set. It is
// the fail-fast gate: any error here aborts before file resolution runs.
func (c *Config) Validate() error {
	if c.I18n.DefaultLocale == "" {
		return ErrNoDefaultLocale
	}
	def, err := locale.Parse(c.I18n.DefaultLocale)
	if err != nil {
		return fmt.Errorf("i18n.default_locale: %w", err)
	}
	if len(c.I18n.Locales) == 0 {
		return ErrNoLocales
	}
	if err := locale.ParseKeys(c.I18n.Locales); err != nil {
		return fmt.Errorf("i18n.locales: %w", err)
	}
	if err := locale.ParseKeys(c.I18n.NavTranslations); err != nil {
		return fmt.Errorf("i18n.nav_translations: %w", err)
	}
	if err := c.Nav.Validate(); err != nil {
		return fmt.Errorf("nav: %w", err)
	}

	extras := make([]locale.Locale, 0, len(c.I18n.Locales))
	for code := range c.I18n.Locales {
		extras = append(extras, locale.Locale(code))
	}
	c.set = locale.NewSet(def, extras)
	return nil
}
