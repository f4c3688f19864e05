// Package config loads and validates the site configuration, including the
// i18n options that drive per-locale builds. Validation is strict and runs
// before any file resolution: a malformed locale code aborts the build.
package config

import (
	"time"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/nav"
)

// Config is the root configuration document.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Source SourceConfig `yaml:"source"`
	I18n   I18nConfig   `yaml:"i18n"`
	Nav    nav.Config   `yaml:"nav,omitempty"`
	Search SearchConfig `yaml:"search"`
	Build  BuildConfig  `yaml:"build"`
	Serve  ServeConfig  `yaml:"serve"`

	// Extra carries free-form values handed to page templates
	// (language switcher links land here at build time).
	Extra map[string]any `yaml:"extra,omitempty"`

	set locale.Set
}

// SiteConfig describes the output site.
type SiteConfig struct {
	Title string `yaml:"title"`
	// SiteDir is the output root; the default locale tree lives here and
	// every other locale mirrors it under SiteDir/<locale>/.
	SiteDir string `yaml:"site_dir,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	// UseDirectoryURLs selects directory-style URLs (guide/ with an
	// implicit index.html) over flat ones (guide.html). Defaults to true.
	UseDirectoryURLs *bool `yaml:"use_directory_urls,omitempty"`
}

// DirectoryURLs reports the effective URL convention.
func (s SiteConfig) DirectoryURLs() bool {
	return s.UseDirectoryURLs == nil || *s.UseDirectoryURLs
}

// SourceConfig locates the documentation source tree. When Repo is set the
// tree is cloned into an ephemeral workspace before scanning.
type SourceConfig struct {
	DocsDir string `yaml:"docs_dir,omitempty"`
	Repo    string `yaml:"repo,omitempty"`
	Branch  string `yaml:"branch,omitempty"`
}

// I18nConfig holds the locale options. Locales maps locale codes to
// display names; an empty name falls back to the language's native name.
type I18nConfig struct {
	DefaultLocale     string                       `yaml:"default_locale"`
	DefaultLocaleOnly bool                         `yaml:"default_locale_only,omitempty"`
	Locales           map[string]string            `yaml:"locales"`
	MaterialAlternate *bool                        `yaml:"material_alternate,omitempty"`
	NavTranslations   map[string]map[string]string `yaml:"nav_translations,omitempty"`
}

// Alternate reports whether the language switcher links should be emitted.
// Enabled by default.
func (i I18nConfig) Alternate() bool {
	return i.MaterialAlternate == nil || *i.MaterialAlternate
}

// SearchConfig controls the search index.
type SearchConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	// Languages lists tokenizer languages; build locales supported by the
	// tokenizer are appended automatically, unsupported ones only warn.
	Languages []string `yaml:"languages,omitempty"`
}

// On reports whether search indexing is enabled. Enabled by default.
func (s SearchConfig) On() bool { return s.Enabled == nil || *s.Enabled }

// BuildConfig holds build tuning knobs.
type BuildConfig struct {
	// Concurrency caps parallel per-locale builds. 0 or 1 is sequential.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Port int `yaml:"port,omitempty"`
	// RebuildInterval enables periodic full rebuilds, useful for
	// git-backed sources that change behind the server's back.
	RebuildInterval time.Duration `yaml:"rebuild_interval,omitempty"`
}

// LocaleSet returns the validated locale set. Only meaningful after
// Validate has succeeded.
func (c *Config) LocaleSet() locale.Set { return c.set }

// DisplayName resolves a locale's display name from the configured table,
// falling back to the language's own native name.
func (c *Config) DisplayName(l locale.Locale) string {
	if name := c.I18n.Locales[l.String()]; name != "" {
		return name
	}
	return l.DisplayName()
}
