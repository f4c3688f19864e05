package config

import (
	"fmt"
	"os"
)

const exampleConfig = `site:
  title: My Documentation Site
  site_dir: ./site
  use_directory_urls: true

source:
  docs_dir: docs
  # Build from a git repository instead of a local directory:
  # repo: https://github.com/example/docs.git
  # branch: main

i18n:
  default_locale: en
  locales:
    en: English
    fr: Français
  nav_translations:
    fr:
      Home: Accueil

nav:
  - Home: index.md

search:
  enabled: true
  languages: [en, fr]

serve:
  port: 8000
`

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
