package build

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/i18ndocs/internal/config"
	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/search"
)

func writeDocs(t *testing.T, docs string, sources map[string]string) {
	t.Helper()
	for rel, content := range sources {
		p := filepath.Join(docs, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func testConfig(t *testing.T, docs, site string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(`
site:
  title: Test Docs
source:
  docs_dir: ` + docs + `
i18n:
  default_locale: en
  locales:
    fr: Français
`))
	require.NoError(t, err)
	cfg.Site.SiteDir = site
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	docs := t.TempDir()
	site := t.TempDir()
	writeDocs(t, docs, map[string]string{
		"index.md":    "# Welcome\n",
		"index.fr.md": "# Bienvenue\n",
		"about.md":    "# About\n",
		"logo.png":    "png",
	})
	cfg := testConfig(t, docs, site)

	svc, err := NewService(nil)
	require.NoError(t, err)
	result, err := svc.Run(context.Background(), Request{Config: cfg})
	require.NoError(t, err)
	require.NotEmpty(t, result.BuildID)

	// Default locale output at the site root.
	for _, rel := range []string{"index.html", "about/index.html", "logo.png"} {
		_, err := os.Stat(filepath.Join(site, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}

	// fr output mirrors the root structure under fr/, falling back to
	// default-locale content for untranslated files.
	for _, rel := range []string{"fr/index.html", "fr/about/index.html", "fr/logo.png"} {
		_, err := os.Stat(filepath.Join(site, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}

	frHome, err := os.ReadFile(filepath.Join(site, "fr", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(frHome), "Bienvenue")

	frAbout, err := os.ReadFile(filepath.Join(site, "fr", "about", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(frAbout), "About")

	frLogo, err := os.ReadFile(filepath.Join(site, "fr", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(frLogo))

	// Language switcher landed in the rendered pages.
	assert.Contains(t, string(frHome), "Français")

	// Theme assets copied into both output roots.
	_, err = os.Stat(filepath.Join(site, "assets", "styles.css"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(site, "fr", "assets", "styles.css"))
	assert.NoError(t, err)

	// Search index written with entries for both trees.
	data, err := os.ReadFile(filepath.Join(site, "search", "search_index.json"))
	require.NoError(t, err)
	var payload struct {
		Entries []search.Entry `json:"docs"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, result.SearchEntries, len(payload.Entries))
	assert.Equal(t, 4, len(payload.Entries))

	require.Len(t, result.Locales, 2)
	assert.Equal(t, locale.Locale("en"), result.Locales[0].Locale)
	assert.Equal(t, locale.Locale("fr"), result.Locales[1].Locale)
}

func TestRunDeduplicatesDefaultLocaleCopy(t *testing.T) {
	docs := t.TempDir()
	site := t.TempDir()
	writeDocs(t, docs, map[string]string{"index.md": "# Same\n", "guide.md": "# Guide\n"})

	cfg, err := config.Parse([]byte(`
site:
  title: Test Docs
i18n:
  default_locale: en
  locales:
    en: English
    fr: Français
`))
	require.NoError(t, err)
	cfg.Source.DocsDir = docs
	cfg.Site.SiteDir = site

	svc, err := NewService(nil)
	require.NoError(t, err)
	result, err := svc.Run(context.Background(), Request{Config: cfg})
	require.NoError(t, err)

	// en is listed as a build locale, so its prefixed copy duplicates
	// the root tree verbatim and gets collapsed out of the index.
	assert.Equal(t, 2, result.SearchRemoved)
	assert.Equal(t, 4, result.SearchEntries, "root + fr entries remain")
}

func TestRunDefaultLocaleOnly(t *testing.T) {
	docs := t.TempDir()
	site := t.TempDir()
	writeDocs(t, docs, map[string]string{"index.md": "# Home\n", "index.fr.md": "# Accueil\n"})

	cfg := testConfig(t, docs, site)
	cfg.I18n.DefaultLocaleOnly = true

	svc, err := NewService(nil)
	require.NoError(t, err)
	result, err := svc.Run(context.Background(), Request{Config: cfg})
	require.NoError(t, err)

	require.Len(t, result.Locales, 1)
	_, err = os.Stat(filepath.Join(site, "fr"))
	assert.True(t, os.IsNotExist(err), "no locale trees are built")
}

func TestRunMissingDocsDirFails(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing"), t.TempDir())
	svc, err := NewService(nil)
	require.NoError(t, err)
	_, err = svc.Run(context.Background(), Request{Config: cfg})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSource)
}

func TestRunParallelLocales(t *testing.T) {
	docs := t.TempDir()
	site := t.TempDir()
	writeDocs(t, docs, map[string]string{
		"index.md": "# Home\n", "a.md": "# A\n", "b.md": "# B\n",
	})

	cfg, err := config.Parse([]byte(`
site:
  title: Test Docs
i18n:
  default_locale: en
  locales:
    de: Deutsch
    es: Español
    fr: Français
build:
  concurrency: 4
`))
	require.NoError(t, err)
	cfg.Source.DocsDir = docs
	cfg.Site.SiteDir = site

	svc, err := NewService(nil)
	require.NoError(t, err)
	result, err := svc.Run(context.Background(), Request{Config: cfg})
	require.NoError(t, err)
	require.Len(t, result.Locales, 4)
	for _, lr := range result.Locales {
		assert.Equal(t, 3, lr.Pages, "locale %s", lr.Locale)
	}
}
