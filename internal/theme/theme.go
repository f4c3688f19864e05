// Package theme carries the built-in page template, its static assets
// and the localized UI strings the template renders.
package theme

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

//go:embed templates/*.tmpl
var templates embed.FS

//go:embed static
var static embed.FS

// uiStrings holds the theme's translated interface strings, keyed by
// language. Locales without a table fall back to the default strings;
// the build proceeds.
var uiStrings = map[string]map[string]string{
	"en": {"search": "Search", "language": "Language", "toc": "Contents"},
	"de": {"search": "Suche", "language": "Sprache", "toc": "Inhalt"},
	"es": {"search": "Buscar", "language": "Idioma", "toc": "Contenido"},
	"fr": {"search": "Rechercher", "language": "Langue", "toc": "Sommaire"},
	"it": {"search": "Cerca", "language": "Lingua", "toc": "Indice"},
	"ja": {"search": "検索", "language": "言語", "toc": "目次"},
	"pt": {"search": "Buscar", "language": "Idioma", "toc": "Índice"},
	"ru": {"search": "Поиск", "language": "Язык", "toc": "Содержание"},
}

// Supported reports whether the theme ships UI strings for the locale's
// language.
func Supported(l locale.Locale) bool {
	_, ok := uiStrings[l.Language()]
	return ok
}

// Strings returns the UI string table for the locale, falling back to
// English. Callers warn about unsupported locales once per build tree;
// Strings itself is a silent lookup since it runs for every page.
func Strings(l locale.Locale) map[string]string {
	if table, ok := uiStrings[l.Language()]; ok {
		return table
	}
	return uiStrings["en"]
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("page").ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse theme templates: %w", err)
	}
	return tmpl, nil
}

// CopyStatic writes the theme's static assets into the output root.
func CopyStatic(root string) error {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		return err
	}
	return fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(sub, p)
		if err != nil {
			return err
		}
		dst := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0o644)
	})
}
