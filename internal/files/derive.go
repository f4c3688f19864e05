package files

import (
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

// URLStyle selects the public URL convention.
type URLStyle int

const (
	// DirectoryStyle maps a page to <path>/ with an implicit index.html.
	DirectoryStyle URLStyle = iota
	// FlatStyle maps a page to <path>.html literally.
	FlatStyle
)

// derivePage computes the locale-stripped destination path and URL of a
// documentation page from its base path. Index documents collapse to the
// parent directory's index.html and never gain a named folder; the URL of
// a root index page is ".".
func derivePage(basePath string, style URLStyle) (dest, url string) {
	parent := path.Dir(basePath)
	stem := path.Base(basePath)

	if style == FlatStyle {
		dest = joinRooted(parent, stem+".html")
		return dest, dest
	}

	if stem == "index" {
		dest = joinRooted(parent, "index.html")
		if parent == "." {
			return dest, "."
		}
		return dest, parent + "/"
	}
	dest = joinRooted(parent, stem+"/index.html")
	return dest, strings.TrimSuffix(dest, "index.html")
}

// deriveAsset computes the locale-stripped destination of a generic
// asset; the original suffix is preserved. Root-level assets must not be
// joined with an empty parent segment.
func deriveAsset(basePath, suffix string) (dest, url string) {
	parent := path.Dir(basePath)
	stem := path.Base(basePath)
	if parent == "." {
		dest = stem + suffix
	} else {
		dest = parent + "/" + stem + suffix
	}
	return dest, dest
}

// joinRooted joins parent and name, dropping a "." parent so root-level
// destinations do not gain a spurious leading segment.
func joinRooted(parent, name string) string {
	if parent == "." {
		return name
	}
	return parent + "/" + name
}

// prefixLocale rebases a derived destination and URL under the locale's
// output root. The destination gains a "/<locale>/" prefix and the "."
// root URL becomes "<locale>/".
func prefixLocale(dest, url string, l locale.Locale) (string, string) {
	dest = "/" + l.String() + "/" + dest
	if url == "." {
		url = l.String() + "/"
	} else {
		url = l.String() + "/" + url
	}
	return dest, url
}

// absDest resolves a destination path against the site output root.
func absDest(siteDir, dest string) string {
	return filepath.Join(siteDir, filepath.FromSlash(strings.TrimPrefix(dest, "/")))
}
