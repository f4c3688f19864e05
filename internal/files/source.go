// Package files implements the locale-aware file model: source entries
// scanned from the docs tree, the per-locale resolved file index, and the
// pure destination-path/URL derivation for pages and assets.
package files

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

// PageSuffix marks documentation pages; everything else is an asset.
const PageSuffix = ".md"

// SourceEntry is one scanned item of the source tree. SrcPath is the
// slash-separated path relative to the docs root; Locale is the filename
// tag ("fr" for guide.fr.md) or empty when untagged. Entries are
// immutable once scanned.
type SourceEntry struct {
	SrcPath string
	AbsPath string
	Suffix  string
	Locale  locale.Locale
}

// IsPage reports whether the entry is a documentation page.
func (s SourceEntry) IsPage() bool { return s.Suffix == PageSuffix }

// LocaleTag returns the locale filename tag of srcPath, if the secondary
// suffix names a member of the configured set ("" otherwise). Only exact
// .<locale>.<suffix> shapes count; "archive.tar.gz" has no tag.
func LocaleTag(srcPath string, set locale.Set) locale.Locale {
	stem := strings.TrimSuffix(srcPath, path.Ext(srcPath))
	tag := strings.TrimPrefix(path.Ext(stem), ".")
	if tag == "" {
		return ""
	}
	l := locale.Locale(tag)
	if set.Contains(l) {
		return l
	}
	return ""
}

// BasePath strips the final suffix and any locale tag from srcPath,
// yielding the logical document identity shared by all of a document's
// per-locale variants.
func BasePath(srcPath string, set locale.Set) string {
	stem := strings.TrimSuffix(srcPath, path.Ext(srcPath))
	if tag := LocaleTag(srcPath, set); tag != "" {
		stem = strings.TrimSuffix(stem, "."+tag.String())
	}
	return stem
}
