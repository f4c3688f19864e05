package files

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

// Entry is a source entry resolved for one target locale, with its
// destination path, absolute destination path and public URL computed
// once by derivation. The three path fields are never mutated after
// construction.
type Entry struct {
	Src    SourceEntry
	Target locale.Locale

	// Name is the canonical stem with locale tag and suffix stripped.
	Name        string
	DestPath    string
	AbsDestPath string
	URL         string
}

// IsPage reports whether the entry renders as a documentation page.
func (e *Entry) IsPage() bool { return e.Src.IsPage() }

// Index is the ordered, locale-scoped collection of resolved entries for
// one build tree. Locale and DefaultLocale are fixed at construction;
// resolving for a different locale means building a new index.
type Index struct {
	Locale        locale.Locale
	DefaultLocale locale.Locale

	// Translated records that a nav tree built from this index has been
	// through title translation. Rebuilt trees are translated again, so
	// titles stay translated across repeated nav processing.
	Translated bool

	entries []*Entry
	bySrc   map[string]*Entry
}

// NewIndex creates an empty index scoped to the given locales.
func NewIndex(l, defaultLocale locale.Locale) *Index {
	return &Index{Locale: l, DefaultLocale: defaultLocale, bySrc: map[string]*Entry{}}
}

// Add appends an entry. The first entry for a source path wins; resolving
// the same pair twice yields the already-stored entry on lookup.
func (x *Index) Add(e *Entry) {
	if _, dup := x.bySrc[e.Src.SrcPath]; dup {
		return
	}
	x.entries = append(x.entries, e)
	x.bySrc[e.Src.SrcPath] = e
}

// candidates returns the fallback source paths for a referenced path, in
// priority order: locale-tagged, default-locale-tagged, the path itself.
func (x *Index) candidates(p string) []string {
	p = path.Clean(strings.TrimSpace(p))
	sfx := path.Ext(p)
	stem := strings.TrimSuffix(p, sfx)
	return []string{
		stem + "." + x.Locale.String() + sfx,
		stem + "." + x.DefaultLocale.String() + sfx,
		p,
	}
}

// Contains reports whether the path, or one of its locale fallback
// variants, exists in the index. Authors write plain relative links; a
// link to diagram.png matches diagram.fr.png when that variant exists.
func (x *Index) Contains(p string) bool {
	for _, c := range x.candidates(p) {
		if _, ok := x.bySrc[c]; ok {
			return true
		}
	}
	return false
}

// GetEntryForPath returns the entry matching the path under the same
// fallback chain as Contains; the first match wins.
func (x *Index) GetEntryForPath(p string) (*Entry, bool) {
	for _, c := range x.candidates(p) {
		if e, ok := x.bySrc[c]; ok {
			return e, true
		}
	}
	return nil, false
}

// All returns the entries in insertion order.
func (x *Index) All() []*Entry { return x.entries }

// Pages returns the documentation page entries in insertion order.
func (x *Index) Pages() []*Entry {
	out := make([]*Entry, 0, len(x.entries))
	for _, e := range x.entries {
		if e.IsPage() {
			out = append(out, e)
		}
	}
	return out
}

// Assets returns the non-page entries in insertion order.
func (x *Index) Assets() []*Entry {
	out := make([]*Entry, 0, len(x.entries))
	for _, e := range x.entries {
		if !e.IsPage() {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the entry count.
func (x *Index) Len() int { return len(x.entries) }
