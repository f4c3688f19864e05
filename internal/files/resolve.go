package files

import (
	"log/slog"
	"path"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
)

// Resolver computes, for every configured locale, which source entry
// represents each logical document and where its output must be written.
type Resolver struct {
	sources []SourceEntry
	bySrc   map[string]SourceEntry
	set     locale.Set
	style   URLStyle
	siteDir string
}

// NewResolver prepares resolution over a scanned source tree. siteDir is
// the output root used for absolute destination paths.
func NewResolver(sources []SourceEntry, set locale.Set, style URLStyle, siteDir string) *Resolver {
	bySrc := make(map[string]SourceEntry, len(sources))
	for _, s := range sources {
		bySrc[s.SrcPath] = s
	}
	return &Resolver{sources: sources, bySrc: bySrc, set: set, style: style, siteDir: siteDir}
}

// Trees builds the root (default locale) index plus one prefixed index
// per locale set member. Each base path is processed exactly once across
// the whole construction, so a document with several tag variants cannot
// be resolved twice into the root tree.
//
// When defaultOnly is set, only the root tree is populated.
func (r *Resolver) Trees(defaultOnly bool) (root *Index, byLocale map[locale.Locale]*Index) {
	root = NewIndex(r.set.Default, r.set.Default)
	byLocale = make(map[locale.Locale]*Index, r.set.Len())
	for _, l := range r.set.All() {
		byLocale[l] = NewIndex(l, r.set.Default)
	}

	seen := map[string]struct{}{}
	for _, src := range r.sources {
		base := BasePath(src.SrcPath, r.set)
		key := base + src.Suffix
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}

		// The root tree prefers the untagged variant, then the
		// default-locale tag.
		if win, ok := r.firstRoot(base, src.Suffix); ok {
			root.Add(r.resolve(win, base, r.set.Default, false))
		} else {
			slog.Debug("No root variant for document", logfields.Path(key))
		}

		if defaultOnly {
			continue
		}

		// Locale trees follow the fallback chain: target locale tag,
		// default locale tag, untagged.
		for _, l := range r.set.All() {
			win, ok := r.firstChain(base, src.Suffix, l)
			if !ok {
				slog.Debug("No variant for document",
					logfields.Path(key), logfields.Locale(l.String()))
				continue
			}
			byLocale[l].Add(r.resolve(win, base, l, true))
		}
	}
	return root, byLocale
}

// firstChain applies the read-time fallback chain for target locale l.
func (r *Resolver) firstChain(base, suffix string, l locale.Locale) (SourceEntry, bool) {
	if s, ok := r.bySrc[base+"."+l.String()+suffix]; ok {
		return s, true
	}
	if s, ok := r.bySrc[base+"."+r.set.Default.String()+suffix]; ok {
		return s, true
	}
	s, ok := r.bySrc[base+suffix]
	return s, ok
}

// firstRoot tries the untagged variant, then the default-locale tag.
// The root tree prefers untagged sources, unlike the locale chain.
func (r *Resolver) firstRoot(base, suffix string) (SourceEntry, bool) {
	if s, ok := r.bySrc[base+suffix]; ok {
		return s, true
	}
	s, ok := r.bySrc[base+"."+r.set.Default.String()+suffix]
	return s, ok
}

// resolve derives a winning source entry's output locations for target
// locale l. Locale-tree entries are rebased under /<locale>/.
func (r *Resolver) resolve(src SourceEntry, base string, l locale.Locale, prefixed bool) *Entry {
	var dest, url string
	if src.IsPage() {
		dest, url = derivePage(base, r.style)
	} else {
		dest, url = deriveAsset(base, src.Suffix)
	}
	if prefixed {
		dest, url = prefixLocale(dest, url, l)
	}
	return &Entry{
		Src:         src,
		Target:      l,
		Name:        path.Base(base),
		DestPath:    dest,
		AbsDestPath: absDest(r.siteDir, dest),
		URL:         url,
	}
}
