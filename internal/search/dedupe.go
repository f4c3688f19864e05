package search

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
)

// Deduplicate removes entries living under the default locale's URL
// prefix whose text is byte-identical to the root entry at the same
// location. It must run strictly after every locale build has finished
// appending. Returns the number of removed entries.
//
// Location matching tolerates trailing-slash and anchor-placement
// variants: "fr/guide/" matches a root entry at "guide/" or "guide",
// and "fr/guide#setup" matches "guide/#setup".
func Deduplicate(index *Index, defaultLocale locale.Locale) int {
	prefix := defaultLocale.String() + "/"

	byLocation := map[string]string{}
	for _, e := range index.Entries() {
		if strings.HasPrefix(e.Location, prefix) {
			continue
		}
		for _, v := range locationVariants(e.Location) {
			if _, taken := byLocation[v]; !taken {
				byLocation[v] = e.Text
			}
		}
	}

	removed := index.removeIf(func(e Entry) bool {
		if !strings.HasPrefix(e.Location, prefix) {
			return false
		}
		stripped := e.Location[len(prefix):]
		text, ok := byLocation[stripped]
		return ok && text == e.Text
	})
	if removed > 0 {
		slog.Debug("Removed duplicate search entries",
			logfields.Locale(defaultLocale.String()), slog.Int("removed", removed))
	}
	return removed
}

// locationVariants returns the normalized spellings a prefixed location
// may use for the same page: as-is, without trailing slash, and with the
// anchor attached directly to the path.
func locationVariants(loc string) []string {
	if loc == "." {
		// The site root: its prefixed counterpart strips to "".
		return []string{".", ""}
	}
	variants := []string{loc, strings.TrimSuffix(loc, "/")}
	if anchored := strings.Replace(loc, "/#", "#", 1); anchored != loc {
		variants = append(variants, anchored)
	}
	return variants
}
