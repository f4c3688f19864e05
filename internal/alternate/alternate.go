// Package alternate builds the cross-locale "same page in language X"
// links used for the language switcher.
package alternate

import (
	"strings"

	"git.home.luguber.info/inful/i18ndocs/internal/files"
	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

// Link points at the equivalent page under another locale's output root.
type Link struct {
	DisplayName string
	Link        string
	Locale      locale.Locale
}

// Build computes the fixed per-locale link set at configuration time,
// default locale first. Links target each locale's output root; under
// flat URLs they carry an explicit index.html.
func Build(set locale.Set, displayName func(locale.Locale) string, style files.URLStyle) []Link {
	suffix := ""
	if style == files.FlatStyle {
		suffix = "index.html"
	}
	links := make([]Link, 0, set.Len())
	links = append(links, Link{
		DisplayName: displayName(set.Default),
		Link:        "./" + suffix,
		Locale:      set.Default,
	})
	for _, l := range set.All() {
		if l == set.Default {
			continue
		}
		links = append(links, Link{
			DisplayName: displayName(l),
			Link:        "./" + l.String() + "/" + suffix,
			Locale:      l,
		})
	}
	return links
}

// ForPage contextualizes the fixed link set to the current page: the
// page URL is stripped of any locale-root prefix and appended to every
// alternate's root, so switching language lands on the equivalent page
// rather than the target locale's home page.
func ForPage(links []Link, pageURL string, set locale.Set, style files.URLStyle) []Link {
	suffix := pageURL
	for _, l := range set.All() {
		if prefix := l.String() + "/"; strings.HasPrefix(pageURL, prefix) {
			suffix = pageURL[len(prefix):]
			break
		}
	}

	out := make([]Link, len(links))
	for i, link := range links {
		target := link.Link
		if style == files.FlatStyle {
			target = strings.Replace(target, "/index.html", "", 1)
		}
		separator := "/"
		if strings.HasSuffix(target, "/") {
			separator = ""
		}
		link.Link = target + separator + suffix
		out[i] = link
	}
	return out
}
