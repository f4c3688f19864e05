package search

import (
	"log/slog"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
)

// tokenizerLanguages are the languages the client-side search tokenizer
// ships stemmers for.
var tokenizerLanguages = map[string]struct{}{
	"ar": {}, "da": {}, "de": {}, "en": {}, "es": {}, "fi": {}, "fr": {},
	"hu": {}, "it": {}, "ja": {}, "nl": {}, "no": {}, "pt": {}, "ro": {},
	"ru": {}, "sv": {}, "th": {}, "tr": {}, "vi": {},
}

// Supported reports whether the locale's language has a tokenizer.
func Supported(l locale.Locale) bool {
	_, ok := tokenizerLanguages[l.Language()]
	return ok
}

// MergeLanguages appends each build locale's language to the configured
// tokenizer language list. Unsupported languages only warn; the build
// proceeds without a boosted tokenizer for them.
func MergeLanguages(configured []string, set locale.Set) []string {
	out := append([]string(nil), configured...)
	have := map[string]struct{}{}
	for _, lang := range out {
		have[lang] = struct{}{}
	}
	for _, l := range set.All() {
		lang := l.Language()
		if !Supported(l) {
			slog.Warn("Language is not supported by the search tokenizer",
				logfields.Locale(l.String()))
			continue
		}
		if _, ok := have[lang]; ok {
			continue
		}
		have[lang] = struct{}{}
		out = append(out, lang)
		slog.Info("Adding language to the search tokenizer", logfields.Locale(l.String()))
	}
	return out
}
