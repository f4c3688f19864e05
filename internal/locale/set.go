package locale

import "sort"

// Set is the configured locale set for a build: the default locale plus
// the additional build locales, default first. The default locale is
// always a member even when the configuration lists it again.
type Set struct {
	Default Locale
	all     []Locale
}

// NewSet builds a Set from the default locale and the configured extras.
// Extras are sorted for deterministic iteration; duplicates of the
// default are kept out of the tail since Default already covers them.
func NewSet(def Locale, extras []Locale) Set {
	tail := make([]Locale, 0, len(extras))
	seen := map[Locale]struct{}{def: {}}
	for _, l := range extras {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		tail = append(tail, l)
	}
	sort.Slice(tail, func(i, j int) bool { return tail[i] < tail[j] })
	return Set{Default: def, all: append([]Locale{def}, tail...)}
}

// All returns every member, default locale first.
func (s Set) All() []Locale {
	out := make([]Locale, len(s.all))
	copy(out, s.all)
	return out
}

// Contains reports membership.
func (s Set) Contains(l Locale) bool {
	for _, m := range s.all {
		if m == l {
			return true
		}
	}
	return false
}

// Len returns the member count including the default locale.
func (s Set) Len() int { return len(s.all) }
