// Package locale provides validated locale identifiers and the configured
// locale set that drives per-language site builds.
package locale

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is a validated language identifier: either a bare ISO-639-1
// lower-case code ("en") or a territory-qualified form ("pt_BR").
// Values are only constructed through Parse and are immutable afterwards.
type Locale string

var localePattern = regexp.MustCompile(`(^[a-z]{2}_[A-Z]{2}$)|(^[a-z]{2}$)`)

// InvalidLocaleError reports a locale code that does not match either
// accepted textual form.
type InvalidLocaleError struct {
	Value string
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf(
		"locale code must be ISO-639-1 lower case or territory qualified, "+
			"received %q, expected forms: 'en' or 'en_US'", e.Value)
}

// Parse validates code and returns it as a Locale.
func Parse(code string) (Locale, error) {
	if !localePattern.MatchString(code) {
		return "", &InvalidLocaleError{Value: code}
	}
	return Locale(code), nil
}

// MustParse is Parse for statically known codes; it panics on invalid input.
func MustParse(code string) Locale {
	l, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseKeys validates every key of a locale-keyed mapping, returning the
// first offending key's error.
func ParseKeys[V any](m map[string]V) error {
	for key := range m {
		if _, err := Parse(key); err != nil {
			return err
		}
	}
	return nil
}

// Language returns the bare language part ("pt" for "pt_BR").
func (l Locale) Language() string {
	return string(l)[:2]
}

// DisplayName returns the locale's native display name ("Français" for
// "fr"), falling back to the raw code when the language is unknown.
func (l Locale) DisplayName() string {
	tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
	if err != nil {
		return string(l)
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return string(l)
}

func (l Locale) String() string { return string(l) }
