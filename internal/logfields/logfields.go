// Package logfields defines canonical log field name constants and slog
// attribute helpers so field names stay stable across packages.
package logfields

import "log/slog"

const (
	KeyLocale     = "locale"
	KeyPath       = "path"
	KeyURL        = "url"
	KeyStage      = "stage"
	KeyPages      = "pages"
	KeyAssets     = "assets"
	KeyDurationMS = "duration_ms"
	KeyBuildID    = "build_id"
	KeyError      = "error"
)

// Granular helpers returning slog.Attr so callers can compose freely.
func Locale(l string) slog.Attr       { return slog.String(KeyLocale, l) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Assets(n int) slog.Attr          { return slog.Int(KeyAssets, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
