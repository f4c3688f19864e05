package theme

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

type countingHandler struct{ records int }

func (h *countingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h *countingHandler) Handle(context.Context, slog.Record) error { h.records++; return nil }
func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h *countingHandler) WithGroup(string) slog.Handler             { return h }

func TestSupported(t *testing.T) {
	assert.True(t, Supported(locale.MustParse("fr")))
	assert.True(t, Supported(locale.MustParse("pt_BR")), "territory-qualified locales match on language")
	assert.False(t, Supported(locale.MustParse("nl")))
}

func TestStringsFallsBackSilently(t *testing.T) {
	handler := &countingHandler{}
	prev := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(prev)

	assert.Equal(t, "Rechercher", Strings(locale.MustParse("fr"))["search"])

	// Unsupported locales get the English table; the per-tree warning is
	// the caller's job, per-page lookups stay quiet.
	assert.Equal(t, "Search", Strings(locale.MustParse("nl"))["search"])
	assert.Equal(t, 0, handler.records)
}
