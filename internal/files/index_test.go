package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

func entryFor(src string, target locale.Locale) *Entry {
	return &Entry{
		Src:    SourceEntry{SrcPath: src, Suffix: pathExt(src)},
		Target: target,
	}
}

func pathExt(p string) string {
	for i := len(p) - 1; i >= 0 && p[i] != '/'; i-- {
		if p[i] == '.' {
			return p[i:]
		}
	}
	return ""
}

func TestIndexFallbackChain(t *testing.T) {
	fr := locale.MustParse("fr")
	en := locale.MustParse("en")

	x := NewIndex(fr, en)
	x.Add(entryFor("img/diagram.fr.png", fr))
	x.Add(entryFor("img/diagram.png", fr))
	x.Add(entryFor("about.en.md", fr))
	x.Add(entryFor("about.md", fr))
	x.Add(entryFor("logo.png", fr))

	// Locale variant beats the untagged one.
	e, ok := x.GetEntryForPath("img/diagram.png")
	require.True(t, ok)
	assert.Equal(t, "img/diagram.fr.png", e.Src.SrcPath)

	// No fr variant: default-locale tag wins over untagged.
	e, ok = x.GetEntryForPath("about.md")
	require.True(t, ok)
	assert.Equal(t, "about.en.md", e.Src.SrcPath)

	// Untagged fallback.
	e, ok = x.GetEntryForPath("logo.png")
	require.True(t, ok)
	assert.Equal(t, "logo.png", e.Src.SrcPath)

	assert.True(t, x.Contains("img/diagram.png"))
	assert.True(t, x.Contains("logo.png"))
	assert.False(t, x.Contains("missing.png"))

	_, ok = x.GetEntryForPath("missing.png")
	assert.False(t, ok)
}

func TestIndexLookupIdempotent(t *testing.T) {
	fr := locale.MustParse("fr")
	x := NewIndex(fr, locale.MustParse("en"))
	x.Add(entryFor("guide.fr.md", fr))

	first, ok := x.GetEntryForPath("guide.md")
	require.True(t, ok)
	second, ok := x.GetEntryForPath("guide.md")
	require.True(t, ok)
	assert.Same(t, first, second, "repeated lookups must yield the identical entry")
}

func TestIndexAddFirstWins(t *testing.T) {
	en := locale.MustParse("en")
	x := NewIndex(en, en)
	a := entryFor("about.md", en)
	b := entryFor("about.md", en)
	x.Add(a)
	x.Add(b)
	assert.Equal(t, 1, x.Len())
	got, _ := x.GetEntryForPath("about.md")
	assert.Same(t, a, got)
}

func TestPagesAndAssets(t *testing.T) {
	en := locale.MustParse("en")
	x := NewIndex(en, en)
	x.Add(entryFor("about.md", en))
	x.Add(entryFor("logo.png", en))

	require.Len(t, x.Pages(), 1)
	require.Len(t, x.Assets(), 1)
	assert.Equal(t, "about.md", x.Pages()[0].Src.SrcPath)
	assert.Equal(t, "logo.png", x.Assets()[0].Src.SrcPath)
}
