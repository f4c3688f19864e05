package search

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

func TestDeduplicateIdenticalText(t *testing.T) {
	x := NewIndex()
	x.Append(Entry{Location: "guide/", Text: "T"})
	x.Append(Entry{Location: "en/guide/", Text: "T"})
	x.Append(Entry{Location: "fr/guide/", Text: "T traduit"})

	removed := Deduplicate(x, locale.MustParse("en"))
	assert.Equal(t, 1, removed)

	locations := []string{}
	for _, e := range x.Entries() {
		locations = append(locations, e.Location)
	}
	assert.Equal(t, []string{"guide/", "fr/guide/"}, locations)
}

func TestDeduplicateKeepsDifferingText(t *testing.T) {
	x := NewIndex()
	x.Append(Entry{Location: "guide/", Text: "T"})
	x.Append(Entry{Location: "en/guide/", Text: "T2"})

	assert.Equal(t, 0, Deduplicate(x, locale.MustParse("en")))
	assert.Equal(t, 2, x.Len())
}

func TestDeduplicateLocationVariants(t *testing.T) {
	x := NewIndex()
	x.Append(Entry{Location: "guide/", Text: "T"})
	x.Append(Entry{Location: "guide/#setup", Text: "S"})
	// Prefixed entries spelled without the trailing slash and with the
	// anchor attached directly to the path still match.
	x.Append(Entry{Location: "en/guide", Text: "T"})
	x.Append(Entry{Location: "en/guide#setup", Text: "S"})

	assert.Equal(t, 2, Deduplicate(x, locale.MustParse("en")))
	assert.Equal(t, 2, x.Len())
}

func TestDeduplicateRootPage(t *testing.T) {
	x := NewIndex()
	x.Append(Entry{Location: ".", Text: "home"})
	x.Append(Entry{Location: "en/", Text: "home"})

	assert.Equal(t, 1, Deduplicate(x, locale.MustParse("en")))
	require.Equal(t, 1, x.Len())
	assert.Equal(t, ".", x.Entries()[0].Location)
}

func TestDeduplicateIgnoresOtherLocales(t *testing.T) {
	x := NewIndex()
	x.Append(Entry{Location: "guide/", Text: "T"})
	x.Append(Entry{Location: "fr/guide/", Text: "T"})

	assert.Equal(t, 0, Deduplicate(x, locale.MustParse("en")),
		"only the default locale's prefixed duplicates are collapsed")
}

func TestIndexConcurrentAppend(t *testing.T) {
	x := NewIndex()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				x.Append(Entry{Location: fmt.Sprintf("p%d-%d/", n, j), Text: "t"})
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 400, x.Len())
}

func TestExtractText(t *testing.T) {
	page := []byte(`<html><head><style>p{color:red}</style></head>
<body><h1>Guide</h1><p>Hello  <b>world</b></p><script>var x=1;</script></body></html>`)
	text, err := ExtractText(page)
	require.NoError(t, err)
	assert.Equal(t, "Guide Hello world", text)
}

func TestMergeLanguages(t *testing.T) {
	set := locale.NewSet("en", []locale.Locale{"fr", "xx"})
	langs := MergeLanguages([]string{"fr"}, set)
	assert.Equal(t, []string{"fr", "en"}, langs, "unsupported locales are skipped with a warning")

	assert.True(t, Supported(locale.MustParse("pt_BR")))
	assert.False(t, Supported(locale.MustParse("xx")))
}
