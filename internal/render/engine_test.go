package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/i18ndocs/internal/alternate"
	"git.home.luguber.info/inful/i18ndocs/internal/files"
	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/nav"
	"git.home.luguber.info/inful/i18ndocs/internal/search"
)

func writeSource(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func scanFixture(t *testing.T, docs string, set locale.Set) []files.SourceEntry {
	t.Helper()
	var out []files.SourceEntry
	err := filepath.Walk(docs, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(docs, p)
		rel = filepath.ToSlash(rel)
		out = append(out, files.SourceEntry{
			SrcPath: rel,
			AbsPath: p,
			Suffix:  filepath.Ext(rel),
			Locale:  files.LocaleTag(rel, set),
		})
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestBuildTreeRendersLocaleTree(t *testing.T) {
	docs := t.TempDir()
	site := t.TempDir()
	writeSource(t, docs, "index.md", "# Welcome\n\n[guide](guide.md)\n\n![d](diagram.png)\n")
	writeSource(t, docs, "index.fr.md", "# Bienvenue\n\n[guide](guide.md)\n")
	writeSource(t, docs, "guide.md", "# Guide\n")
	writeSource(t, docs, "diagram.png", "png-bytes")
	writeSource(t, docs, "diagram.fr.png", "png-bytes-fr")

	set := locale.NewSet("en", []locale.Locale{"fr"})
	sources := scanFixture(t, docs, set)
	r := files.NewResolver(sources, set, files.DirectoryStyle, site)
	root, byLocale := r.Trees(false)

	engine, err := NewEngine()
	require.NoError(t, err)

	idx := search.NewIndex()
	names := func(l locale.Locale) string { return l.DisplayName() }
	alts := alternate.Build(set, names, files.DirectoryStyle)

	for _, index := range []*files.Index{root, byLocale[locale.MustParse("fr")]} {
		tree := Tree{
			Index:      index,
			Nav:        nav.Build(index, nil),
			Alternates: alts,
			Set:        set,
			Style:      files.DirectoryStyle,
			SiteTitle:  "Docs",
			Search:     idx,
		}
		_, _, err := engine.BuildTree(context.Background(), tree)
		require.NoError(t, err)
	}

	// Default tree at the site root.
	rootIndex, err := os.ReadFile(filepath.Join(site, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(rootIndex), "Welcome")
	assert.Contains(t, string(rootIndex), `href="guide/"`, "page links resolve to final URLs")
	assert.Contains(t, string(rootIndex), `src="diagram.png"`)

	// fr tree mirrors the structure under fr/ with translated content
	// where variants exist.
	frIndex, err := os.ReadFile(filepath.Join(site, "fr", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(frIndex), "Bienvenue")
	assert.Contains(t, string(frIndex), `href="../fr/guide/"`, "fallback page resolved into the fr tree")

	// The untranslated guide fell back into the fr tree.
	_, err = os.Stat(filepath.Join(site, "fr", "guide", "index.html"))
	require.NoError(t, err)

	// Locale-tagged asset got its tag stripped in the fr tree.
	frAsset, err := os.ReadFile(filepath.Join(site, "fr", "diagram.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes-fr", string(frAsset))

	// Both trees appended search entries.
	assert.Equal(t, 4, idx.Len())
}

func TestLinkRewriteUsesFallbackChain(t *testing.T) {
	docs := t.TempDir()
	site := t.TempDir()
	writeSource(t, docs, "index.fr.md", "![d](diagram.png)\n")
	writeSource(t, docs, "index.md", "![d](diagram.png)\n")
	writeSource(t, docs, "diagram.fr.png", "fr")
	writeSource(t, docs, "diagram.png", "root")

	set := locale.NewSet("en", []locale.Locale{"fr"})
	sources := scanFixture(t, docs, set)
	r := files.NewResolver(sources, set, files.DirectoryStyle, site)
	_, byLocale := r.Trees(false)
	fr := byLocale[locale.MustParse("fr")]

	engine, err := NewEngine()
	require.NoError(t, err)
	tree := Tree{Index: fr, Set: set, Style: files.DirectoryStyle}
	_, _, err = engine.BuildTree(context.Background(), tree)
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(site, "fr", "index.html"))
	require.NoError(t, err)
	// The resolved asset URL is fr/diagram.png; relative to fr/ that is
	// a sibling reference.
	assert.Contains(t, string(html), `src="../fr/diagram.png"`)
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Welcome", pageTitle([]byte("intro\n\n# Welcome\n"), "index"))
	assert.Equal(t, "Index", pageTitle([]byte("no heading"), "index"))
}

func TestExternalLinksUntouched(t *testing.T) {
	docs := t.TempDir()
	site := t.TempDir()
	writeSource(t, docs, "index.md", "[x](https://example.com) [a](#anchor)\n")

	set := locale.NewSet("en", nil)
	sources := scanFixture(t, docs, set)
	r := files.NewResolver(sources, set, files.DirectoryStyle, site)
	root, _ := r.Trees(true)

	engine, err := NewEngine()
	require.NoError(t, err)
	_, _, err = engine.BuildTree(context.Background(), Tree{Index: root, Set: set, Style: files.DirectoryStyle})
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(site, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `href="https://example.com"`)
	assert.Contains(t, string(html), `href="#anchor"`)
}
