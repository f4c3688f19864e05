// Package render is the documentation build engine: it turns resolved
// page entries into HTML files, copies assets, and feeds the search
// index. It renders whatever the file index resolved and does not apply
// locale logic of its own.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"git.home.luguber.info/inful/i18ndocs/internal/alternate"
	"git.home.luguber.info/inful/i18ndocs/internal/files"
	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
	"git.home.luguber.info/inful/i18ndocs/internal/nav"
	"git.home.luguber.info/inful/i18ndocs/internal/search"
	"git.home.luguber.info/inful/i18ndocs/internal/theme"
)

// Engine renders pages. One engine is safe for concurrent use across
// locale builds; per-page state travels through parser contexts.
type Engine struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewEngine constructs the engine with the built-in theme templates.
func NewEngine() (*Engine, error) {
	tmpl, err := theme.Templates()
	if err != nil {
		return nil, err
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithASTTransformers(linkTransformer)),
	)
	return &Engine{md: md, tmpl: tmpl}, nil
}

// Tree bundles everything one locale's render pass consumes.
type Tree struct {
	Index      *files.Index
	Nav        []*nav.Node
	Alternates []alternate.Link
	Set        locale.Set
	Style      files.URLStyle
	SiteTitle  string
	Search     *search.Index
}

// pageData is the template payload.
type pageData struct {
	Lang       string
	RelRoot    string
	Site       siteData
	Page       bodyData
	Nav        []navView
	Alternates []alternate.Link
	Strings    map[string]string
}

type siteData struct{ Title string }

type bodyData struct {
	Title   string
	URL     string
	Content template.HTML
}

type navView struct {
	Title    string
	Href     string
	Active   bool
	Children []navView
}

// BuildTree renders every page of the tree and copies its assets.
// Returns rendered page and copied asset counts.
func (e *Engine) BuildTree(ctx context.Context, t Tree) (pages, assets int, err error) {
	for _, entry := range t.Index.Pages() {
		if err := ctx.Err(); err != nil {
			return pages, assets, err
		}
		if err := e.renderPage(t, entry); err != nil {
			return pages, assets, fmt.Errorf("render %s: %w", entry.Src.SrcPath, err)
		}
		pages++
	}
	for _, entry := range t.Index.Assets() {
		if err := copyAsset(entry); err != nil {
			return pages, assets, fmt.Errorf("copy %s: %w", entry.Src.SrcPath, err)
		}
		assets++
	}
	return pages, assets, nil
}

func (e *Engine) renderPage(t Tree, entry *files.Entry) error {
	src, err := os.ReadFile(entry.Src.AbsPath)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	pc := withLinkRewriting(t.Index, entry)
	if err := e.md.Convert(src, &body, parser.WithContext(pc)); err != nil {
		return err
	}

	data := pageData{
		Lang:    strings.ReplaceAll(t.Index.Locale.String(), "_", "-"),
		RelRoot: relativeURL(entry.URL, ""),
		Site:    siteData{Title: t.SiteTitle},
		Page: bodyData{
			Title:   pageTitle(src, entry.Name),
			URL:     entry.URL,
			Content: template.HTML(body.String()),
		},
		Nav:     navViews(t.Nav, entry),
		Strings: theme.Strings(t.Index.Locale),
	}
	if len(t.Alternates) > 0 {
		data.Alternates = alternate.ForPage(t.Alternates, entry.URL, t.Set, t.Style)
	}

	var out bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&out, "page", data); err != nil {
		return err
	}
	if err := writeFile(entry.AbsDestPath, out.Bytes()); err != nil {
		return err
	}

	if t.Search != nil {
		text, err := search.ExtractText(out.Bytes())
		if err != nil {
			// Non-fatal: the page builds, it just is not indexed.
			slog.Warn("Skipping unindexable page",
				logfields.Path(entry.Src.SrcPath), logfields.Error(err))
			return nil
		}
		t.Search.Append(search.Entry{
			Location: entry.URL,
			Title:    data.Page.Title,
			Text:     text,
		})
	}
	return nil
}

// navViews projects the nav tree onto the current page: hrefs become
// page-relative and the current page's node is marked active.
func navViews(nodes []*nav.Node, current *files.Entry) []navView {
	out := make([]navView, 0, len(nodes))
	for _, node := range nodes {
		view := navView{Title: node.Title}
		if link := node.Link(); link != "" {
			if isExternal(link) {
				view.Href = link
			} else {
				view.Href = relativeURL(current.URL, link)
			}
		}
		if node.Page != nil && node.Page == current {
			view.Active = true
		}
		if len(node.Children) > 0 {
			view.Children = navViews(node.Children, current)
		}
		out = append(out, view)
	}
	return out
}

// pageTitle takes the first ATX heading, falling back to the file stem.
func pageTitle(src []byte, stem string) string {
	for _, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	if stem == "" {
		return stem
	}
	return strings.ToUpper(stem[:1]) + stem[1:]
}

func copyAsset(entry *files.Entry) error {
	data, err := os.ReadFile(entry.Src.AbsPath)
	if err != nil {
		return err
	}
	return writeFile(entry.AbsDestPath, data)
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
