package render

import (
	"path"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/i18ndocs/internal/files"
)

// pageContextKey carries the page being rendered into the AST transform.
var pageContextKey = parser.NewContextKey()

type pageContext struct {
	index *files.Index
	entry *files.Entry
}

// linkRewriter rewrites relative link and image destinations to the
// resolved target's public URL. Lookups go through the locale file
// index, so a plain link to diagram.png lands on diagram.fr.png when
// that variant exists. Unknown destinations are left untouched.
type linkRewriter struct{}

func (linkRewriter) Transform(doc *gmast.Document, _ text.Reader, pc parser.Context) {
	ctx, ok := pc.Get(pageContextKey).(*pageContext)
	if !ok {
		return
	}
	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			node.Destination = ctx.rewrite(node.Destination)
		case *gmast.Image:
			node.Destination = ctx.rewrite(node.Destination)
		}
		return gmast.WalkContinue, nil
	})
}

func (c *pageContext) rewrite(dest []byte) []byte {
	d := string(dest)
	if d == "" || isExternal(d) || strings.HasPrefix(d, "#") {
		return dest
	}
	d, fragment, _ := strings.Cut(d, "#")
	if fragment != "" {
		fragment = "#" + fragment
	}
	if d == "" {
		return dest
	}

	srcDir := path.Dir(c.entry.Src.SrcPath)
	target := path.Clean(path.Join(srcDir, d))
	resolved, ok := c.index.GetEntryForPath(target)
	if !ok {
		return dest
	}
	return []byte(relativeURL(c.entry.URL, resolved.URL) + fragment)
}

func isExternal(v string) bool {
	return strings.Contains(v, "://") ||
		strings.HasPrefix(v, "//") ||
		strings.HasPrefix(v, "mailto:")
}

// withLinkRewriting returns the parser options binding a page to the
// link transform.
func withLinkRewriting(index *files.Index, entry *files.Entry) parser.Context {
	pc := parser.NewContext()
	pc.Set(pageContextKey, &pageContext{index: index, entry: entry})
	return pc
}

// transformerPriority registers the rewriter late so other transforms
// see original destinations.
var linkTransformer = util.Prioritized(linkRewriter{}, 900)
