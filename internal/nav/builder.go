package nav

import (
	"log/slog"
	"path"
	"strings"

	"git.home.luguber.info/inful/i18ndocs/internal/files"
	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
)

// Node is one navigation tree node. Leaves carry a resolved page (or an
// external URL); groups carry children. Titles are mutable so the
// orchestrator can apply per-locale title translation after the build.
type Node struct {
	Title    string
	Page     *files.Entry
	URL      string
	Children []*Node
}

// IsGroup reports whether the node is a section rather than a leaf.
func (n *Node) IsGroup() bool { return len(n.Children) > 0 }

// Link returns the node's public URL, empty for bare groups.
func (n *Node) Link() string {
	if n.Page != nil {
		return n.Page.URL
	}
	return n.URL
}

// Build constructs the navigation tree for one locale's file index. An
// explicit nav configuration is resolved against the index using the
// locale fallback chain; without one the tree is generated from the
// page layout.
func Build(index *files.Index, cfg Config) []*Node {
	if len(cfg) > 0 {
		return fromConfig(index, cfg)
	}
	return fromIndex(index)
}

func fromConfig(index *files.Index, cfg Config) []*Node {
	nodes := make([]*Node, 0, len(cfg))
	for _, item := range cfg {
		nodes = append(nodes, fromItem(index, item))
	}
	return nodes
}

func fromItem(index *files.Index, item Item) *Node {
	if item.IsGroup() {
		node := &Node{Title: item.Title}
		for _, child := range item.Items {
			node.Children = append(node.Children, fromItem(index, child))
		}
		return node
	}
	if isURL(item.Path) {
		return &Node{Title: item.Title, URL: item.Path}
	}
	entry, ok := index.GetEntryForPath(item.Path)
	if !ok {
		// Unresolved references are left as dead leaves; the render
		// engine surfaces its own error if it cannot place them.
		slog.Warn("Navigation references an unknown document",
			logfields.Path(item.Path),
			logfields.Locale(index.Locale.String()))
		return &Node{Title: titleOr(item.Title, pageTitle(item.Path))}
	}
	return &Node{Title: titleOr(item.Title, pageTitle(entry.Name)), Page: entry}
}

// fromIndex generates a navigation tree mirroring the source layout:
// top-level pages become leaves, directories become groups.
func fromIndex(index *files.Index) []*Node {
	root := &Node{}
	groups := map[string]*Node{"": root}

	group := func(dir string) *Node {
		if g, ok := groups[dir]; ok {
			return g
		}
		parentDir := path.Dir(dir)
		if parentDir == "." {
			parentDir = ""
		}
		parent := groups[parentDir]
		if parent == nil {
			parent = root
		}
		g := &Node{Title: pageTitle(path.Base(dir))}
		parent.Children = append(parent.Children, g)
		groups[dir] = g
		return g
	}

	for _, entry := range index.Pages() {
		dir := path.Dir(entry.Src.SrcPath)
		if dir == "." {
			dir = ""
		}
		parent := root
		if dir != "" {
			// Materialize intermediate groups so nested sections nest.
			segs := strings.Split(dir, "/")
			for i := range segs {
				parent = group(strings.Join(segs[:i+1], "/"))
			}
		}
		parent.Children = append(parent.Children, &Node{
			Title: pageTitle(entry.Name),
			Page:  entry,
		})
	}
	return root.Children
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}

// pageTitle derives a display title from a file stem or nav path.
func pageTitle(name string) string {
	name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
