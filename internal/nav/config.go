// Package nav models the navigation: the typed nav configuration tree an
// author may declare, and the navigation tree built from a locale's file
// index.
package nav

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional explicit navigation declared in the site
// configuration: an ordered list of items. An empty Config means the
// navigation is generated from the file tree.
type Config []Item

// Item is a tagged variant node of the nav configuration: either a page
// reference (Path set, Items nil) or a named group (Items set). A bare
// string entry yields a leaf with an empty Title; the built navigation
// falls back to the page's own title.
type Item struct {
	Title string
	Path  string
	Items []Item
}

// IsGroup reports whether the item is a named group of children.
func (i Item) IsGroup() bool { return i.Items != nil }

var errBadNavItem = errors.New("nav items must be a path, 'Title: path', or 'Title: [children]'")

// UnmarshalYAML decodes the three accepted item shapes.
func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var p string
		if err := node.Decode(&p); err != nil {
			return err
		}
		*i = Item{Path: normalizePath(p)}
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("%w (line %d)", errBadNavItem, node.Line)
		}
		key, val := node.Content[0], node.Content[1]
		var title string
		if err := key.Decode(&title); err != nil {
			return err
		}
		switch val.Kind {
		case yaml.ScalarNode:
			var p string
			if err := val.Decode(&p); err != nil {
				return err
			}
			*i = Item{Title: title, Path: normalizePath(p)}
			return nil
		case yaml.SequenceNode:
			var children []Item
			if err := val.Decode(&children); err != nil {
				return err
			}
			*i = Item{Title: title, Items: children}
			return nil
		}
	}
	return fmt.Errorf("%w (line %d)", errBadNavItem, node.Line)
}

// Validate rejects structurally empty items.
func (c Config) Validate() error {
	for _, item := range c {
		if err := item.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (i Item) validate() error {
	if i.IsGroup() {
		for _, child := range i.Items {
			if err := child.validate(); err != nil {
				return err
			}
		}
		return nil
	}
	if i.Path == "" {
		return errBadNavItem
	}
	return nil
}

// Clone deep-copies the configuration tree.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for n, item := range c {
		out[n] = item.clone()
	}
	return out
}

func (i Item) clone() Item {
	out := i
	if i.Items != nil {
		out.Items = make([]Item, len(i.Items))
		for n, child := range i.Items {
			out.Items[n] = child.clone()
		}
	}
	return out
}

// RewritePaths returns a copy of the configuration with every leaf whose
// path equals old replaced by new. Group nodes are never touched; only
// leaves participate in locale path substitution.
func (c Config) RewritePaths(old, new string) Config {
	old = normalizePath(old)
	out := make(Config, len(c))
	for n, item := range c {
		out[n] = item.rewrite(old, new)
	}
	return out
}

func (i Item) rewrite(old, new string) Item {
	if i.IsGroup() {
		out := i
		out.Items = make([]Item, len(i.Items))
		for n, child := range i.Items {
			out.Items[n] = child.rewrite(old, new)
		}
		return out
	}
	if i.Path == old {
		i.Path = normalizePath(new)
	}
	return i
}

// normalizePath cleans a nav path literal; external URLs pass through.
func normalizePath(p string) string {
	if isURL(p) {
		return p
	}
	return path.Clean(strings.TrimSpace(p))
}

func isURL(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}
