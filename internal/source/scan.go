// Package source provides the documentation source tree: a filesystem
// scan producing the ordered source entries resolution consumes, and an
// optional git fetch for repo-backed trees.
package source

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/i18ndocs/internal/files"
	"git.home.luguber.info/inful/i18ndocs/internal/locale"
)

// Scan walks docsDir and returns one SourceEntry per regular file, in
// lexical walk order. Dotfiles and underscore-prefixed names are
// excluded from the build, matching the usual docs-tree conventions.
func Scan(docsDir string, set locale.Set) ([]files.SourceEntry, error) {
	absRoot, err := filepath.Abs(docsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve docs dir %s: %w", docsDir, err)
	}

	var out []files.SourceEntry
	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if p != absRoot && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return err
		}
		src := filepath.ToSlash(rel)
		out = append(out, files.SourceEntry{
			SrcPath: src,
			AbsPath: p,
			Suffix:  path.Ext(src),
			Locale:  files.LocaleTag(src, set),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan docs dir %s: %w", docsDir, err)
	}
	return out, nil
}
