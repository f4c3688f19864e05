package build

import (
	"log/slog"

	"git.home.luguber.info/inful/i18ndocs/internal/config"
	"git.home.luguber.info/inful/i18ndocs/internal/files"
	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
	"git.home.luguber.info/inful/i18ndocs/internal/nav"
	"git.home.luguber.info/inful/i18ndocs/internal/theme"
)

// Plan aggregates everything one locale's build owns: its resolved file
// index, its deep-copied configuration and its navigation tree. Plans are
// constructed once and passed through the pipeline explicitly; no plan
// holds references into another plan's configuration.
type Plan struct {
	Locale locale.Locale
	Index  *files.Index
	Config *config.Config
	Nav    []*nav.Node

	// OutputRoot is the directory this plan's theme assets land in: the
	// site root for the default tree, site root/<locale> otherwise.
	OutputRoot string
}

// newPlan specializes the global configuration for one locale tree and
// builds its navigation.
func newPlan(cfg *config.Config, index *files.Index, outputRoot string, searchLangs []string) *Plan {
	clone := cfg.Clone()
	clone.Search.Languages = append([]string(nil), searchLangs...)

	// One warning per tree, not one per rendered page.
	if !theme.Supported(index.Locale) {
		slog.Warn("Locale is not supported by the theme, using default strings",
			logfields.Locale(index.Locale.String()))
	}

	if len(clone.Nav) > 0 {
		rewriteNavPaths(clone, index, cfg.LocaleSet())
	}

	nodes := nav.Build(index, clone.Nav)
	translateNav(index, nodes, clone)

	return &Plan{
		Locale:     index.Locale,
		Index:      index,
		Config:     clone,
		Nav:        nodes,
		OutputRoot: outputRoot,
	}
}

// translateNav runs the locale's title table over a freshly built nav
// tree. Every built tree passes through the table exactly once: the
// single-pass replacement cannot chain one translation into another, and
// rebuilding the nav for an index that has already been through
// translation yields translated titles again, never a reverted tree.
func translateNav(index *files.Index, nodes []*nav.Node, cfg *config.Config) {
	table := cfg.I18n.NavTranslations[index.Locale.String()]
	if len(table) == 0 {
		return
	}
	nav.Translate(nodes, table)
	index.Translated = true
}

// rewriteNavPaths points explicit nav entries at locale-resolved source
// files: an author-specified nav referencing guide.md ends up pointing
// at guide.fr.md when the fr tree resolved that variant.
func rewriteNavPaths(cfg *config.Config, index *files.Index, set locale.Set) {
	for _, entry := range index.Pages() {
		if entry.Src.Locale != index.Locale {
			continue
		}
		base := files.BasePath(entry.Src.SrcPath, set)
		for _, old := range []string{
			base + entry.Src.Suffix,
			base + "." + set.Default.String() + entry.Src.Suffix,
		} {
			cfg.Nav = cfg.Nav.RewritePaths(old, entry.Src.SrcPath)
		}
	}
}
