package config

// Clone returns a deep copy of the configuration for one locale's build.
// Each locale's orchestration mutates its own navigation and extra
// metadata; no clone may alias nested structures with another locale's
// copy.
func (c *Config) Clone() *Config {
	out := *c

	out.I18n.Locales = cloneStringMap(c.I18n.Locales)
	if c.I18n.NavTranslations != nil {
		out.I18n.NavTranslations = make(map[string]map[string]string, len(c.I18n.NavTranslations))
		for l, table := range c.I18n.NavTranslations {
			out.I18n.NavTranslations[l] = cloneStringMap(table)
		}
	}
	if c.Search.Languages != nil {
		out.Search.Languages = append([]string(nil), c.Search.Languages...)
	}
	if c.Site.UseDirectoryURLs != nil {
		v := *c.Site.UseDirectoryURLs
		out.Site.UseDirectoryURLs = &v
	}
	if c.I18n.MaterialAlternate != nil {
		v := *c.I18n.MaterialAlternate
		out.I18n.MaterialAlternate = &v
	}
	if c.Search.Enabled != nil {
		v := *c.Search.Enabled
		out.Search.Enabled = &v
	}
	out.Nav = c.Nav.Clone()
	out.Extra = cloneAnyMap(c.Extra)
	return &out
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// cloneAnyMap copies the extra map one level deep plus nested maps and
// slices; scalar leaves are shared, which is safe since they are
// immutable values.
func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneAnyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneAny(e)
		}
		return out
	default:
		return v
	}
}
