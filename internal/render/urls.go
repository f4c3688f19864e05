package render

import (
	"path"
	"strings"
)

// relativeURL rebases a site-root-relative target URL against the
// directory a page is served from, so rendered hrefs work at any depth.
// The root URL "." maps to "./".
func relativeURL(fromURL, toURL string) string {
	if toURL == "." {
		toURL = ""
	}
	rel := strings.Repeat("../", urlDepth(fromURL)) + toURL
	if rel == "" {
		return "./"
	}
	return rel
}

// urlDepth counts the directory segments a page URL is nested under.
func urlDepth(u string) int {
	if u == "." || u == "" {
		return 0
	}
	if strings.HasSuffix(u, "/") {
		return strings.Count(u, "/")
	}
	// Flat-style URL: only the parent directories count.
	dir := path.Dir(u)
	if dir == "." {
		return 0
	}
	return strings.Count(dir, "/") + 1
}
