// Package search maintains the site-wide search index shared by every
// locale build, and the post-build deduplication that keeps a page
// present verbatim in two locales from being indexed twice.
package search

import "sync"

// Entry is one indexed location with its extracted text.
type Entry struct {
	Location string `json:"location"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

// Index is the appendable merged search index. Every locale's render
// phase appends entries concurrently; reads for deduplication happen
// only after all builds joined.
type Index struct {
	mu      sync.Mutex
	entries []Entry
}

// NewIndex returns an empty index.
func NewIndex() *Index { return &Index{} }

// Append adds an entry.
func (x *Index) Append(e Entry) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries = append(x.entries, e)
}

// Entries returns a snapshot of the entries in append order.
func (x *Index) Entries() []Entry {
	x.mu.Lock()
	defer x.mu.Unlock()
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// Len returns the entry count.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.entries)
}

// removeIf drops every entry the predicate matches, keeping order.
func (x *Index) removeIf(drop func(Entry) bool) int {
	x.mu.Lock()
	defer x.mu.Unlock()
	kept := x.entries[:0]
	removed := 0
	for _, e := range x.entries {
		if drop(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	x.entries = kept
	return removed
}
