// Package glossary implements the glossary search/filter engine and the
// loading of term dictionaries.
//
// Filtering is stateless: every call receives the dictionary and the query
// and returns a derived view without touching the input.
package glossary

import (
	"maps"
	"slices"
	"strings"
)

// Entry is a single glossary term with its definition.
type Entry struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

// Filter returns the entries whose term or definition contains query,
// compared case-insensitively. An empty query returns a copy of entries.
// The query is matched literally: whitespace is not trimmed.
// A query with no matches yields an empty, non-nil map.
func Filter(entries map[string]string, query string) map[string]string {
	if query == "" {
		out := make(map[string]string, len(entries))
		maps.Copy(out, entries)
		return out
	}

	q := strings.ToLower(query)
	out := make(map[string]string)
	for term, def := range entries {
		if Matches(term, def, q) {
			out[term] = def
		}
	}
	return out
}

// Matches reports whether the lower-cased query is contained in the
// lower-cased term or definition. lowerQuery must already be lower-cased.
func Matches(term, definition, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(term), lowerQuery) ||
		strings.Contains(strings.ToLower(definition), lowerQuery)
}

// Sorted returns entries ordered by term (byte-wise ascending), giving a
// stable display order for a map.
func Sorted(entries map[string]string) []Entry {
	terms := slices.Sorted(maps.Keys(entries))
	out := make([]Entry, len(terms))
	for i, term := range terms {
		out[i] = Entry{Term: term, Definition: entries[term]}
	}
	return out
}

// Result is an ordered filter outcome.
type Result struct {
	Query   string
	Entries []Entry
	Total   int // size of the unfiltered dictionary
}

// Empty reports whether no entries matched. An empty result is a valid
// outcome, not an error.
func (r Result) Empty() bool {
	return len(r.Entries) == 0
}

// Filtered reports whether the query narrowed the dictionary.
func (r Result) Filtered() bool {
	return r.Query != ""
}

// Search filters entries by query and returns the matches in term order.
func Search(entries map[string]string, query string) Result {
	return Result{
		Query:   query,
		Entries: Sorted(Filter(entries, query)),
		Total:   len(entries),
	}
}
