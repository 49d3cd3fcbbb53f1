package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"

	"tableflip.dev/mindmap/pkg/entry"
)

// ByEmotion keeps entries whose emotion contains query, ignoring case. An
// empty query keeps everything. Order is preserved.
func ByEmotion(entries []entry.Entry, query string) []entry.Entry {
	query = strings.TrimSpace(query)
	out := make([]entry.Entry, 0, len(entries))
	if query == "" {
		return append(out, entries...)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	for _, e := range entries {
		if strings.Contains(fold.String(e.Emotion), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Fuzzy ranks entries by how well query fuzzily matches their emotion,
// context and journal text. Best matches come first; non-matches are dropped.
func Fuzzy(entries []entry.Entry, query string) []entry.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return append(make([]entry.Entry, 0, len(entries)), entries...)
	}
	fold := cases.Fold()
	haystack := make([]string, len(entries))
	for i, e := range entries {
		haystack[i] = fold.String(strings.Join([]string{e.Emotion, e.Context, e.Journal}, " "))
	}
	matches := fuzzy.Find(fold.String(query), haystack)
	out := make([]entry.Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, entries[m.Index])
	}
	return out
}
