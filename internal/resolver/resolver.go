// Package resolver maps imprecise user input onto configured entries.
//
// The similarity metric is a masked positional match: both names are
// lower-cased and compared rune by rune at equal indices, up to the length
// of the shorter one. It is not an edit distance, so "natur" matches
// "nature" perfectly while "atur" scores zero against it.
package resolver

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/genricoloni/wallfetch/internal/domain"
)

const (
	// ambiguityThreshold is the minimum score/len(query) ratio that yields
	// a single "did you mean" suggestion instead of a list
	ambiguityThreshold = 0.5
	maxSuggestions     = 5
)

// Candidate pairs an entry with its score against the query
type Candidate[T domain.NamedEntry] struct {
	Entry T
	Score int
}

// Score counts the positions where name and query hold the same rune,
// ignoring case
func Score(name, query string) int {
	a := []rune(strings.ToLower(name))
	b := []rune(strings.ToLower(query))
	n := min(len(a), len(b))

	score := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			score++
		}
	}
	return score
}

// Rank scores every entry and returns them best first.
// The sort is stable, so equal scores keep their configuration order.
func Rank[T domain.NamedEntry](entries []T, query string) []Candidate[T] {
	ranked := make([]Candidate[T], 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, Candidate[T]{Entry: e, Score: Score(e.EntryName(), query)})
	}
	slices.SortStableFunc(ranked, func(x, y Candidate[T]) int {
		return y.Score - x.Score
	})
	return ranked
}

// Resolve returns the entry whose name matches query at every position of
// query. subject names the kind of entry ("category", "supplier") for errors.
//
// An empty query matches the first entry, since zero matched characters
// equals its length.
func Resolve[T domain.NamedEntry](entries []T, query, subject string) (T, error) {
	var zero T
	if len(entries) == 0 {
		return zero, &domain.Error{Kind: domain.KindNoCandidatesConfigured, Subject: subject}
	}

	ranked := Rank(entries, query)
	best := ranked[0]
	length := utf8.RuneCountInString(query)

	if best.Score == length {
		return best.Entry, nil
	}

	if float64(best.Score)/float64(length) >= ambiguityThreshold {
		return zero, &domain.Error{
			Kind:        domain.KindAmbiguousName,
			Subject:     subject,
			Query:       query,
			Suggestions: []string{best.Entry.EntryName()},
		}
	}

	top := ranked[:min(maxSuggestions, len(ranked))]
	suggestions := make([]string, 0, len(top))
	for _, c := range top {
		suggestions = append(suggestions, c.Entry.EntryName())
	}
	return zero, &domain.Error{
		Kind:        domain.KindUnknownName,
		Subject:     subject,
		Query:       query,
		Suggestions: suggestions,
	}
}
