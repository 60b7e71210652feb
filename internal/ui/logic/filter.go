package logic

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"vlist/internal/domain"
	"vlist/internal/ui/services/search"
)

// ExactPrefix switches a query from fuzzy to case-insensitive substring matching
const ExactPrefix = "="

type snapshotSource domain.Snapshot

func (s snapshotSource) String(i int) string { return s[i].Text }
func (s snapshotSource) Len() int            { return len(s) }

// FindMatches returns the items matching query. Fuzzy results come best
// first; exact results come in list order.
func FindMatches(items domain.Snapshot, query string) []search.MatchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	if exact, ok := strings.CutPrefix(query, ExactPrefix); ok {
		return findExact(items, exact)
	}

	found := fuzzy.FindFrom(query, snapshotSource(items))
	results := make([]search.MatchResult, 0, len(found))
	for _, m := range found {
		results = append(results, search.MatchResult{
			Index:          m.Index,
			Text:           m.Str,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		})
	}
	return results
}

func findExact(items domain.Snapshot, needle string) []search.MatchResult {
	needle = strings.ToLower(needle)
	if needle == "" {
		return nil
	}

	var results []search.MatchResult
	for i, it := range items {
		pos := strings.Index(strings.ToLower(it.Text), needle)
		if pos < 0 {
			continue
		}
		idx := make([]int, len(needle))
		for j := range idx {
			idx[j] = pos + j
		}
		results = append(results, search.MatchResult{Index: i, Text: it.Text, MatchedIndexes: idx})
	}
	return results
}
