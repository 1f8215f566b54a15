package catalog

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

var (
	maxSuggestions = 3
	minSimilarity  = .6
)

// suggest returns up to maxSuggestions candidates that look like word, best match first.
func suggest(word string, candidates []string) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}

	type match struct {
		name  string
		ratio float64
	}
	matches := make([]match, 0, maxSuggestions)

	m := difflib.NewMatcher(nil, strings.Split(word, ""))
	for _, cand := range candidates {
		m.SetSeq1(strings.Split(strings.ToLower(cand), ""))
		if m.RealQuickRatio() < minSimilarity || m.QuickRatio() < minSimilarity {
			continue
		}
		if ratio := m.Ratio(); ratio >= minSimilarity {
			matches = append(matches, match{name: cand, ratio: ratio})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].ratio != matches[j].ratio {
			return matches[i].ratio > matches[j].ratio
		}
		return matches[i].name < matches[j].name
	})
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	names := make([]string, len(matches))
	for i, mt := range matches {
		names[i] = mt.name
	}
	return names
}
