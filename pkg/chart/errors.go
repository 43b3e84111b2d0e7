package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/admpub/groupbar/pkg/layout"
)

var (
	ErrInvalidInput = layout.ErrInvalidInput
	ErrDuplicate    = errors.New(`duplicate name`)
	ErrNotFound     = errors.New(`not found`)
)

// minSuggestionSimilarity is the Levenshtein similarity a name needs before
// it is offered as a suggestion.
const minSuggestionSimilarity = 0.5

func notFound(kind string, name string, candidates []string) error {
	if suggestion := suggest(name, candidates); len(suggestion) > 0 {
		return fmt.Errorf(`%w: %s %q (did you mean %q?)`, ErrNotFound, kind, name, suggestion)
	}
	return fmt.Errorf(`%w: %s %q`, ErrNotFound, kind, name)
}

func suggest(name string, candidates []string) string {
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	var best string
	var bestScore float64
	for _, candidate := range candidates {
		score := strutil.Similarity(strings.TrimSpace(name), candidate, metric)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	if bestScore < minSuggestionSimilarity {
		return ``
	}
	return best
}
