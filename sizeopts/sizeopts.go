// Package sizeopts derives the "rows per page" choices offered by a table
// footer from the total number of rows available. The choices come from a
// fixed candidate set {3, 5, 10, 20}, adjusted so that no offered page size
// exceeds the data actually present.
package sizeopts

import (
	"fmt"

	"github.com/samber/lo"
)

// defaultCandidates is the baseline set of page sizes, ascending.
var defaultCandidates = [...]int{3, 5, 10, 20}

// maxDefault is the largest baseline candidate.
const maxDefault = 20

// Option is a single selectable page-size choice surfaced to the user.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Generate returns the ordered page-size options for a table holding
// totalCount rows. Values are unique, ascending and never exceed totalCount.
//
// When totalCount falls between two candidates, the candidate list is
// gap-filled with totalCount itself: if totalCount is exactly one above the
// largest candidate below it, that candidate is replaced (kept only when it
// is the sole smaller candidate), otherwise totalCount is appended.
//
// totalCount values of zero or below produce no options.
func Generate(totalCount int) []Option {
	if totalCount <= 0 {
		return nil
	}

	if totalCount > maxDefault || lo.Contains(defaultCandidates[:], totalCount) {
		capped := lo.Filter(defaultCandidates[:], func(c int, _ int) bool {
			return c <= totalCount
		})
		return toOptions(capped)
	}

	validDefaults := lo.Filter(defaultCandidates[:], func(c int, _ int) bool {
		return c < totalCount
	})

	switch {
	case len(validDefaults) == 0:
		validDefaults = append(validDefaults, totalCount)
	case totalCount == validDefaults[len(validDefaults)-1]+1:
		if len(validDefaults) > 1 {
			validDefaults = validDefaults[:len(validDefaults)-1]
		}
		validDefaults = append(validDefaults, totalCount)
	default:
		validDefaults = append(validDefaults, totalCount)
	}

	return toOptions(validDefaults)
}

// toOptions labels each page-size value.
func toOptions(values []int) []Option {
	return lo.Map(values, func(v int, _ int) Option {
		return Option{Label: formatLabel(v), Value: v}
	})
}

// formatLabel builds the display label for a page-size value.
func formatLabel(value int) string {
	return fmt.Sprintf("Top %d", value)
}
