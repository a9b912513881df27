package match

import (
	"math"
	"strings"

	"github.com/sendasalud/senda/internal/detection/rules"
)

// keywordBoostMax is the maximum confidence added by keyword density on top
// of the matched-pattern fraction.
const keywordBoostMax = 0.2

// Score converts a multi-pattern category match into a confidence in [0, 1]:
// the fraction of the category's patterns that matched, boosted by up to
// +0.2 proportional to the fraction of whitespace tokens that individually
// match any pattern in the category.  The result is capped at 1.0 and
// rounded to two decimals.  A category with no matching pattern scores 0.
//
// The density denominator is deliberately the whole-message token count, not
// the matched-token count: short, dense messages score higher than long ones
// with a single hit.
func Score(text string, c *rules.Category) float64 {
	if text == "" || len(c.Patterns) == 0 {
		return 0
	}

	matched := Count(text, c.Patterns)
	if matched == 0 {
		return 0
	}

	confidence := float64(matched) / float64(len(c.Patterns))

	tokens := strings.Fields(text)
	if len(tokens) > 0 {
		hits := 0
		for _, tok := range tokens {
			if Any(tok, c.Patterns) {
				hits++
			}
		}
		density := float64(hits) / float64(len(tokens))
		confidence += density * keywordBoostMax
	}

	if confidence > 1 {
		confidence = 1
	}
	return math.Round(confidence*100) / 100
}
