package detection

import (
	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// IdentifyStrengths evaluates every strength category independently and
// returns one entry per matching category, in declaration order.  Always
// non-nil; empty when the message surfaces no personal resources.
func (e *Engine) IdentifyStrengths(text string) []analysis.Strength {
	strengths := []analysis.Strength{}
	for _, c := range e.rules.Strengths.Categories {
		p := match.FirstPattern(text, c.Patterns)
		if p == "" {
			continue
		}
		strengths = append(strengths, analysis.Strength{
			Category:       c.Label,
			Confidence:     strengthConfidence,
			MatchedPattern: p,
		})
	}
	return strengths
}
