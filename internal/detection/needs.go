package detection

import (
	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// DetectImplicitNeeds evaluates every need category independently and returns
// one entry per matching category, in declaration order.  The result is
// always non-nil; a message with no detectable needs yields an empty slice.
func (e *Engine) DetectImplicitNeeds(text string) []analysis.ImplicitNeed {
	needs := []analysis.ImplicitNeed{}
	for _, c := range e.rules.Needs.Categories {
		p := match.FirstPattern(text, c.Patterns)
		if p == "" {
			continue
		}
		needs = append(needs, analysis.ImplicitNeed{
			Type:           c.Label,
			Confidence:     signalConfidence,
			MatchedPattern: p,
			Intervention:   interventionFor(needInterventions, c.Label),
		})
	}
	return needs
}
