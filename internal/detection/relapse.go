package detection

import (
	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/internal/detection/rules"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// DetectRelapseSigns evaluates every relapse dimension and accumulates all
// that match; it never stops at the first hit.  Returns nil when no
// dimension matched.
func (e *Engine) DetectRelapseSigns(text string) *analysis.RelapseSigns {
	signs := &analysis.RelapseSigns{Patterns: []string{}}
	found := false

	for _, c := range e.rules.Relapse.Categories {
		p := match.FirstPattern(text, c.Patterns)
		if p == "" {
			continue
		}
		found = true
		signs.Patterns = append(signs.Patterns, p)
		switch c.Label {
		case rules.RelapseEmotional:
			signs.Emotional = true
		case rules.RelapseBehavioral:
			signs.Behavioral = true
		case rules.RelapseCognitive:
			signs.Cognitive = true
		}
	}

	if !found {
		return nil
	}
	return signs
}

// RelapseInterventionFor derives the companion intervention: two or more
// matched dimensions escalate the urgency to high.
func RelapseInterventionFor(signs *analysis.RelapseSigns) *analysis.RelapseIntervention {
	if signs == nil {
		return nil
	}
	dims := 0
	for _, hit := range []bool{signs.Emotional, signs.Behavioral, signs.Cognitive} {
		if hit {
			dims++
		}
	}
	urgency := RelapseUrgencyMedium
	if dims >= 2 {
		urgency = RelapseUrgencyHigh
	}
	return &analysis.RelapseIntervention{
		Urgency:    urgency,
		Suggestion: relapseSuggestions[urgency],
	}
}
