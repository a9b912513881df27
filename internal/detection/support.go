package detection

import (
	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// AssessSocialSupport mirrors the self-efficacy strategy over the perceived
// support pattern lists: strict majority decides at 0.7, ties resolve to
// medium at 0.5.  Empty text yields nil.
func (e *Engine) AssessSocialSupport(text string) *analysis.SocialSupport {
	if text == "" {
		return nil
	}

	high := match.Count(text, e.rules.SupportHigh)
	low := match.Count(text, e.rules.SupportLow)

	switch {
	case high > low:
		return &analysis.SocialSupport{Level: LevelHigh, Confidence: signalConfidence}
	case low > high:
		return &analysis.SocialSupport{Level: LevelLow, Confidence: signalConfidence}
	default:
		return &analysis.SocialSupport{Level: LevelMedium, Confidence: defaultConfidence}
	}
}
