package detection

import (
	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// EvaluateSelfEfficacy counts low-efficacy versus high-efficacy expressions.
// A strict majority decides the level at 0.7 confidence; a tie, including
// zero matches on both sides, resolves to medium at 0.5.  Only a low level
// flags intervention.  Empty text yields nil.
func (e *Engine) EvaluateSelfEfficacy(text string) *analysis.SelfEfficacy {
	if text == "" {
		return nil
	}

	low := match.Count(text, e.rules.EfficacyLow)
	high := match.Count(text, e.rules.EfficacyHigh)

	switch {
	case low > high:
		return &analysis.SelfEfficacy{
			Level:             LevelLow,
			Confidence:        signalConfidence,
			NeedsIntervention: true,
		}
	case high > low:
		return &analysis.SelfEfficacy{
			Level:      LevelHigh,
			Confidence: signalConfidence,
		}
	default:
		return &analysis.SelfEfficacy{
			Level:      LevelMedium,
			Confidence: defaultConfidence,
		}
	}
}
