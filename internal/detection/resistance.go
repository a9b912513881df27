package detection

import (
	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// DetectResistance scans the ordered resistance categories and reports the
// first one with a matching pattern, or nil when the message shows none.
// At most one resistance type is reported per message.
func (e *Engine) DetectResistance(text string) *analysis.Resistance {
	res, ok := match.First(text, &e.rules.Resistance)
	if !ok {
		return nil
	}
	return &analysis.Resistance{
		Type:           res.Label,
		Confidence:     signalConfidence,
		MatchedPattern: res.Pattern,
		Intervention:   interventionFor(resistanceInterventions, res.Label),
	}
}
