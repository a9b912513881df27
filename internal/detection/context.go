package detection

import (
	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/internal/detection/rules"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// AnalyzeContext classifies intent, topic and urgency for normalized text.
//
// Intent and topic both resolve first-match over their ordered rule sets and
// carry a fixed 0.8 confidence; no match falls back to the general category
// at 0.5.  Urgency is a separate flag: it escalates to ALTA only when an
// explicit urgency marker appears, regardless of intent.
func (e *Engine) AnalyzeContext(text string) (analysis.Intent, analysis.Topic, analysis.Urgency) {
	intent := analysis.Intent{
		Type:       rules.IntentGeneral,
		Confidence: defaultConfidence,
	}
	if res, ok := match.First(text, &e.rules.Intent); ok {
		intent.Type = res.Label
		intent.Confidence = intentConfidence
	}
	intent.NeedsFollowUp = intent.Type == rules.IntentCrisis || intent.Type == rules.IntentEmotional

	topic := analysis.Topic{
		Category:   rules.TopicGeneral,
		Confidence: defaultConfidence,
	}
	if res, ok := match.First(text, &e.rules.Topic); ok {
		topic.Category = res.Label
		topic.Confidence = intentConfidence
	}

	urgency := analysis.UrgencyNormal
	if match.Any(text, e.rules.Urgency) {
		urgency = analysis.UrgencyHigh
	}

	return intent, topic, urgency
}
