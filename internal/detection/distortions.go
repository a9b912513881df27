package detection

import (
	"sort"

	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// DetectDistortions scores every cognitive-distortion category against the
// text and returns all categories with non-zero confidence, sorted by
// descending confidence.  Ties keep declaration order (stable sort).  Input
// longer than the configured cap is truncated rune-safely before scanning.
// Always non-nil.
func (e *Engine) DetectDistortions(text string) []analysis.Distortion {
	text = truncateRunes(text, e.cfg.MaxDistortionInputLen)

	out := []analysis.Distortion{}
	for i := range e.rules.Distortions.Categories {
		c := &e.rules.Distortions.Categories[i]
		conf := match.Score(text, c)
		if conf == 0 {
			continue
		}
		out = append(out, analysis.Distortion{
			Type:           c.Label,
			Confidence:     conf,
			MatchedPattern: match.FirstPattern(text, c.Patterns),
			Intervention:   interventionFor(distortionInterventions, c.Label),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// PrimaryDistortion returns the highest-confidence distortion from a sorted
// detection result, or nil when none were detected.
func PrimaryDistortion(ds []analysis.Distortion) *analysis.Distortion {
	if len(ds) == 0 {
		return nil
	}
	return &ds[0]
}

// truncateRunes caps text at n runes without splitting a multi-byte
// character.
func truncateRunes(text string, n int) string {
	if n <= 0 {
		return text
	}
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
