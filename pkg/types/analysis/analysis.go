// Package analysis defines the outbound records produced by the detection
// engine.  These types form the contract consumed by the chat-response
// generator, the persistence layer, and the UI layer; the Spanish JSON field
// names are part of that contract and must not change.
package analysis

import "time"

// Urgency is the binary escalation flag attached to every composite analysis.
type Urgency string

const (
	UrgencyNormal Urgency = "NORMAL"
	UrgencyHigh   Urgency = "ALTA"
)

// Intent is the coarse purpose of a user message.
type Intent struct {
	Type          string  `json:"tipo"`
	Confidence    float64 `json:"confianza"`
	NeedsFollowUp bool    `json:"requiereSeguimiento"`
}

// Topic is the subject-matter category of a message.
type Topic struct {
	Category   string  `json:"categoria"`
	Subtopic   string  `json:"subtema,omitempty"`
	Confidence float64 `json:"confianza"`
}

// Context carries conversation-level context.  Phase tracking and recurring
// topics are populated by the (out-of-scope) chat orchestrator; the engine
// emits a minimal stub.
type Context struct {
	Phase           string   `json:"fase"`
	RecurringTopics []string `json:"temasRecurrentes"`
}

// Resistance is a single resistance-to-change detection.  First matching
// category wins; at most one is reported per message.
type Resistance struct {
	Type           string  `json:"tipo"`
	Confidence     float64 `json:"confianza"`
	MatchedPattern string  `json:"patronDetectado,omitempty"`
	Intervention   string  `json:"intervencion,omitempty"`
}

// RelapseSigns accumulates every relapse dimension that matched.  Unlike the
// other detectors it never stops at the first hit.
type RelapseSigns struct {
	Emotional  bool     `json:"emocional"`
	Behavioral bool     `json:"conductual"`
	Cognitive  bool     `json:"cognitivo"`
	Patterns   []string `json:"patrones"`
}

// RelapseIntervention is the companion intervention for a relapse detection.
// Urgency is "high" when two or more dimensions matched, otherwise "medium".
type RelapseIntervention struct {
	Urgency    string `json:"urgencia"`
	Suggestion string `json:"sugerencia"`
}

// ImplicitNeed is one unexpressed psychological need inferred from phrasing.
type ImplicitNeed struct {
	Type           string  `json:"tipo"`
	Confidence     float64 `json:"confianza"`
	MatchedPattern string  `json:"patronDetectado,omitempty"`
	Intervention   string  `json:"intervencion,omitempty"`
}

// Strength is one personal-resource category identified in the message.
type Strength struct {
	Category       string  `json:"categoria"`
	Confidence     float64 `json:"confianza"`
	MatchedPattern string  `json:"patronDetectado,omitempty"`
}

// SelfEfficacy is the low/medium/high self-efficacy estimate.
type SelfEfficacy struct {
	Level             string  `json:"nivel"`
	Confidence        float64 `json:"confianza"`
	NeedsIntervention bool    `json:"requiereIntervencion"`
}

// SocialSupport is the low/medium/high perceived social-support estimate.
type SocialSupport struct {
	Level      string  `json:"nivel"`
	Confidence float64 `json:"confianza"`
}

// Distortion is one detected cognitive distortion with its computed
// confidence.  Lists of distortions are always sorted by descending
// confidence.
type Distortion struct {
	Type           string  `json:"tipo"`
	Confidence     float64 `json:"confianza"`
	MatchedPattern string  `json:"patronDetectado,omitempty"`
	Intervention   string  `json:"intervencion,omitempty"`
}

// Composite is the full per-message analysis bundle.  The seven detector
// slots are independently nullable; callers branch on their presence.
type Composite struct {
	ID      string  `json:"id"`
	Intent  Intent  `json:"intencion"`
	Topic   Topic   `json:"tema"`
	Urgency Urgency `json:"urgencia"`
	Context Context `json:"contexto"`

	Resistance          *Resistance          `json:"resistencia,omitempty"`
	RelapseSigns        *RelapseSigns        `json:"senalesRecaida,omitempty"`
	RelapseIntervention *RelapseIntervention `json:"intervencionRecaida,omitempty"`
	ImplicitNeeds       []ImplicitNeed       `json:"necesidadesImplicitas"`
	Strengths           []Strength           `json:"fortalezas"`
	SelfEfficacy        *SelfEfficacy        `json:"autoeficacia,omitempty"`
	SocialSupport       *SocialSupport       `json:"apoyoSocial,omitempty"`
	Distortions         []Distortion         `json:"distorsionesCognitivas"`

	AnalyzedAt time.Time `json:"analizadoEn"`
}
