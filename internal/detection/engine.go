// Package detection implements the composite psychological-signal pipeline:
// the intent/topic/urgency classifier plus seven independent signal detectors
// whose results are merged into one analysis record per message.
//
// Every detector is a pure function of the message text and the static rule
// registry; concurrent invocation for different messages needs no locking.
// Detection never returns an error: invalid input and internal faults both
// degrade to the most neutral classification available.
package detection

import (
	"time"

	"github.com/google/uuid"

	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/internal/detection/rules"
	"github.com/sendasalud/senda/internal/infrastructure/monitoring/logging"
	"github.com/sendasalud/senda/internal/infrastructure/monitoring/prometheus"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// Fixed confidence constants.  These are part of the observable product
// behavior; do not unify them into a computed formula.
const (
	// intentConfidence is assigned to any matched intent or topic.
	intentConfidence = 0.8
	// defaultConfidence is used for the default intent/topic and for
	// medium efficacy/support levels.
	defaultConfidence = 0.5
	// strengthConfidence is assigned to each identified strength.
	strengthConfidence = 0.6
	// signalConfidence is assigned to resistance matches, implicit needs,
	// and decisive efficacy/support levels.
	signalConfidence = 0.7
)

// Levels for the self-efficacy and social-support assessors.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Relapse intervention urgency tiers.
const (
	RelapseUrgencyMedium = "medium"
	RelapseUrgencyHigh   = "high"
)

// Config holds the pipeline tunables.
type Config struct {
	// MaxDistortionInputLen caps the text scanned by the cognitive
	// distortion detector.  Cost bound only; truncation is rune-safe.
	MaxDistortionInputLen int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{MaxDistortionInputLen: 10000}
}

// Message is the inbound record analyzed by the engine.
type Message struct {
	Content string `json:"content"`
}

// Engine runs the composite analysis.  Construct with NewEngine; the zero
// value is not usable.
type Engine struct {
	rules   *rules.Registry
	logger  logging.Logger
	metrics *prometheus.DetectionMetrics
	cfg     Config
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger injects the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics attaches detection metrics.  Without it the engine emits none.
func WithMetrics(m *prometheus.DetectionMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithRegistry overrides the rule registry.  Tests only; production always
// uses rules.Default().
func WithRegistry(r *rules.Registry) Option {
	return func(e *Engine) { e.rules = r }
}

// WithClock overrides the time source.  Tests only.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine constructs a detection engine.
func NewEngine(cfg Config, opts ...Option) *Engine {
	if cfg.MaxDistortionInputLen <= 0 {
		cfg.MaxDistortionInputLen = DefaultConfig().MaxDistortionInputLen
	}
	e := &Engine{
		rules:  rules.Default(),
		logger: logging.NewNopLogger(),
		cfg:    cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze runs the full pipeline on one message: context classification plus
// all seven signal detectors, merged into a single composite record.
//
// Analyze never panics and never returns nil.  Empty or whitespace-only
// content yields the default analysis; an internal fault is logged and also
// yields the default analysis.
func (e *Engine) Analyze(msg Message) (comp *analysis.Composite) {
	start := e.now()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("analysis failed, returning default", logging.Any("panic", r))
			comp = e.defaultComposite()
		}
	}()

	text := match.Normalize(msg.Content)
	if text == "" {
		return e.defaultComposite()
	}

	intent, topic, urgency := e.AnalyzeContext(text)

	comp = &analysis.Composite{
		ID:      uuid.NewString(),
		Intent:  intent,
		Topic:   topic,
		Urgency: urgency,
		Context: defaultContext(),

		Resistance:    e.DetectResistance(text),
		RelapseSigns:  e.DetectRelapseSigns(text),
		ImplicitNeeds: e.DetectImplicitNeeds(text),
		Strengths:     e.IdentifyStrengths(text),
		SelfEfficacy:  e.EvaluateSelfEfficacy(text),
		SocialSupport: e.AssessSocialSupport(text),
		Distortions:   e.DetectDistortions(text),

		AnalyzedAt: e.now(),
	}
	if comp.RelapseSigns != nil {
		comp.RelapseIntervention = RelapseInterventionFor(comp.RelapseSigns)
	}

	e.observe(comp, start)
	return comp
}

// defaultContext is the static conversation-context stub; phase tracking
// lives in the chat orchestrator.
func defaultContext() analysis.Context {
	return analysis.Context{Phase: "exploracion", RecurringTopics: []string{}}
}

// defaultComposite is the neutral analysis returned for invalid input or
// after an internal fault.
func (e *Engine) defaultComposite() *analysis.Composite {
	return &analysis.Composite{
		ID: uuid.NewString(),
		Intent: analysis.Intent{
			Type:       rules.IntentGeneral,
			Confidence: defaultConfidence,
		},
		Topic: analysis.Topic{
			Category:   rules.TopicGeneral,
			Confidence: defaultConfidence,
		},
		Urgency:       analysis.UrgencyNormal,
		Context:       defaultContext(),
		ImplicitNeeds: []analysis.ImplicitNeed{},
		Strengths:     []analysis.Strength{},
		Distortions:   []analysis.Distortion{},
		AnalyzedAt:    e.now(),
	}
}

func (e *Engine) observe(comp *analysis.Composite, start time.Time) {
	if e.metrics == nil {
		return
	}
	e.metrics.AnalysesTotal.WithLabelValues(comp.Intent.Type).Inc()
	e.metrics.AnalysisDuration.Observe(e.now().Sub(start).Seconds())

	if comp.Resistance != nil {
		e.metrics.DetectorMatchesTotal.WithLabelValues("resistance").Inc()
	}
	if comp.RelapseSigns != nil {
		e.metrics.DetectorMatchesTotal.WithLabelValues("relapse").Inc()
	}
	if len(comp.ImplicitNeeds) > 0 {
		e.metrics.DetectorMatchesTotal.WithLabelValues("needs").Inc()
	}
	if len(comp.Strengths) > 0 {
		e.metrics.DetectorMatchesTotal.WithLabelValues("strengths").Inc()
	}
	if comp.SelfEfficacy != nil && comp.SelfEfficacy.Level != LevelMedium {
		e.metrics.DetectorMatchesTotal.WithLabelValues("efficacy").Inc()
	}
	if comp.SocialSupport != nil && comp.SocialSupport.Level != LevelMedium {
		e.metrics.DetectorMatchesTotal.WithLabelValues("support").Inc()
	}
	if len(comp.Distortions) > 0 {
		e.metrics.DetectorMatchesTotal.WithLabelValues("distortions").Inc()
	}
}
