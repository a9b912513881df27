package scales

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/internal/detection/rules"
	"github.com/sendasalud/senda/internal/infrastructure/monitoring/logging"
	"github.com/sendasalud/senda/internal/infrastructure/monitoring/prometheus"
	"github.com/sendasalud/senda/pkg/errors"
)

// Suggestion priorities.
const (
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Per-item auto-scoring confidences.  A textual symptom match is trusted at
// 0.8, an implicit emotion-driven minimum at 0.5, absence of any signal at
// 0.1.  Preserve as constants; they are part of the observable contract.
const (
	confidenceTextual  = 0.8
	confidenceImplicit = 0.5
	confidenceAbsent   = 0.1
)

// Config holds the administration-gate and auto-scoring tunables.
type Config struct {
	// Cooldown is the minimum interval between administrations of the same
	// scale to the same user.
	Cooldown time.Duration
	// LookbackWindow bounds how far back an administration record is
	// relevant; stores may expire records beyond it.
	LookbackWindow time.Duration
	// OfferIntensity is the minimum emotional intensity (0-10) that alone
	// justifies offering a scale.
	OfferIntensity int
	// HighPriorityIntensity escalates a suggestion to high priority.
	HighPriorityIntensity int
	// HistoryWindow is how many recent history messages join the current
	// one for auto-scoring.
	HistoryWindow int
}

// DefaultConfig returns the production defaults: a 14-day cooldown, 30-day
// lookback, intensity thresholds 6 and 8, and a 3-message history window.
func DefaultConfig() Config {
	return Config{
		Cooldown:              14 * 24 * time.Hour,
		LookbackWindow:        30 * 24 * time.Hour,
		OfferIntensity:        6,
		HighPriorityIntensity: 8,
		HistoryWindow:         3,
	}
}

// EmotionalAnalysis is the externally supplied dominant-emotion estimate
// driving the administration gate and implicit item inference.
type EmotionalAnalysis struct {
	MainEmotion string `json:"emocionPrincipal"`
	Intensity   int    `json:"intensidad"`
}

// Suggestion is the administration gate's decision to offer one scale.
type Suggestion struct {
	Scale    string `json:"escala"`
	Priority string `json:"prioridad"`
	Reason   string `json:"motivo"`
}

// Input is the free-text material for auto-scoring: the current message plus
// optional recent history and the latest emotional analysis.
type Input struct {
	Content       string
	RecentHistory []string
	Emotional     *EmotionalAnalysis
}

// ItemScore is one auto-scored or submitted item.
type ItemScore struct {
	ItemID     string  `json:"itemId"`
	Symptom    string  `json:"sintoma"`
	Score      int     `json:"puntaje"`
	Confidence float64 `json:"confianza"`
}

// Interpretation maps a total score to its severity band.
type Interpretation struct {
	Severity       string `json:"severidad"`
	Recommendation string `json:"recomendacion"`
	Level          string `json:"nivel"`
}

// Result is a complete auto-scored scale.
type Result struct {
	Scale          string         `json:"escala"`
	Items          []ItemScore    `json:"items"`
	Total          int            `json:"puntajeTotal"`
	Confidence     float64        `json:"confianza"`
	Interpretation Interpretation `json:"interpretacion"`
	ScoredAt       time.Time      `json:"calculadoEn"`
}

// Engine implements the administration gate, auto-scoring, interpretation
// and submission validation.  Construct with NewEngine.
type Engine struct {
	cfg     Config
	rules   *rules.Registry
	store   AdministrationStore
	logger  logging.Logger
	metrics *prometheus.DetectionMetrics
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore injects the administration-record store.  Without it the gate
// runs with an in-memory store, which is only suitable for tests and the CLI.
func WithStore(s AdministrationStore) Option {
	return func(e *Engine) { e.store = s }
}

// WithLogger injects the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics attaches scale metrics.
func WithMetrics(m *prometheus.DetectionMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithClock overrides the time source.  Tests only.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine constructs a scale engine.
func NewEngine(cfg Config, opts ...Option) *Engine {
	def := DefaultConfig()
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = def.Cooldown
	}
	if cfg.LookbackWindow <= 0 {
		cfg.LookbackWindow = def.LookbackWindow
	}
	if cfg.OfferIntensity <= 0 {
		cfg.OfferIntensity = def.OfferIntensity
	}
	if cfg.HighPriorityIntensity <= 0 {
		cfg.HighPriorityIntensity = def.HighPriorityIntensity
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = def.HistoryWindow
	}
	e := &Engine{
		cfg:    cfg,
		rules:  rules.Default(),
		logger: logging.NewNopLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = NewMemoryAdministrationStore()
	}
	return e
}

// ShouldAdminister decides whether to offer a scale to the user right now.
//
// The depression scale is offered when the dominant emotion is sadness and
// either the intensity reaches the offer threshold or the message was
// classified under the emotional topic; the anxiety scale is offered
// analogously for anxiety or fear.  Both respect the per-scale cooldown
// since the last administration (never administered counts as infinitely
// long ago).  Depression is checked first and at most one suggestion is
// returned.  Returns nil without error when no scale should be offered.
func (e *Engine) ShouldAdminister(ctx context.Context, userID string, emo EmotionalAnalysis, topic string) (*Suggestion, error) {
	type candidate struct {
		scale    string
		emotions []string
		reason   string
	}
	candidates := []candidate{
		{TypePHQ9, []string{EmotionSadness}, "tristeza persistente detectada"},
		{TypeGAD7, []string{EmotionAnxiety, EmotionFear}, "ansiedad elevada detectada"},
	}

	for _, c := range candidates {
		if !containsString(c.emotions, emo.MainEmotion) {
			continue
		}
		if emo.Intensity < e.cfg.OfferIntensity && topic != rules.TopicEmotional {
			continue
		}

		last, found, err := e.store.LastAdministered(ctx, userID, c.scale)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeStoreError, "failed to read administration record")
		}
		if found && e.now().Sub(last) < e.cfg.Cooldown {
			e.logger.Debug("scale within cooldown, skipping",
				logging.String("scale", c.scale),
				logging.String("user_id", userID))
			continue
		}

		priority := PriorityMedium
		if emo.Intensity >= e.cfg.HighPriorityIntensity {
			priority = PriorityHigh
		}
		if e.metrics != nil {
			e.metrics.ScaleSuggestionsTotal.WithLabelValues(c.scale, priority).Inc()
		}
		return &Suggestion{Scale: c.scale, Priority: priority, Reason: c.reason}, nil
	}
	return nil, nil
}

// MarkAdministered records that a scale was administered to the user now.
// Call it after the user completes (or is shown) the questionnaire so the
// cooldown takes effect.
func (e *Engine) MarkAdministered(ctx context.Context, userID, scaleType string) error {
	if _, err := Lookup(scaleType); err != nil {
		return err
	}
	if err := e.store.RecordAdministration(ctx, userID, scaleType, e.now()); err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreError, "failed to record administration")
	}
	return nil
}

// AutoComplete scores every item of the scale from free text.
//
// For each item, the symptom's pattern list is matched against the combined
// current message and up to HistoryWindow recent messages.  A textual match
// scores by frequency language (daily 3, often 2, baseline 1) at 0.8
// confidence.  Without a textual match, an elevated associated emotion still
// assigns the minimum score 1 at 0.5 confidence.  No signal at all scores 0
// at 0.1.  The result's overall confidence is the fraction of items with a
// non-zero score, rounded to two decimals.
func (e *Engine) AutoComplete(scaleType string, in Input) (*Result, error) {
	def, err := Lookup(scaleType)
	if err != nil {
		return nil, err
	}

	text := e.combinedText(in)

	res := &Result{
		Scale:    def.Type,
		Items:    make([]ItemScore, 0, len(def.Items)),
		ScoredAt: e.now(),
	}

	scored := 0
	for _, item := range def.Items {
		is := ItemScore{ItemID: item.ID, Symptom: item.Symptom, Confidence: confidenceAbsent}
		switch {
		case match.Any(text, e.rules.Symptoms[item.Symptom]):
			is.Score = e.frequencyScore(text)
			is.Confidence = confidenceTextual
		case e.emotionElevated(in.Emotional, item.Symptom):
			is.Score = 1
			is.Confidence = confidenceImplicit
		}
		if is.Score > 0 {
			scored++
		}
		res.Total += is.Score
		res.Items = append(res.Items, is)
	}

	if len(def.Items) > 0 {
		res.Confidence = math.Round(float64(scored)/float64(len(def.Items))*100) / 100
	}
	res.Interpretation = e.Interpret(def, res.Total)

	if e.metrics != nil {
		e.metrics.ScaleAutoScoresTotal.WithLabelValues(def.Type).Inc()
	}
	e.logger.Debug("scale auto-scored",
		logging.String("scale", def.Type),
		logging.Int("total", res.Total),
		logging.Float64("confidence", res.Confidence))
	return res, nil
}

// Interpret maps a total score to the first band containing it.  Totals
// outside every band fall back to an undetermined interpretation.
func (e *Engine) Interpret(def *Definition, total int) Interpretation {
	for _, b := range def.Bands {
		if total >= b.Min && total <= b.Max {
			return Interpretation{
				Severity:       b.Severity,
				Recommendation: b.Recommendation,
				Level:          b.Level,
			}
		}
	}
	return Interpretation{
		Severity:       "Indeterminada",
		Recommendation: "Se requiere evaluación adicional.",
		Level:          LevelUnknown,
	}
}

// ValidateSubmission checks a manual submission against the scale contract:
// the scale must exist, every submitted item id must belong to it, every
// score must be in [0, 3], and every item of the scale must be present.
// The first violation found is returned as a validation error.
func (e *Engine) ValidateSubmission(scaleType string, scores map[string]int) error {
	def, err := Lookup(scaleType)
	if err != nil {
		return err
	}

	for id, score := range scores {
		if def.Item(id) == nil {
			return errors.Newf(errors.ErrCodeScaleItemUnknown,
				"item %q does not belong to scale %q", id, def.Type)
		}
		if score < 0 || score > 3 {
			return errors.Newf(errors.ErrCodeScaleScoreOutOfRange,
				"item %q score %d outside [0, 3]", id, score)
		}
	}
	for _, item := range def.Items {
		if _, ok := scores[item.ID]; !ok {
			return errors.Newf(errors.ErrCodeScaleItemMissing,
				"item %q of scale %q is missing", item.ID, def.Type)
		}
	}
	return nil
}

// Score builds a Result from a validated manual submission.
func (e *Engine) Score(scaleType string, scores map[string]int) (*Result, error) {
	if err := e.ValidateSubmission(scaleType, scores); err != nil {
		return nil, err
	}
	def, _ := Lookup(scaleType)

	res := &Result{
		Scale:      def.Type,
		Items:      make([]ItemScore, 0, len(def.Items)),
		Confidence: 1,
		ScoredAt:   e.now(),
	}
	for _, item := range def.Items {
		s := scores[item.ID]
		res.Total += s
		res.Items = append(res.Items, ItemScore{
			ItemID:     item.ID,
			Symptom:    item.Symptom,
			Score:      s,
			Confidence: 1,
		})
	}
	res.Interpretation = e.Interpret(def, res.Total)
	return res, nil
}

// combinedText joins the current message with up to HistoryWindow recent
// messages, most recent first, and normalizes the result for matching.
func (e *Engine) combinedText(in Input) string {
	parts := []string{in.Content}
	history := in.RecentHistory
	if len(history) > e.cfg.HistoryWindow {
		history = history[:e.cfg.HistoryWindow]
	}
	parts = append(parts, history...)
	return match.Normalize(strings.Join(parts, " "))
}

// frequencyScore maps frequency language to an item score.  The "often"
// list is checked before the "daily" list because phrases like "casi
// siempre" contain the daily keyword "siempre".
func (e *Engine) frequencyScore(text string) int {
	if match.Any(text, e.rules.FrequencyOften) {
		return 2
	}
	if match.Any(text, e.rules.FrequencyDaily) {
		return 3
	}
	return 1
}

// emotionElevated reports whether the emotional analysis implies the symptom
// despite no textual mention: the dominant emotion must be associated with
// the symptom and its intensity must reach the offer threshold.
func (e *Engine) emotionElevated(emo *EmotionalAnalysis, symptom string) bool {
	if emo == nil || emo.Intensity < e.cfg.OfferIntensity {
		return false
	}
	return containsString(symptomEmotions[symptom], emo.MainEmotion)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
