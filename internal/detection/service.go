package detection

import (
	"github.com/sendasalud/senda/internal/detection/cache"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// Service fronts the engine with the analysis cache.  Repeated analysis of
// equivalent content (same normalized prefix) within the TTL returns the
// cached composite; concurrent analyses of the same content collapse into
// one computation.
type Service struct {
	engine *Engine
	cache  *cache.AnalysisCache
}

// NewService wires an engine to a cache.  A nil cache disables caching.
func NewService(engine *Engine, c *cache.AnalysisCache) *Service {
	return &Service{engine: engine, cache: c}
}

// Analyze returns the composite analysis for the message, from cache when
// possible.
func (s *Service) Analyze(msg Message) *analysis.Composite {
	if s.cache == nil {
		return s.engine.Analyze(msg)
	}
	return s.cache.GetOrCompute(msg.Content, func() *analysis.Composite {
		return s.engine.Analyze(msg)
	})
}

// Engine exposes the underlying engine for callers that need the individual
// detectors.
func (s *Service) Engine() *Engine {
	return s.engine
}
