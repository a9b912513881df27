package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendasalud/senda/internal/detection/cache"
)

func TestService_CachesByNormalizedContent(t *testing.T) {
	svc := NewService(NewEngine(DefaultConfig()), cache.New(cache.DefaultConfig()))

	first := svc.Analyze(Message{Content: "Me siento triste"})
	require.NotNil(t, first)

	// Same normalized content returns the exact cached record, analysis ID
	// included.
	second := svc.Analyze(Message{Content: "  me  siento TRISTE "})
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)

	other := svc.Analyze(Message{Content: "hola"})
	assert.NotEqual(t, first.ID, other.ID)
}

func TestService_NilCacheRecomputes(t *testing.T) {
	svc := NewService(NewEngine(DefaultConfig()), nil)

	a := svc.Analyze(Message{Content: "hola"})
	b := svc.Analyze(Message{Content: "hola"})
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotEqual(t, a.ID, b.ID)
}
