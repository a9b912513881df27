package match

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendasalud/senda/internal/detection/rules"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hola mundo", Normalize("  HOLA   Mundo \n"))
	assert.Equal(t, "", Normalize("   \t\n"))
	assert.Equal(t, "me siento sola", Normalize("Me  Siento   SOLA"))
}

func TestFirst_DeclarationOrderWins(t *testing.T) {
	set := &rules.Set{
		Name: "test",
		Categories: []rules.Category{
			{Label: "first", Patterns: []*regexp.Regexp{regexp.MustCompile(`shared`)}},
			{Label: "second", Patterns: []*regexp.Regexp{regexp.MustCompile(`shared`), regexp.MustCompile(`only-second`)}},
		},
	}

	// Text triggers both categories; declaration order decides, every time.
	for i := 0; i < 10; i++ {
		res, ok := First("this has shared and only-second triggers", set)
		require.True(t, ok)
		assert.Equal(t, "first", res.Label)
		assert.Equal(t, "shared", res.Pattern)
	}
}

func TestFirst_NoMatchAndEmptyText(t *testing.T) {
	set := &rules.Default().Intent

	_, ok := First("", set)
	assert.False(t, ok)

	_, ok = First("xyzzy plugh", set)
	assert.False(t, ok)
}

func TestAnyAndCount(t *testing.T) {
	pats := []*regexp.Regexp{
		regexp.MustCompile(`uno`),
		regexp.MustCompile(`dos`),
		regexp.MustCompile(`tres`),
	}

	assert.True(t, Any("uno y dos", pats))
	assert.False(t, Any("", pats))
	assert.False(t, Any("cuatro", pats))

	assert.Equal(t, 2, Count("uno y dos", pats))
	assert.Equal(t, 0, Count("", pats))
}

func TestFirstPattern(t *testing.T) {
	pats := []*regexp.Regexp{
		regexp.MustCompile(`aaa`),
		regexp.MustCompile(`bbb`),
	}
	assert.Equal(t, "bbb", FirstPattern("xx bbb", pats))
	assert.Equal(t, "", FirstPattern("none", pats))
}

func TestScore_ZeroWhenNothingMatches(t *testing.T) {
	c := &rules.Category{Label: "x", Patterns: []*regexp.Regexp{regexp.MustCompile(`nunca`)}}
	assert.Equal(t, 0.0, Score("texto neutro", c))
	assert.Equal(t, 0.0, Score("", c))
}

func TestScore_FractionPlusDensityBoost(t *testing.T) {
	c := &rules.Category{Label: "x", Patterns: []*regexp.Regexp{
		regexp.MustCompile(`triste`),
		regexp.MustCompile(`llorar`),
	}}

	// One of two patterns matches; one of four tokens matches.
	// 0.5 + 0.25*0.2 = 0.55
	got := Score("hoy estoy triste otra", c)
	assert.Equal(t, 0.55, got)

	// Both patterns match; two of two tokens match: 1.0 + 0.2 capped to 1.0.
	got = Score("triste llorar", c)
	assert.Equal(t, 1.0, got)
}

func TestScore_AlwaysWithinUnitInterval(t *testing.T) {
	for _, c := range rules.Default().Distortions.Categories {
		cat := c
		s := Score("soy un fracaso siempre nunca todo o nada es mi culpa", &cat)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
