package scales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendasalud/senda/internal/detection/rules"
	"github.com/sendasalud/senda/pkg/errors"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return NewEngine(DefaultConfig(), opts...)
}

func allScores(def *Definition, score int) map[string]int {
	out := make(map[string]int, len(def.Items))
	for _, item := range def.Items {
		out[item.ID] = score
	}
	return out
}

func TestLookup(t *testing.T) {
	for _, st := range []string{TypePHQ9, TypeGAD7} {
		def, err := Lookup(st)
		require.NoError(t, err)
		assert.Equal(t, st, def.Type)
	}

	_, err := Lookup("phq15")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeScaleNotFound))
	assert.True(t, errors.IsValidation(err))
}

func TestDefinitions_BandsAreContiguousAndExhaustive(t *testing.T) {
	for _, def := range []*Definition{&phq9, &gad7} {
		require.NotEmpty(t, def.Bands, "scale %s", def.Type)
		assert.Equal(t, 0, def.Bands[0].Min)
		assert.Equal(t, def.MaxScore(), def.Bands[len(def.Bands)-1].Max)

		for i := 1; i < len(def.Bands); i++ {
			assert.Equal(t, def.Bands[i-1].Max+1, def.Bands[i].Min,
				"scale %s band %d is not contiguous", def.Type, i)
		}

		// Every attainable total maps to exactly one band.
		for total := 0; total <= def.MaxScore(); total++ {
			matches := 0
			for _, b := range def.Bands {
				if total >= b.Min && total <= b.Max {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "scale %s total %d", def.Type, total)
		}
	}
}

func TestInterpret_BandsAndFallback(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, "Mínima", e.Interpret(&phq9, 0).Severity)
	assert.Equal(t, "Leve", e.Interpret(&phq9, 7).Severity)
	assert.Equal(t, "Moderada", e.Interpret(&phq9, 12).Severity)
	assert.Equal(t, "Moderadamente grave", e.Interpret(&phq9, 17).Severity)
	assert.Equal(t, "Grave", e.Interpret(&phq9, 27).Severity)
	assert.Equal(t, "Grave", e.Interpret(&gad7, 21).Severity)

	out := e.Interpret(&phq9, 99)
	assert.Equal(t, "Indeterminada", out.Severity)
	assert.Equal(t, LevelUnknown, out.Level)
	assert.NotEmpty(t, out.Recommendation)
}

func TestShouldAdminister_SadnessOffersDepressionScale(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	got, err := e.ShouldAdminister(ctx, "user-1", EmotionalAnalysis{MainEmotion: EmotionSadness, Intensity: 7}, rules.TopicGeneral)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, TypePHQ9, got.Scale)
	assert.Equal(t, PriorityMedium, got.Priority)
	assert.NotEmpty(t, got.Reason)
}

func TestShouldAdminister_HighIntensityEscalatesPriority(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.ShouldAdminister(context.Background(), "user-1", EmotionalAnalysis{MainEmotion: EmotionSadness, Intensity: 9}, rules.TopicGeneral)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, PriorityHigh, got.Priority)
}

func TestShouldAdminister_EmotionalTopicLowersIntensityBar(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	got, err := e.ShouldAdminister(ctx, "user-1", EmotionalAnalysis{MainEmotion: EmotionSadness, Intensity: 4}, rules.TopicEmotional)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, TypePHQ9, got.Scale)

	got, err = e.ShouldAdminister(ctx, "user-1", EmotionalAnalysis{MainEmotion: EmotionSadness, Intensity: 4}, rules.TopicWorkStudy)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestShouldAdminister_AnxietyAndFearOfferAnxietyScale(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	for _, emotion := range []string{EmotionAnxiety, EmotionFear} {
		got, err := e.ShouldAdminister(ctx, "user-1", EmotionalAnalysis{MainEmotion: emotion, Intensity: 7}, rules.TopicGeneral)
		require.NoError(t, err)
		require.NotNil(t, got, "emotion %s", emotion)
		assert.Equal(t, TypeGAD7, got.Scale)
	}
}

func TestShouldAdminister_UnrelatedEmotionOffersNothing(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.ShouldAdminister(context.Background(), "user-1", EmotionalAnalysis{MainEmotion: "alegria", Intensity: 9}, rules.TopicEmotional)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestShouldAdminister_CooldownSuppressesRepeat(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	store := NewMemoryAdministrationStore()
	e := newTestEngine(t, WithStore(store), WithClock(func() time.Time { return now }))
	ctx := context.Background()
	emo := EmotionalAnalysis{MainEmotion: EmotionSadness, Intensity: 7}

	// Administered 5 days ago: inside the 14-day cooldown.
	require.NoError(t, store.RecordAdministration(ctx, "user-1", TypePHQ9, now.Add(-5*24*time.Hour)))
	got, err := e.ShouldAdminister(ctx, "user-1", emo, rules.TopicGeneral)
	require.NoError(t, err)
	assert.Nil(t, got)

	// 20 days ago: cooldown elapsed.
	require.NoError(t, store.RecordAdministration(ctx, "user-1", TypePHQ9, now.Add(-20*24*time.Hour)))
	got, err = e.ShouldAdminister(ctx, "user-1", emo, rules.TopicGeneral)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, TypePHQ9, got.Scale)

	// Other users are unaffected.
	got, err = e.ShouldAdminister(ctx, "user-2", emo, rules.TopicGeneral)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMarkAdministered_StartsCooldown(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	emo := EmotionalAnalysis{MainEmotion: EmotionSadness, Intensity: 7}

	require.NoError(t, e.MarkAdministered(ctx, "user-1", TypePHQ9))

	got, err := e.ShouldAdminister(ctx, "user-1", emo, rules.TopicGeneral)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = e.MarkAdministered(ctx, "user-1", "phq15")
	assert.True(t, errors.IsCode(err, errors.ErrCodeScaleNotFound))
}

func TestAutoComplete_TextualMatchesWithDailyFrequency(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.AutoComplete(TypePHQ9, Input{
		Content: "Me siento triste todos los días y no puedo dormir",
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 9)

	byID := map[string]ItemScore{}
	for _, is := range res.Items {
		byID[is.ItemID] = is
	}

	// Depressed mood and sleep disturbance are explicit; the daily marker
	// scores both at 3.
	assert.Equal(t, 3, byID["phq9_2"].Score)
	assert.Equal(t, 0.8, byID["phq9_2"].Confidence)
	assert.Equal(t, 3, byID["phq9_3"].Score)

	// Unmentioned symptoms with no emotional signal score 0 at 0.1.
	assert.Equal(t, 0, byID["phq9_9"].Score)
	assert.Equal(t, 0.1, byID["phq9_9"].Confidence)

	assert.Equal(t, 6, res.Total)
	assert.Equal(t, 0.22, res.Confidence) // 2 of 9 items scored
	assert.Equal(t, "Leve", res.Interpretation.Severity)
}

func TestAutoComplete_OftenFrequencyBeatsDailyKeywordInside(t *testing.T) {
	e := newTestEngine(t)

	// "casi siempre" must score 2, not 3, even though it contains "siempre".
	res, err := e.AutoComplete(TypePHQ9, Input{Content: "casi siempre estoy cansada"})
	require.NoError(t, err)

	for _, is := range res.Items {
		if is.ItemID == "phq9_4" {
			assert.Equal(t, 2, is.Score)
			assert.Equal(t, 0.8, is.Confidence)
			return
		}
	}
	t.Fatal("fatigue item not found")
}

func TestAutoComplete_ImplicitEmotionInference(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.AutoComplete(TypePHQ9, Input{
		Content:   "hola",
		Emotional: &EmotionalAnalysis{MainEmotion: EmotionSadness, Intensity: 7},
	})
	require.NoError(t, err)

	implicit := 0
	for _, is := range res.Items {
		if is.Score == 1 {
			assert.Equal(t, 0.5, is.Confidence, "item %s", is.ItemID)
			implicit++
		}
	}
	assert.Greater(t, implicit, 0)
	assert.Equal(t, implicit, res.Total)

	// Below the intensity threshold nothing is inferred.
	res, err = e.AutoComplete(TypePHQ9, Input{
		Content:   "hola",
		Emotional: &EmotionalAnalysis{MainEmotion: EmotionSadness, Intensity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0.0, res.Confidence)
}

func TestAutoComplete_HistoryWindowIsCapped(t *testing.T) {
	e := newTestEngine(t)

	// The symptom mention sits in the fourth history message, beyond the
	// three-message window, so it must not count.
	res, err := e.AutoComplete(TypeGAD7, Input{
		Content:       "hoy todo tranquilo",
		RecentHistory: []string{"nada", "nada", "nada", "no puedo dejar de preocuparme"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)

	// Inside the window it does.
	res, err = e.AutoComplete(TypeGAD7, Input{
		Content:       "hoy todo tranquilo",
		RecentHistory: []string{"no puedo dejar de preocuparme"},
	})
	require.NoError(t, err)
	assert.Greater(t, res.Total, 0)
}

func TestAutoComplete_UnknownScale(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.AutoComplete("phq15", Input{Content: "hola"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeScaleNotFound))
}

func TestValidateSubmission(t *testing.T) {
	e := newTestEngine(t)

	valid := allScores(&phq9, 2)
	assert.NoError(t, e.ValidateSubmission(TypePHQ9, valid))

	unknown := allScores(&phq9, 2)
	unknown["gad7_1"] = 1
	err := e.ValidateSubmission(TypePHQ9, unknown)
	assert.True(t, errors.IsCode(err, errors.ErrCodeScaleItemUnknown))

	outOfRange := allScores(&phq9, 2)
	outOfRange["phq9_3"] = 4
	err = e.ValidateSubmission(TypePHQ9, outOfRange)
	assert.True(t, errors.IsCode(err, errors.ErrCodeScaleScoreOutOfRange))

	missing := allScores(&phq9, 2)
	delete(missing, "phq9_7")
	err = e.ValidateSubmission(TypePHQ9, missing)
	assert.True(t, errors.IsCode(err, errors.ErrCodeScaleItemMissing))

	err = e.ValidateSubmission("phq15", valid)
	assert.True(t, errors.IsCode(err, errors.ErrCodeScaleNotFound))
}

func TestScore_ExtremeTotals(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Score(TypePHQ9, allScores(&phq9, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, "Mínima", res.Interpretation.Severity)

	res, err = e.Score(TypePHQ9, allScores(&phq9, 3))
	require.NoError(t, err)
	assert.Equal(t, 27, res.Total)
	assert.Equal(t, "Grave", res.Interpretation.Severity)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestMemoryAdministrationStore_RoundTrip(t *testing.T) {
	s := NewMemoryAdministrationStore()
	ctx := context.Background()
	at := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	_, found, err := s.LastAdministered(ctx, "u", TypePHQ9)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.RecordAdministration(ctx, "u", TypePHQ9, at))
	got, found, err := s.LastAdministered(ctx, "u", TypePHQ9)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, at, got)

	// Scales are tracked independently.
	_, found, err = s.LastAdministered(ctx, "u", TypeGAD7)
	require.NoError(t, err)
	assert.False(t, found)
}
