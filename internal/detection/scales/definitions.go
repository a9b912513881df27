// Package scales implements the clinical scale engine: the fixed PHQ-9 and
// GAD-7 definitions, the administration gate, text-driven auto-scoring, score
// interpretation, and manual-submission validation.
package scales

import (
	"github.com/sendasalud/senda/internal/detection/rules"
	"github.com/sendasalud/senda/pkg/errors"
)

// Scale type keys.  Stable identifiers used in persistence and the API layer.
const (
	TypePHQ9 = "phq9"
	TypeGAD7 = "gad7"
)

// Emotion keys recognized by the administration gate.
const (
	EmotionSadness = "tristeza"
	EmotionAnxiety = "ansiedad"
	EmotionFear    = "miedo"
)

// Severity levels attached to every scoring band, in ascending order.
const (
	LevelMinimal          = "minimal"
	LevelMild             = "mild"
	LevelModerate         = "moderate"
	LevelModeratelySevere = "moderately_severe"
	LevelSevere           = "severe"
	LevelUnknown          = "unknown"
)

// Item is one question of a scale, bound to a symptom key from the rule
// registry.  Scores per item are always in [0, 3].
type Item struct {
	ID       string `json:"id"`
	Question string `json:"pregunta"`
	Symptom  string `json:"sintoma"`
}

// Band is one severity range of a scale.  Bands are ordered, contiguous and
// non-overlapping; together they cover [0, max score].
type Band struct {
	Min            int    `json:"min"`
	Max            int    `json:"max"`
	Severity       string `json:"severidad"`
	Recommendation string `json:"recomendacion"`
	Level          string `json:"nivel"`
}

// Definition is a complete clinical scale.
type Definition struct {
	Type        string `json:"tipo"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Items       []Item `json:"items"`
	Bands       []Band `json:"bandas"`
}

// MaxScore returns the highest attainable total (3 points per item).
func (d *Definition) MaxScore() int {
	return 3 * len(d.Items)
}

// Item returns the item with the given id, or nil.
func (d *Definition) Item(id string) *Item {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// phq9 is the 9-item depression scale.
var phq9 = Definition{
	Type:        TypePHQ9,
	Name:        "PHQ-9",
	Description: "Cuestionario de salud del paciente, orientado a síntomas depresivos en las últimas dos semanas.",
	Items: []Item{
		{ID: "phq9_1", Question: "¿Poco interés o placer en hacer cosas?", Symptom: rules.SymptomAnhedonia},
		{ID: "phq9_2", Question: "¿Se ha sentido decaído/a, deprimido/a o sin esperanza?", Symptom: rules.SymptomDepressedMood},
		{ID: "phq9_3", Question: "¿Problemas para dormir, o ha dormido demasiado?", Symptom: rules.SymptomSleepDisturbance},
		{ID: "phq9_4", Question: "¿Se ha sentido cansado/a o con poca energía?", Symptom: rules.SymptomFatigue},
		{ID: "phq9_5", Question: "¿Poco apetito, o ha comido en exceso?", Symptom: rules.SymptomAppetiteChange},
		{ID: "phq9_6", Question: "¿Se ha sentido mal consigo mismo/a, o que es un fracaso?", Symptom: rules.SymptomWorthlessness},
		{ID: "phq9_7", Question: "¿Dificultad para concentrarse en actividades cotidianas?", Symptom: rules.SymptomConcentration},
		{ID: "phq9_8", Question: "¿Se ha movido o hablado tan lento que otros lo notaron, o lo contrario, muy inquieto/a?", Symptom: rules.SymptomPsychomotor},
		{ID: "phq9_9", Question: "¿Pensamientos de que estaría mejor muerto/a o de hacerse daño?", Symptom: rules.SymptomSuicidalIdeation},
	},
	Bands: []Band{
		{Min: 0, Max: 4, Severity: "Mínima", Recommendation: "Monitoreo; puede no requerir tratamiento.", Level: LevelMinimal},
		{Min: 5, Max: 9, Severity: "Leve", Recommendation: "Vigilancia activa; repetir el cuestionario en el seguimiento.", Level: LevelMild},
		{Min: 10, Max: 14, Severity: "Moderada", Recommendation: "Considerar plan de tratamiento, consejería o seguimiento profesional.", Level: LevelModerate},
		{Min: 15, Max: 19, Severity: "Moderadamente grave", Recommendation: "Tratamiento activo con psicoterapia y/o medicación; derivación profesional.", Level: LevelModeratelySevere},
		{Min: 20, Max: 27, Severity: "Grave", Recommendation: "Inicio inmediato de tratamiento; derivación prioritaria a especialista.", Level: LevelSevere},
	},
}

// gad7 is the 7-item anxiety scale.
var gad7 = Definition{
	Type:        TypeGAD7,
	Name:        "GAD-7",
	Description: "Escala de ansiedad generalizada, orientada a síntomas ansiosos en las últimas dos semanas.",
	Items: []Item{
		{ID: "gad7_1", Question: "¿Se ha sentido nervioso/a, ansioso/a o con los nervios de punta?", Symptom: rules.SymptomNervousness},
		{ID: "gad7_2", Question: "¿No ha podido dejar de preocuparse o controlar la preocupación?", Symptom: rules.SymptomUncontrollableWorry},
		{ID: "gad7_3", Question: "¿Se ha preocupado demasiado por diferentes cosas?", Symptom: rules.SymptomExcessiveWorry},
		{ID: "gad7_4", Question: "¿Dificultad para relajarse?", Symptom: rules.SymptomTroubleRelaxing},
		{ID: "gad7_5", Question: "¿Tan inquieto/a que le cuesta quedarse quieto/a?", Symptom: rules.SymptomRestlessness},
		{ID: "gad7_6", Question: "¿Se ha molestado o irritado con facilidad?", Symptom: rules.SymptomIrritability},
		{ID: "gad7_7", Question: "¿Ha sentido miedo de que algo terrible pudiera pasar?", Symptom: rules.SymptomFearAwful},
	},
	Bands: []Band{
		{Min: 0, Max: 4, Severity: "Mínima", Recommendation: "Monitoreo; puede no requerir tratamiento.", Level: LevelMinimal},
		{Min: 5, Max: 9, Severity: "Leve", Recommendation: "Vigilancia activa; repetir el cuestionario en el seguimiento.", Level: LevelMild},
		{Min: 10, Max: 14, Severity: "Moderada", Recommendation: "Considerar plan de tratamiento o seguimiento profesional.", Level: LevelModerate},
		{Min: 15, Max: 21, Severity: "Grave", Recommendation: "Tratamiento activo; derivación prioritaria a especialista.", Level: LevelSevere},
	},
}

// definitions indexes the fixed scales by type key.
var definitions = map[string]*Definition{
	TypePHQ9: &phq9,
	TypeGAD7: &gad7,
}

// Lookup returns the definition for a scale type key.
func Lookup(scaleType string) (*Definition, error) {
	d, ok := definitions[scaleType]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeScaleNotFound, "unknown scale %q", scaleType)
	}
	return d, nil
}

// symptomEmotions maps each symptom key to the emotions whose elevated
// intensity justifies an implicit minimum score when the text itself never
// mentions the symptom.
var symptomEmotions = map[string][]string{
	rules.SymptomAnhedonia:        {EmotionSadness},
	rules.SymptomDepressedMood:    {EmotionSadness},
	rules.SymptomFatigue:          {EmotionSadness},
	rules.SymptomWorthlessness:    {EmotionSadness},
	rules.SymptomConcentration:    {EmotionSadness, EmotionAnxiety},
	rules.SymptomSleepDisturbance: {EmotionSadness, EmotionAnxiety},

	rules.SymptomNervousness:         {EmotionAnxiety, EmotionFear},
	rules.SymptomUncontrollableWorry: {EmotionAnxiety},
	rules.SymptomExcessiveWorry:      {EmotionAnxiety},
	rules.SymptomTroubleRelaxing:     {EmotionAnxiety},
	rules.SymptomRestlessness:        {EmotionAnxiety},
	rules.SymptomFearAwful:           {EmotionFear, EmotionAnxiety},
}
