package rules

import "regexp"

// Clinical-scale symptom keys.  Scale definitions reference these; the keys
// are stable across calls so that item scores can be validated against the
// definition.
const (
	// Depression scale (9 items)
	SymptomAnhedonia        = "anhedonia"
	SymptomDepressedMood    = "depressed_mood"
	SymptomSleepDisturbance = "sleep_disturbance"
	SymptomFatigue          = "fatigue"
	SymptomAppetiteChange   = "appetite_change"
	SymptomWorthlessness    = "worthlessness"
	SymptomConcentration    = "concentration"
	SymptomPsychomotor      = "psychomotor"
	SymptomSuicidalIdeation = "suicidal_ideation"

	// Anxiety scale (7 items)
	SymptomNervousness         = "nervousness"
	SymptomUncontrollableWorry = "uncontrollable_worry"
	SymptomExcessiveWorry      = "excessive_worry"
	SymptomTroubleRelaxing     = "trouble_relaxing"
	SymptomRestlessness        = "restlessness"
	SymptomIrritability        = "irritability"
	SymptomFearAwful           = "fear_something_awful"
)

// symptomPatterns maps each symptom key to the phrasings that count as an
// explicit textual report of that symptom.
var symptomPatterns = map[string][]*regexp.Regexp{
	SymptomAnhedonia: compile(
		`no disfruto`,
		`nada me (interesa|gusta|llama la atenci(ó|o)n)`,
		`perd(í|i) el inter(é|e)s`,
		`ya no me (gusta|divierte)`,
		`sin ganas de (hacer )?nada`,
	),
	SymptomDepressedMood: compile(
		`\btriste`,
		`deprimid[oa]`,
		`sin esperanza`,
		`desanimad[oa]`,
		`me siento vac(í|i)[oa]`,
		`hundid[oa]`,
	),
	SymptomSleepDisturbance: compile(
		`no puedo dormir`,
		`insomnio`,
		`duermo (mal|poco|demasiado|mucho)`,
		`me despierto (de madrugada|a cada rato)`,
		`me cuesta (dormir|conciliar el sue(ñ|n)o)`,
	),
	SymptomFatigue: compile(
		`cansad[oa]`,
		`sin energ(í|i)a`,
		`agotad[oa]`,
		`fatiga`,
		`sin fuerzas`,
	),
	SymptomAppetiteChange: compile(
		`sin apetito`,
		`no tengo hambre`,
		`como (de m(á|a)s|demasiado|muy poco)`,
		`perd(í|i) el apetito`,
	),
	SymptomWorthlessness: compile(
		`soy un fracaso`,
		`me siento in(ú|u)til`,
		`no valgo( nada)?`,
		`me siento culpable`,
		`decepcionad[oa] de m(í|i)`,
	),
	SymptomConcentration: compile(
		`no (me puedo|puedo) concentrar`,
		`no me concentro`,
		`me distraigo`,
		`no puedo pensar con claridad`,
		`se me olvidan las cosas`,
	),
	SymptomPsychomotor: compile(
		`me muevo (m(á|a)s lento|sin parar)`,
		`hablo m(á|a)s lento`,
		`no puedo (estar|quedarme) quiet[oa]`,
		`como en c(á|a)mara lenta`,
	),
	SymptomSuicidalIdeation: compile(
		`no quiero (vivir|seguir|existir)`,
		`mejor no estar`,
		`hacerme da(ñ|n)o`,
		`quitarme la vida`,
		`estar(í|i)an mejor sin m(í|i)`,
	),

	SymptomNervousness: compile(
		`nervios[oa]?`,
		`ansios[oa]|ansiedad`,
		`al l(í|i)mite`,
		`tens[oa]|tensi(ó|o)n`,
	),
	SymptomUncontrollableWorry: compile(
		`no puedo (dejar|parar) de preocuparme`,
		`no controlo la preocupaci(ó|o)n`,
		`la preocupaci(ó|o)n me (domina|controla)`,
		`mi cabeza no para de dar vueltas`,
	),
	SymptomExcessiveWorry: compile(
		`me preocupo (por todo|demasiado|mucho)`,
		`preocupad[oa]`,
		`todo me preocupa`,
		`pienso en mil cosas( malas)?`,
	),
	SymptomTroubleRelaxing: compile(
		`no (puedo|logro) relajarme`,
		`no descanso`,
		`siempre (estoy )?alerta`,
		`no me puedo relajar`,
	),
	SymptomRestlessness: compile(
		`inquiet[oa]`,
		`no puedo quedarme quiet[oa]`,
		`desesperad[oa]`,
		`no paro de moverme`,
	),
	SymptomIrritability: compile(
		`irritab(le|ilidad)`,
		`me (molesto|enojo) (f(á|a)cil|por todo|f(á|a)cilmente)`,
		`de mal humor`,
		`salto por cualquier cosa`,
	),
	SymptomFearAwful: compile(
		`miedo (de|a) que (pase|ocurra|suceda) algo`,
		`algo (malo|terrible) va a pasar`,
		`presiento lo peor`,
		`\bterror\b`,
	),
}

// Frequency language drives the auto-scored value for a matched symptom:
// daily phrasing scores 3 ("nearly every day"), often phrasing scores 2
// ("more than half the days"), any other match scores the baseline 1.
var frequencyDailyPatterns = compile(
	`\bsiempre\b`,
	`todos los d(í|i)as`,
	`todo el tiempo`,
	`a diario`,
	`cada d(í|i)a`,
	`constantemente`,
)

var frequencyOftenPatterns = compile(
	`casi siempre`,
	`frecuentemente`,
	`a menudo`,
	`muchas veces`,
	`la mayor(í|i)a de los d(í|i)as`,
	`m(á|a)s de la mitad`,
)
