package rules

// Cognitive distortion types, in scan order.  Every category is evaluated on
// every message; results are ranked by computed confidence, so order only
// breaks exact ties.
const (
	DistortionAllOrNothing          = "all_or_nothing"
	DistortionOvergeneralization    = "overgeneralization"
	DistortionMentalFilter          = "mental_filter"
	DistortionDisqualifyingPositive = "disqualifying_positive"
	DistortionJumpingToConclusions  = "jumping_to_conclusions"
	DistortionMindReading           = "mind_reading"
	DistortionFortuneTelling        = "fortune_telling"
	DistortionMagnification         = "magnification"
	DistortionMinimization          = "minimization"
	DistortionCatastrophizing       = "catastrophizing"
	DistortionEmotionalReasoning    = "emotional_reasoning"
	DistortionShouldStatements      = "should_statements"
	DistortionLabeling              = "labeling"
	DistortionPersonalization       = "personalization"
	DistortionBlame                 = "blame"
	DistortionUnfairComparison      = "unfair_comparison"
	DistortionRegretOrientation     = "regret_orientation"
	DistortionWhatIf                = "what_if"
)

var distortionSet = Set{
	Name: "distortions",
	Categories: []Category{
		cat(DistortionAllOrNothing,
			`\bsiempre\b.*\bnunca\b|\bnunca\b.*\bsiempre\b`,
			`todo o nada`,
			`(totalmente|completamente) (bien|mal)`,
			`o (es )?perfecto o (no sirve|es un fracaso)`,
		),
		cat(DistortionOvergeneralization,
			`siempre me pasa (lo mismo|igual)`,
			`nunca me sale nada`,
			`todo el mundo`,
			`\bnadie\b.*\bnunca\b`,
			`cada vez que.*(sale mal|fracaso)`,
		),
		cat(DistortionMentalFilter,
			`s(ó|o)lo (veo|recuerdo) lo malo`,
			`lo (ú|u)nico (malo|que import(ó|o))`,
			`no puedo dejar de pensar en (ese|ese error|lo malo)`,
			`aunque todo sali(ó|o) bien,? (pero )?`,
		),
		cat(DistortionDisqualifyingPositive,
			`eso no cuenta`,
			`fue (pura )?suerte`,
			`cualquiera (lo )?(podr(í|i)a|puede) hacer`,
			`no fue (gran cosa|para tanto), s(ó|o)lo`,
			`lo dicen por (l(á|a)stima|compromiso)`,
		),
		cat(DistortionJumpingToConclusions,
			`seguro que (es|fue|va a)`,
			`estoy segur[oa] de que (algo|nada)`,
			`sin duda (va a salir|saldr(á|a)) mal`,
			`ya (sé|se) (c(ó|o)mo|qu(é|e)) va a (terminar|pasar)`,
		),
		cat(DistortionMindReading,
			`(sé|se) (lo )?que (piensan?|est(á|a)n pensando) de m(í|i)`,
			`piensan? que soy`,
			`deben? (de )?creer que`,
			`me (odia|detesta)n?,? aunque no (lo )?diga`,
		),
		cat(DistortionFortuneTelling,
			`va a salir mal`,
			`(sé|se) que (fracasar(é|e)|no funcionar(á|a))`,
			`nunca (voy a|podr(é|e)) (mejorar|cambiar|lograrlo)`,
			`terminar(é|e) sol[oa]`,
		),
		cat(DistortionMagnification,
			`es (un desastre|terrible|horrible) total`,
			`lo peor que (me )?(ha|pudo) (pasado|pasar)`,
			`no (hay|existe) nada peor`,
			`arruin(ó|o|a) todo`,
		),
		cat(DistortionMinimization,
			`no (fue|es) nada,? en serio`,
			`mis logros no (valen|importan|cuentan)`,
			`cualquiera hubiera hecho lo mismo`,
			`tampoco (fue|es) para celebrar`,
		),
		cat(DistortionCatastrophizing,
			`catastr(ó|o)f`,
			`ser(í|i)a el fin( del mundo)?`,
			`no podr(í|i)a soportarlo`,
			`y si (todo )?(se derrumba|colapsa|sale terrible)`,
			`todo (se|va a) (derrumba|venir(se)? abajo)`,
		),
		cat(DistortionEmotionalReasoning,
			`siento que soy (un|una)`,
			`me siento (in(ú|u)til|fracasad[oa]),? as(í|i) que (debo|ha de) ser(lo)?`,
			`si (lo )?siento( as(í|i))?,? (es|debe ser) (verdad|cierto)`,
			`me siento culpable,? (entonces|as(í|i) que) (algo hice|soy culpable)`,
		),
		cat(DistortionShouldStatements,
			`(yo )?deber(í|i)a (ser|haber|poder|estar)`,
			`tendr(í|i)a que (ser|haber|poder)`,
			`tengo la obligaci(ó|o)n de`,
			`no deber(í|i)a sentirme as(í|i)`,
		),
		cat(DistortionLabeling,
			`soy (un|una) (fracaso|fracasad[oa]|in(ú|u)til|desastre|perdedor|perdedora|idiota|est(ú|u)pid[oa])`,
			`soy (tont[oa]|débil|debil|defectuos[oa])`,
			`es (un|una) (mala persona|ego(í|i)sta|mentiros[oa])`,
		),
		cat(DistortionPersonalization,
			`(todo )?(es|fue) (por mi culpa|culpa m(í|i)a)`,
			`yo (lo )?provoqu(é|e)`,
			`si (yo )?hubiera (estado|hecho algo),? no habr(í|i)a pasado`,
			`soy (el|la) responsable de todo`,
		),
		cat(DistortionBlame,
			`(es|fue) (su )?culpa de (él|ella|ellos|otros)`,
			`la culpa es de`,
			`por culpa de (él|ella|ellos|mi)`,
			`ellos me (hicieron|obligaron)`,
		),
		cat(DistortionUnfairComparison,
			`compar(o|ado|ada) con (los dem(á|a)s|otros)`,
			`todos (son|est(á|a)n) mejor que yo`,
			`a (su|la) edad yo deber(í|i)a`,
			`(él|ella) s(í|i) (pudo|puede) y yo no`,
		),
		cat(DistortionRegretOrientation,
			`si tan s(ó|o)lo hubiera`,
			`ojal(á|a) hubiera`,
			`me arrepiento de`,
			`no deb(í|i) haber`,
			`pude haberlo (hecho|evitado)`,
		),
		cat(DistortionWhatIf,
			`y si (no )?(funciona|sale|pasa|puedo)`,
			`qu(é|e) pasar(í|i)a si`,
			`qu(é|e) tal si (algo|todo) (malo )?(pasa|sale mal)`,
			`no dejo de pensar en qu(é|e) pasar(í|i)a`,
		),
	},
}
