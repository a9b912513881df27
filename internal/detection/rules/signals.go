package rules

// Resistance-to-change types, in scan order.
const (
	ResistanceDenial       = "denial"
	ResistanceMinimization = "minimization"
	ResistanceAvoidance    = "avoidance"
	ResistanceAmbivalence  = "ambivalence"
	ResistanceHopelessness = "hopelessness"
)

// Relapse-sign dimensions.
const (
	RelapseEmotional  = "emotional"
	RelapseBehavioral = "behavioral"
	RelapseCognitive  = "cognitive"
)

// Implicit-need types.
const (
	NeedValidation = "validation"
	NeedControl    = "control"
	NeedConnection = "connection"
	NeedPurpose    = "purpose"
	NeedSafety     = "safety"
	NeedAcceptance = "acceptance"
	NeedCompetence = "competence"
)

// Strength categories.
const (
	StrengthResilience   = "resilience"
	StrengthSupport      = "support"
	StrengthSkills       = "skills"
	StrengthValues       = "values"
	StrengthAchievements = "achievements"
)

var resistanceSet = Set{
	Name: "resistance",
	Categories: []Category{
		cat(ResistanceDenial,
			`no tengo (ning(ú|u)n )?problema`,
			`no me pasa nada`,
			`estoy bien as(í|i)`,
			`no necesito ayuda`,
			`eso no es (cierto|verdad)`,
		),
		cat(ResistanceMinimization,
			`no es para tanto`,
			`tampoco es tan grave`,
			`s(ó|o)lo (es )?un poco`,
			`est(á|a)s exagerando|exager`,
			`podr(í|i)a ser peor`,
			`otros est(á|a)n peor`,
		),
		cat(ResistanceAvoidance,
			`no quiero hablar de`,
			`cambiemos de tema`,
			`prefiero no (pensar|hablar)`,
			`mejor hablamos de otra cosa`,
			`d(é|e)jalo as(í|i)`,
			`olv(í|i)dalo`,
		),
		cat(ResistanceAmbivalence,
			`quiero,? pero`,
			`no (sé|se) si (quiero|pueda|deba)`,
			`por un lado.*por otro`,
			`a veces s(í|i) y a veces no`,
			`no estoy segur[oa] de querer`,
		),
		cat(ResistanceHopelessness,
			`nada va a cambiar`,
			`no tiene sentido intentar`,
			`para qu(é|e) intentar`,
			`siempre ser(á|a) as(í|i)`,
			`ya lo intent(é|e) todo`,
			`no hay soluci(ó|o)n`,
		),
	},
}

// relapseSet: unlike the other sets, every dimension is evaluated and
// accumulated; detection never stops at the first matching category.
var relapseSet = Set{
	Name: "relapse",
	Categories: []Category{
		cat(RelapseEmotional,
			`vuelvo a sentir`,
			`otra vez (triste|mal|ansios[oa]|vac(í|i)[oa])`,
			`me siento como antes`,
			`reca(í|i)(da)?`,
			`igual que (antes|al principio)`,
		),
		cat(RelapseBehavioral,
			`dej(é|e) de (salir|hacer|ir)`,
			`ya no (salgo|hago nada|me levanto)`,
			`volv(í|i) a (beber|fumar|encerrarme|aislarme)`,
			`me (estoy )?a(í|i)sl(o|ando)`,
			`abandon(é|e) (el|la|mis)`,
		),
		cat(RelapseCognitive,
			`vuelvo a pensar`,
			`los pensamientos de antes`,
			`no voy a poder`,
			`todo va a salir mal`,
			`mi mente no para`,
		),
	},
}

var needsSet = Set{
	Name: "needs",
	Categories: []Category{
		cat(NeedValidation,
			`nadie me (entiende|comprende)`,
			`necesito que me escuchen`,
			`no me toman en serio`,
			`estoy exagerando\?`,
			`que alguien me (comprenda|crea)`,
		),
		cat(NeedControl,
			`fuera de control`,
			`no puedo controlar`,
			`pierdo el control`,
			`necesito (orden|controlar)`,
			`todo se me escapa`,
		),
		cat(NeedConnection,
			`\bsol[oa]\b`,
			`no tengo a nadie`,
			`con qui(é|e)n hablar`,
			`aislad[oa]`,
			`nadie est(á|a) conmigo`,
		),
		cat(NeedPurpose,
			`no (sé|se) para qu(é|e)`,
			`sin (rumbo|prop(ó|o)sito)`,
			`mi vida no tiene sentido`,
			`no (sé|se) qu(é|e) hacer con mi vida`,
			`nada me motiva`,
		),
		cat(NeedSafety,
			`tengo miedo de`,
			`no me siento segur[oa]`,
			`me siento amenazad[oa]`,
			`\bpeligro\b`,
			`algo malo (me )?va a pasar`,
		),
		cat(NeedAcceptance,
			`no me aceptan`,
			`me juzgan`,
			`me rechazan`,
			`no encajo`,
			`se burlan de m(í|i)`,
		),
		cat(NeedCompetence,
			`no soy capaz`,
			`no puedo hacerlo`,
			`soy un fracaso`,
			`todo me sale mal`,
			`(soy )?in(ú|u)til`,
		),
	},
}

var strengthsSet = Set{
	Name: "strengths",
	Categories: []Category{
		cat(StrengthResilience,
			`he superado`,
			`sal(í|i) adelante`,
			`a pesar de todo`,
			`sigo intentando`,
			`no me rindo`,
		),
		cat(StrengthSupport,
			`mi familia me (apoya|ayuda)`,
			`tengo (buenos )?amigos`,
			`cuento con`,
			`me (apoya|acompa(ñ|n)a)`,
			`no estoy sol[oa] en esto`,
		),
		cat(StrengthSkills,
			`soy buen[oa] (en|para)`,
			`se me da bien`,
			`aprend(í|i) a`,
			`(sé|se) c(ó|o)mo`,
			`tengo experiencia`,
		),
		cat(StrengthValues,
			`para m(í|i) es importante`,
			`creo en`,
			`mis valores`,
			`lo que m(á|a)s valoro`,
			`me importa(n)? much(í|i)simo|me importa mucho`,
		),
		cat(StrengthAchievements,
			`logr(é|e)`,
			`consegu(í|i)`,
			`termin(é|e) (el|la|mi)`,
			`me gradu(é|e)`,
			`gan(é|e)`,
		),
	},
}

// Self-efficacy: low vs high counts are compared; strict majority wins,
// ties (including zero/zero) resolve to medium.
var efficacyLowPatterns = compile(
	`no puedo con esto`,
	`no soy capaz`,
	`es imposible para m(í|i)`,
	`no (sé|se) hacerlo`,
	`todo me sale mal`,
	`no lo voy a lograr`,
	`no depende de m(í|i)`,
)

// High-efficacy phrases are chosen so that none is a substring of a negated
// low-efficacy phrase; otherwise "no soy capaz" would count on both sides.
var efficacyHighPatterns = compile(
	`s(í|i) puedo`,
	`me siento capaz`,
	`conf(í|i)o en m(í|i)`,
	`(sé|se) que puedo`,
	`lo voy a (lograr|conseguir)`,
	`est(á|a) en mis manos`,
	`ya lo he hecho antes`,
)

// Social support: same counting strategy over high vs low lists.
var supportHighPatterns = compile(
	`me apoyan`,
	`no estoy sol[oa]`,
	`cuento con (mi|mis)`,
	`mis amigos est(á|a)n`,
	`mi familia est(á|a) conmigo`,
	`tengo a alguien`,
)

var supportLowPatterns = compile(
	`nadie me ayuda`,
	`estoy sol[oa] en esto`,
	`no tengo a nadie`,
	`a nadie le importo`,
	`sin apoyo`,
	`nadie est(á|a) (ah(í|i)|conmigo)`,
)
